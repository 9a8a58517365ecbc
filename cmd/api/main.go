// @title EduMotion API
// @version 1.0
// @description Backend for the EduMotion educational app: LLM-generated explanations, quizzes and animated videos.
// @host localhost:3000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"edumotion/internal/adapter/llm"
	"edumotion/internal/config"
	"edumotion/internal/handler"
	"edumotion/internal/logger"
	"edumotion/internal/middleware"
	"edumotion/internal/service"

	_ "edumotion/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// LLM backend, selected by configuration. Both providers implement the
	// same TextGenerator surface.
	textGenerator, err := llm.NewTextGenerator(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	appLogger.Info("LLM client initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
	)

	// Services
	explainService := service.NewExplainService(textGenerator)
	quizService := service.NewQuizService(textGenerator)
	scriptService := service.NewScriptService(textGenerator)
	renderService, err := service.NewRenderService(cfg.Video)
	if err != nil {
		appLogger.Fatal("Failed to create render service", zap.Error(err))
	}
	appLogger.Info("Render pipeline initialized",
		zap.String("scratch_dir", cfg.Video.ScratchDir),
		zap.String("served_dir", cfg.Video.ServedDir),
		zap.Int("max_concurrent_renders", cfg.Video.MaxConcurrentRenders),
	)

	// Eviction sweeper for the served-videos directory
	evictionCtx, stopEviction := context.WithCancel(context.Background())
	defer stopEviction()
	go service.NewEvictor(cfg.Video).Run(evictionCtx)

	learnHandler := handler.NewLearnHandler(explainService, quizService, scriptService, renderService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", learnHandler.Health)
	app.Post("/userQuestionText", learnHandler.UserQuestionText)
	app.Post("/userQuestionQuiz", learnHandler.UserQuestionQuiz)
	app.Post("/createVideo", learnHandler.CreateVideo)
	app.Post("/executeManim", learnHandler.ExecuteManim)
	app.Post("/updateUserSettings", learnHandler.UpdateUserSettings)
	app.Static("/videos", cfg.Video.ServedDir)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	stopEviction()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
