package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	LLM    LLMConfig
	Video  VideoConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// LLMConfig selects and configures the completion backend.
// Provider must be "openai" or "anthropic".
type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

type VideoConfig struct {
	ScratchDir           string
	ServedDir            string
	RenderCommand        string
	RenderTimeout        time.Duration
	FallbackVideo        string
	MaxConcurrentRenders int
	Eviction             EvictionConfig
}

// EvictionConfig bounds the served-videos directory. A zero MaxAge or
// MaxCount disables that bound; a zero Interval disables the sweeper.
type EvictionConfig struct {
	MaxAge   time.Duration
	MaxCount int
	Interval time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; env vars and defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout"),
			WriteTimeout: viper.GetDuration("server.write_timeout"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		LLM: LLMConfig{
			Provider:    viper.GetString("llm.provider"),
			Model:       viper.GetString("llm.model"),
			APIKey:      viper.GetString("llm.api_key"),
			Timeout:     viper.GetDuration("llm.timeout"),
			Temperature: viper.GetFloat64("llm.temperature"),
			MaxTokens:   viper.GetInt("llm.max_tokens"),
		},
		Video: VideoConfig{
			ScratchDir:           viper.GetString("video.scratch_dir"),
			ServedDir:            viper.GetString("video.served_dir"),
			RenderCommand:        viper.GetString("video.render_command"),
			RenderTimeout:        viper.GetDuration("video.render_timeout"),
			FallbackVideo:        viper.GetString("video.fallback_video"),
			MaxConcurrentRenders: viper.GetInt("video.max_concurrent_renders"),
			Eviction: EvictionConfig{
				MaxAge:   viper.GetDuration("video.eviction.max_age"),
				MaxCount: viper.GetInt("video.eviction.max_count"),
				Interval: viper.GetDuration("video.eviction.interval"),
			},
		},
	}

	// Environment overrides for deployment without a config file.
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = provider
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		config.LLM.Model = model
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && config.LLM.Provider == "openai" {
		config.LLM.APIKey = key
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" && config.LLM.Provider == "anthropic" {
		config.LLM.APIKey = key
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = viper.GetInt("SERVER_PORT")
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the configuration can actually serve requests.
// A missing API key is a boot-time failure, not a per-request 500.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("unsupported llm provider: %q", c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("missing API key for llm provider %q", c.LLM.Provider)
	}
	if c.Video.ScratchDir == "" || c.Video.ServedDir == "" {
		return fmt.Errorf("video scratch_dir and served_dir must be set")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 60*time.Second)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "")
	viper.SetDefault("llm.timeout", 30*time.Second)
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.max_tokens", 4000)
	viper.SetDefault("video.scratch_dir", "./scripts")
	viper.SetDefault("video.served_dir", "./videos")
	viper.SetDefault("video.render_command", "manim")
	viper.SetDefault("video.render_timeout", 20*time.Second)
	viper.SetDefault("video.fallback_video", "./videos/placeholder.mp4")
	viper.SetDefault("video.max_concurrent_renders", 2)
	viper.SetDefault("video.eviction.max_age", 24*time.Hour)
	viper.SetDefault("video.eviction.max_count", 200)
	viper.SetDefault("video.eviction.interval", 15*time.Minute)
}
