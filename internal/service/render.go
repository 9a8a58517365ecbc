package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"edumotion/internal/config"
	"edumotion/internal/domain"
	"edumotion/internal/logger"
	"edumotion/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// VideoExecutor runs a generated script through the renderer and returns the
// served location of the resulting video.
type VideoExecutor interface {
	Execute(ctx context.Context, rawScript string) (*domain.RenderResult, error)
}

// qualityDirs are the renderer output subdirectories, in preference order.
// The low-quality flag puts output in 480p15; the others cover renderer
// configurations that default higher.
var qualityDirs = []string{"480p15", "720p30", "1080p60"}

const manimImportLine = "from manim import *"

type renderService struct {
	cfg config.VideoConfig
	sem *semaphore.Weighted
}

// NewRenderService creates the execution pipeline and its working
// directories. The semaphore bounds concurrent renderer subprocesses.
func NewRenderService(cfg config.VideoConfig) (VideoExecutor, error) {
	if err := os.MkdirAll(cfg.ScratchDir, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	if err := os.MkdirAll(cfg.ServedDir, 0o755); err != nil {
		return nil, fmt.Errorf("create served dir: %w", err)
	}
	maxRenders := cfg.MaxConcurrentRenders
	if maxRenders <= 0 {
		maxRenders = 1
	}
	return &renderService{
		cfg: cfg,
		sem: semaphore.NewWeighted(int64(maxRenders)),
	}, nil
}

func (s *renderService) Execute(ctx context.Context, rawScript string) (*domain.RenderResult, error) {
	l := logger.Get()

	script := CleanScript(rawScript)
	if script == "" {
		return nil, domain.NewNoScriptError()
	}
	if !strings.Contains(script, "from manim import") {
		script = manimImportLine + "\n" + script
	}

	job := &domain.VideoJob{
		ID:     util.NewULID(),
		Script: script,
		State:  domain.JobReceived,
	}

	scriptBase := "script_" + job.ID
	job.ScriptPath = filepath.Join(s.cfg.ScratchDir, scriptBase+".py")
	if err := os.WriteFile(job.ScriptPath, []byte(script+"\n"), 0o644); err != nil {
		return nil, domain.NewInternalError("failed to persist script", err)
	}
	job.State = domain.JobScriptPersisted
	// The scratch file is removed on every path, success or failure.
	defer func() {
		if err := os.Remove(job.ScriptPath); err != nil && !os.IsNotExist(err) {
			l.Warn("Failed to remove scratch script", zap.String("path", job.ScriptPath), zap.Error(err))
		}
	}()

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, domain.NewRenderProcessError("render queue wait was cancelled", err)
	}
	defer s.sem.Release(1)

	job.State = domain.JobRunning
	renderErr := s.runRenderer(ctx, scriptBase+".py")

	outputPath, found := s.locateOutput(scriptBase)
	if found {
		url, err := s.publish(outputPath)
		if err != nil {
			return nil, err
		}
		job.State = domain.JobDone
		l.Info("Render succeeded",
			zap.String("job_id", job.ID),
			zap.String("output", outputPath),
			zap.String("url", url),
		)
		return &domain.RenderResult{VideoURL: url, UsedFallback: false}, nil
	}

	// No output. Classify the failure, then degrade to the placeholder if
	// one exists; the response stays distinguishable via UsedFallback.
	failure := s.classifyFailure(renderErr)
	l.Error("Render produced no output",
		zap.String("job_id", job.ID),
		zap.Error(failure),
	)

	if s.cfg.FallbackVideo != "" {
		if _, statErr := os.Stat(s.cfg.FallbackVideo); statErr == nil {
			url, err := s.publish(s.cfg.FallbackVideo)
			if err != nil {
				return nil, err
			}
			job.State = domain.JobDone
			return &domain.RenderResult{
				VideoURL:     url,
				UsedFallback: true,
				Message:      fmt.Sprintf("rendering failed, serving placeholder: %v", failure),
			}, nil
		}
	}

	job.State = domain.JobFailed
	return nil, failure
}

// runRenderer invokes the external rendering command with the scratch
// directory as working directory, so relative output paths are predictable.
func (s *renderService) runRenderer(ctx context.Context, scriptFile string) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RenderTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.cfg.RenderCommand, "-ql", scriptFile, EntryPointClass)
	cmd.Dir = s.cfg.ScratchDir
	// A killed renderer can leave children holding the output pipes; don't
	// wait on them past the timeout.
	cmd.WaitDelay = time.Second

	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return domain.NewRenderTimeoutError(ctx.Err())
		}
		return domain.NewRenderProcessError("renderer exited with an error", err).
			WithContext("output", domain.Truncate(string(output), domain.RawPreviewLimit))
	}
	return nil
}

// locateOutput searches the known quality subdirectories in preference
// order: the entry-point file first, then any video file present.
func (s *renderService) locateOutput(scriptBase string) (string, bool) {
	mediaRoot := filepath.Join(s.cfg.ScratchDir, "media", "videos", scriptBase)

	for _, quality := range qualityDirs {
		dir := filepath.Join(mediaRoot, quality)
		expected := filepath.Join(dir, EntryPointClass+".mp4")
		if _, err := os.Stat(expected); err == nil {
			return expected, true
		}
		matches, _ := filepath.Glob(filepath.Join(dir, "*.mp4"))
		if len(matches) > 0 {
			return matches[0], true
		}
	}
	return "", false
}

// publish copies a located video into the served directory under a fresh
// unique name and returns its relative URL.
func (s *renderService) publish(src string) (string, error) {
	name := util.NewULID() + ".mp4"
	dst := filepath.Join(s.cfg.ServedDir, name)
	if err := copyFile(src, dst); err != nil {
		return "", domain.NewInternalError("failed to publish video", err)
	}
	return "/videos/" + name, nil
}

func (s *renderService) classifyFailure(renderErr error) error {
	if renderErr != nil {
		var domainErr *domain.DomainError
		if errors.As(renderErr, &domainErr) {
			return renderErr
		}
		return domain.NewRenderProcessError("renderer failed", renderErr)
	}
	return domain.NewRenderProcessError("renderer completed but produced no video file", nil)
}

// CleanScript normalizes raw LLM output into a runnable script body: the
// fence wrapper lines are dropped, as are blank lines and any stray fence
// markers inside. Repeated application yields the same result.
func CleanScript(raw string) string {
	lines := strings.Split(raw, "\n")

	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	return strings.Join(cleaned, "\n")
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
