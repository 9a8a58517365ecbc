package service_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"edumotion/internal/config"
	"edumotion/internal/domain"
	"edumotion/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScript = "from manim import *\nclass create_video(Scene):\n    def construct(self):\n        pass"

// successRenderer mimics manim: drops an output file where the pipeline
// expects it, relative to the working directory.
const successRenderer = `#!/bin/sh
base="${2%.py}"
mkdir -p "media/videos/$base/480p15"
printf 'video-bytes' > "media/videos/$base/480p15/create_video.mp4"
`

const failingRenderer = `#!/bin/sh
echo "render exploded" >&2
exit 1
`

const slowRenderer = `#!/bin/sh
sleep 5
`

func writeStubRenderer(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-manim")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func testVideoConfig(t *testing.T, renderer string) config.VideoConfig {
	t.Helper()
	return config.VideoConfig{
		ScratchDir:           t.TempDir(),
		ServedDir:            t.TempDir(),
		RenderCommand:        renderer,
		RenderTimeout:        5 * time.Second,
		MaxConcurrentRenders: 2,
	}
}

func scratchScriptCount(t *testing.T, dir string) int {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*.py"))
	require.NoError(t, err)
	return len(matches)
}

func TestCleanScript(t *testing.T) {
	t.Run("fence wrapper and blank lines removed", func(t *testing.T) {
		raw := "```python\nline one\n\nline two\n```"
		assert.Equal(t, "line one\nline two", service.CleanScript(raw))
	})

	t.Run("idempotent", func(t *testing.T) {
		raw := "```python\nline one\n\nline two\n```"
		once := service.CleanScript(raw)
		assert.Equal(t, once, service.CleanScript(once))
	})

	t.Run("stray fence markers inside are dropped", func(t *testing.T) {
		raw := "line one\n```\nline two"
		assert.Equal(t, "line one\nline two", service.CleanScript(raw))
	})

	t.Run("only fences and blanks yields empty", func(t *testing.T) {
		assert.Equal(t, "", service.CleanScript("```\n\n```"))
	})
}

func TestRenderService_Execute(t *testing.T) {
	t.Run("success publishes the rendered file", func(t *testing.T) {
		cfg := testVideoConfig(t, writeStubRenderer(t, successRenderer))
		svc, err := service.NewRenderService(cfg)
		require.NoError(t, err)

		result, err := svc.Execute(context.Background(), sampleScript)
		require.NoError(t, err)
		assert.False(t, result.UsedFallback)
		assert.True(t, strings.HasPrefix(result.VideoURL, "/videos/"))
		assert.True(t, strings.HasSuffix(result.VideoURL, ".mp4"))

		published := filepath.Join(cfg.ServedDir, strings.TrimPrefix(result.VideoURL, "/videos/"))
		_, err = os.Stat(published)
		assert.NoError(t, err)

		assert.Equal(t, 0, scratchScriptCount(t, cfg.ScratchDir), "scratch script must be deleted")
	})

	t.Run("missing import line is injected", func(t *testing.T) {
		rendererPath := filepath.Join(t.TempDir(), "fake-manim")
		captureDir := t.TempDir()
		// Copy the script it was given so the test can inspect it.
		stub := "#!/bin/sh\ncp \"$2\" \"" + captureDir + "/seen.py\"\nexit 1\n"
		require.NoError(t, os.WriteFile(rendererPath, []byte(stub), 0o755))

		cfg := testVideoConfig(t, rendererPath)
		svc, err := service.NewRenderService(cfg)
		require.NoError(t, err)

		_, _ = svc.Execute(context.Background(), "class create_video(Scene):\n    pass")

		seen, err := os.ReadFile(filepath.Join(captureDir, "seen.py"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(seen), "from manim import *"))
	})

	t.Run("failure with fallback present degrades explicitly", func(t *testing.T) {
		cfg := testVideoConfig(t, writeStubRenderer(t, failingRenderer))
		cfg.FallbackVideo = filepath.Join(cfg.ServedDir, "placeholder.mp4")
		require.NoError(t, os.WriteFile(cfg.FallbackVideo, []byte("placeholder"), 0o644))

		svc, err := service.NewRenderService(cfg)
		require.NoError(t, err)

		result, err := svc.Execute(context.Background(), sampleScript)
		require.NoError(t, err)
		assert.True(t, result.UsedFallback)
		assert.NotEmpty(t, result.Message)
		assert.True(t, strings.HasPrefix(result.VideoURL, "/videos/"))

		assert.Equal(t, 0, scratchScriptCount(t, cfg.ScratchDir), "scratch script must be deleted on failure too")
	})

	t.Run("failure with no fallback surfaces an error", func(t *testing.T) {
		cfg := testVideoConfig(t, writeStubRenderer(t, failingRenderer))
		svc, err := service.NewRenderService(cfg)
		require.NoError(t, err)

		_, err = svc.Execute(context.Background(), sampleScript)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeRenderProcess, domainErr.Code)

		assert.Equal(t, 0, scratchScriptCount(t, cfg.ScratchDir))
	})

	t.Run("timeout is reported as such", func(t *testing.T) {
		cfg := testVideoConfig(t, writeStubRenderer(t, slowRenderer))
		cfg.RenderTimeout = 100 * time.Millisecond

		svc, err := service.NewRenderService(cfg)
		require.NoError(t, err)

		_, err = svc.Execute(context.Background(), sampleScript)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeRenderTimeout, domainErr.Code)
	})

	t.Run("empty script is rejected", func(t *testing.T) {
		cfg := testVideoConfig(t, writeStubRenderer(t, successRenderer))
		svc, err := service.NewRenderService(cfg)
		require.NoError(t, err)

		_, err = svc.Execute(context.Background(), "```\n\n```")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeNoScript, domainErr.Code)
	})

	t.Run("concurrent executions produce distinct filenames", func(t *testing.T) {
		cfg := testVideoConfig(t, writeStubRenderer(t, successRenderer))
		svc, err := service.NewRenderService(cfg)
		require.NoError(t, err)

		const n = 4
		urls := make([]string, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				result, err := svc.Execute(context.Background(), sampleScript)
				if assert.NoError(t, err) {
					urls[i] = result.VideoURL
				}
			}(i)
		}
		wg.Wait()

		seen := make(map[string]bool)
		for _, url := range urls {
			require.NotEmpty(t, url)
			assert.False(t, seen[url], "duplicate output filename %s", url)
			seen[url] = true
		}
	})
}
