package service

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"edumotion/internal/config"
	"edumotion/internal/logger"

	"go.uber.org/zap"
)

// Evictor bounds the served-videos directory by age and count. Without it
// the directory grows forever, one file per successful render.
type Evictor struct {
	dir      string
	keep     string // placeholder file, never evicted
	maxAge   time.Duration
	maxCount int
	interval time.Duration
}

// NewEvictor creates a sweeper for the served directory from config.
func NewEvictor(cfg config.VideoConfig) *Evictor {
	return &Evictor{
		dir:      cfg.ServedDir,
		keep:     filepath.Base(cfg.FallbackVideo),
		maxAge:   cfg.Eviction.MaxAge,
		maxCount: cfg.Eviction.MaxCount,
		interval: cfg.Eviction.Interval,
	}
}

// Run sweeps on a ticker until the context is cancelled. A zero interval
// disables the sweeper entirely.
func (e *Evictor) Run(ctx context.Context) {
	if e.interval <= 0 {
		return
	}
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := e.SweepOnce(); err != nil {
				logger.Get().Error("Video eviction sweep failed", zap.Error(err))
			}
		}
	}
}

// SweepOnce deletes videos older than maxAge, then trims the directory to
// maxCount newest files. The placeholder is always kept.
func (e *Evictor) SweepOnce() error {
	entries, err := os.ReadDir(e.dir)
	if err != nil {
		return err
	}

	type video struct {
		path    string
		modTime time.Time
	}
	var videos []video
	now := time.Now()

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".mp4" {
			continue
		}
		if entry.Name() == e.keep {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(e.dir, entry.Name())
		if e.maxAge > 0 && now.Sub(info.ModTime()) > e.maxAge {
			e.remove(path, "age")
			continue
		}
		videos = append(videos, video{path: path, modTime: info.ModTime()})
	}

	if e.maxCount > 0 && len(videos) > e.maxCount {
		sort.Slice(videos, func(i, j int) bool {
			return videos[i].modTime.After(videos[j].modTime)
		})
		for _, v := range videos[e.maxCount:] {
			e.remove(v.path, "count")
		}
	}

	return nil
}

func (e *Evictor) remove(path, reason string) {
	if err := os.Remove(path); err != nil {
		logger.Get().Warn("Failed to evict video",
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}
	logger.Get().Info("Evicted video",
		zap.String("path", path),
		zap.String("reason", reason),
	)
}
