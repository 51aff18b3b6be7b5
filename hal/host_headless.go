package hal

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	// Ticks stops the runner after N steps (0 = run until ctx is done).
	Ticks  uint64
	Logger *zap.Logger
}

// RunHeadless drives the app without opening a window.
func RunHeadless(ctx context.Context, newApp NewAppFunc, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(HostConfig{Width: cfg.Width, Height: cfg.Height, Logger: cfg.Logger})
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	h.logger.Info("headless runner started",
		zap.Int("hz", cfg.Hz), zap.Uint64("ticks", cfg.Ticks),
		zap.Int("width", h.fb.width), zap.Int("height", h.fb.height))

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				h.logger.Info("headless runner finished",
					zap.Uint64("ticks", tick), zap.Uint64("presents", h.fb.Presents()))
				return nil
			}
		}
	}
}
