package hal

import (
	"go.uber.org/zap"

	"painter/internal/logging"
)

// HostConfig sizes the host framebuffer.
// A nil Logger falls back to the process logger.
type HostConfig struct {
	Width  int
	Height int
	Logger *zap.Logger
}

type hostHAL struct {
	logger *zap.Logger
	fb     *hostFramebuffer
}

func newHost(cfg HostConfig) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = 320
	}
	if cfg.Height <= 0 {
		cfg.Height = 320
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.L()
	}
	return &hostHAL{
		logger: logger,
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
	}
}

func (h *hostHAL) Logger() *zap.Logger { return h.logger }
func (h *hostHAL) Display() Display    { return hostDisplay{fb: h.fb} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }
