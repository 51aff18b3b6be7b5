// Package hal is the only contact point between the painter and the host:
// a framebuffer to draw into and the loops that drive it (a desktop window
// or a headless ticker).
package hal

import "go.uber.org/zap"

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// HAL is what an app step gets to work with.
type HAL interface {
	Logger() *zap.Logger
	Display() Display
}

// NewAppFunc builds the per-frame step of an app. The step is called once per
// tick; a non-nil error stops the loop.
type NewAppFunc func(HAL) func() error

// WindowConfig sizes and titles the preview window.
type WindowConfig struct {
	Width  int
	Height int
	Scale  int
	Title  string
	TPS    int
	Logger *zap.Logger
}
