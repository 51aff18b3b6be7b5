// Package app wires a scene to the host framebuffer: each step renders the
// scene when it changed and presents the frame.
package app

import (
	"fmt"
	"image/color"
	"runtime/debug"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"painter/canvas/drawing"
	"painter/canvas/geom"
	"painter/canvas/raster"
	"painter/canvas/scene"
	"painter/hal"
	"painter/internal/logging"
)

const handleRadius = 3

var (
	colorHandle = color.RGBA{R: 0xFF, G: 0xDD, B: 0x66, A: 0xFF}
	colorStatus = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
)

// Options controls how frames are composed.
type Options struct {
	ClearColor color.RGBA
	FlipY      bool
	// Handles marks the start and end corner of every rectangle.
	Handles bool
	// Status draws a one-line summary at the bottom of the frame.
	Status bool
}

type painter struct {
	h      hal.HAL
	log    *zap.Logger
	scene  *scene.Scene
	opts   Options
	last   uint64
	drawn  bool
	frames uint64
}

// New returns the per-frame step for s.
func New(h hal.HAL, s *scene.Scene, opts Options) func() error {
	p := newPainter(h, s, opts)
	return p.step
}

func newPainter(h hal.HAL, s *scene.Scene, opts Options) *painter {
	log := h.Logger()
	if log == nil {
		log = logging.L()
	}
	if s == nil {
		s = scene.New(nil)
	}
	return &painter{h: h, log: log, scene: s, opts: opts}
}

func (p *painter) step() (err error) {
	fb := p.framebuffer()
	if fb == nil {
		return nil
	}
	defer func() {
		if v := recover(); v != nil {
			stack := debug.Stack()
			p.log.Error("render panic", zap.Any("panic", v), zap.ByteString("stack", stack))
			showPanic(fb, v, stack)
			err = fmt.Errorf("render panic: %v", v)
		}
	}()

	fp := p.scene.Fingerprint()
	if p.drawn && fp == p.last {
		return nil
	}

	if err := p.render(fb); err != nil {
		p.log.Error("render failed", zap.Error(err))
		return err
	}
	p.last = fp
	p.drawn = true
	p.frames++
	p.log.Debug("frame rendered",
		zap.Uint64("frame", p.frames), zap.Int("shapes", p.scene.Len()), zap.Uint64("fingerprint", fp))
	return fb.Present()
}

func (p *painter) framebuffer() hal.Framebuffer {
	d := p.h.Display()
	if d == nil {
		return nil
	}
	fb := d.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	return fb
}

func (p *painter) render(fb hal.Framebuffer) error {
	t := &raster.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
	r := raster.NewRenderer(t)
	r.Viewport.FlipY = p.opts.FlipY
	r.Clear(p.opts.ClearColor)

	if err := p.scene.Render(r); err != nil {
		return err
	}
	if p.opts.Handles {
		p.drawHandles(r)
	}
	if p.opts.Status {
		r.Text(2, fb.Height()-3, p.statusLine(), colorStatus)
	}
	return nil
}

type cornered interface {
	Corners() [4]geom.Vector3
}

func (p *painter) drawHandles(r *raster.Renderer) {
	cam := p.scene.Camera
	p.scene.Each(func(_ uuid.UUID, sh drawing.Shape) bool {
		c, ok := sh.(cornered)
		if !ok {
			return true
		}
		corners := c.Corners()
		for _, v := range []geom.Vector3{corners[0], corners[2]} {
			if !v.Projectable(cam) {
				continue
			}
			r.Handle(v.ProjectTo2D(cam), handleRadius, colorHandle)
		}
		return true
	})
}

func (p *painter) statusLine() string {
	cam := "ortho"
	if p.scene.Camera != nil {
		cam = "cam " + p.scene.Camera.Position.String()
	}
	return fmt.Sprintf("%d shapes  %s", p.scene.Len(), cam)
}
