package app

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"painter/canvas/drawing"
	"painter/canvas/geom"
	"painter/canvas/raster"
	"painter/canvas/scene"
	"painter/hal"
	"painter/internal/logging"
)

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newFakeFB(w, h int) *fakeFB {
	return &fakeFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFB) StrideBytes() int        { return f.w * 2 }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) Present() error          { f.presents++; return nil }

func (f *fakeFB) ClearRGB(r, g, b uint8) {
	p := raster.RGB565From888(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

func (f *fakeFB) at(x, y int) color.RGBA {
	t := &raster.RGB565Target{Buf: f.buf, Stride: f.StrideBytes(), W: f.w, H: f.h}
	return t.At(x, y)
}

type fakeHAL struct{ fb hal.Framebuffer }

func (h fakeHAL) Logger() *zap.Logger          { return zap.NewNop() }
func (h fakeHAL) Display() hal.Display         { return h }
func (h fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }

type panicShape struct{ drawing.Drawing }

func (panicShape) UpdateLastCoordinate(geom.Vector3) {}
func (panicShape) Draw(drawing.Sink, *geom.Camera) error {
	panic("boom")
}

func roundTrip(c color.RGBA) color.RGBA {
	r, g, b := raster.RGB888From565(raster.RGB565From888(c.R, c.G, c.B))
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func square(half int, c color.RGBA) *drawing.Rectangle {
	r := drawing.NewRectangle()
	r.SetColor(c)
	r.SetStart(geom.New2(-half, -half))
	r.UpdateLastCoordinate(geom.New2(half, half))
	return r
}

func TestStepRendersScene(t *testing.T) {
	fb := newFakeFB(64, 64)
	red := color.RGBA{R: 0xFF, A: 0xFF}
	s := scene.New(nil)
	s.Add(square(10, red))

	step := New(fakeHAL{fb: fb}, s, Options{FlipY: true})
	require.NoError(t, step())

	assert.Equal(t, 1, fb.presents)
	assert.Equal(t, roundTrip(red), fb.at(32, 32))
	assert.Equal(t, roundTrip(color.RGBA{A: 0xFF}), fb.at(2, 2))
}

func TestStepSkipsUnchangedScene(t *testing.T) {
	fb := newFakeFB(32, 32)
	s := scene.New(nil)
	r := square(4, color.RGBA{G: 0xFF, A: 0xFF})
	s.Add(r)

	step := New(fakeHAL{fb: fb}, s, Options{})
	require.NoError(t, step())
	require.NoError(t, step())
	assert.Equal(t, 1, fb.presents)

	r.UpdateLastCoordinate(geom.New2(8, 8))
	require.NoError(t, step())
	assert.Equal(t, 2, fb.presents)
}

func TestStepWithoutFramebuffer(t *testing.T) {
	step := New(fakeHAL{}, nil, Options{})
	assert.NoError(t, step())
}

func TestStepHandlesAndStatus(t *testing.T) {
	fb := newFakeFB(64, 64)
	s := scene.New(nil)
	s.Add(square(10, color.RGBA{B: 0xFF, A: 0xFF}))

	step := New(fakeHAL{fb: fb}, s, Options{FlipY: true, Handles: true, Status: true})
	require.NoError(t, step())

	// Start corner (-10,-10) lands at pixel (22, 42); the handle ring passes
	// three pixels to its left.
	assert.Equal(t, roundTrip(colorHandle), fb.at(19, 42))
}

func TestStepRecoversPanic(t *testing.T) {
	fb := newFakeFB(64, 64)
	s := scene.New(nil)
	s.Add(&panicShape{})

	step := New(fakeHAL{fb: fb}, s, Options{})
	err := step()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 1, fb.presents)
	assert.Equal(t, roundTrip(color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}), fb.at(fb.w-1, 0))
}

func TestPanicLinesIncludeStack(t *testing.T) {
	lines := panicLines("boom", []byte("goroutine 1 [running]:\n\nmain.main()\n"))
	assert.Equal(t, []string{
		"Painter panic:",
		"panic: boom",
		"stack:",
		"goroutine 1 [running]:",
		"main.main()",
	}, lines)

	assert.Equal(t, "stack: unavailable", panicLines("boom", nil)[2])
}

type bareHAL struct{ fakeHAL }

func (bareHAL) Logger() *zap.Logger { return nil }

func TestStepFallsBackToProcessLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.SetGlobal(zap.New(core))
	defer logging.SetGlobal(nil)

	s := scene.New(nil)
	s.Add(square(4, color.RGBA{R: 0xFF, A: 0xFF}))
	step := New(bareHAL{fakeHAL{fb: newFakeFB(16, 16)}}, s, Options{})
	require.NoError(t, step())

	require.Equal(t, 1, logs.FilterMessage("frame rendered").Len())
	assert.Equal(t, int64(1), logs.FilterMessage("frame rendered").All()[0].ContextMap()["shapes"])
}

func TestTakeRunes(t *testing.T) {
	p, rest := takeRunes("héllo world", 5)
	assert.Equal(t, "héllo", p)
	assert.Equal(t, " world", rest)

	p, rest = takeRunes("abc", 10)
	assert.Equal(t, "abc", p)
	assert.Empty(t, rest)

	p, rest = takeRunes("abc", 0)
	assert.Empty(t, p)
	assert.Equal(t, "abc", rest)
}
