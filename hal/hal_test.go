package hal

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"painter/internal/logging"
)

func TestHostFramebufferClear(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	if fb.StrideBytes() != 8 || len(fb.Buffer()) != 24 {
		t.Fatalf("stride %d len %d", fb.StrideBytes(), len(fb.Buffer()))
	}
	fb.ClearRGB(0xFF, 0, 0)

	scratch := make([]byte, len(fb.buf))
	rgba := make([]byte, 4*3*4)
	fb.snapshotRGBA(scratch, rgba)
	for i := 0; i < len(rgba); i += 4 {
		if rgba[i] != 0xFF || rgba[i+1] != 0 || rgba[i+2] != 0 || rgba[i+3] != 0xFF {
			t.Fatalf("pixel %d = %v, want opaque red", i/4, rgba[i:i+4])
		}
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	steps := 0
	var got HAL
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		got = h
		return func() error {
			steps++
			return h.Display().Framebuffer().Present()
		}
	}, HeadlessConfig{Width: 8, Height: 8, Hz: 1000, Ticks: 3})
	if err != nil {
		t.Fatalf("RunHeadless() error = %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
	fb := got.Display().Framebuffer()
	if fb.Width() != 8 || fb.Height() != 8 {
		t.Fatalf("framebuffer %dx%d, want 8x8", fb.Width(), fb.Height())
	}
	if n := fb.(*hostFramebuffer).Presents(); n != 3 {
		t.Fatalf("Presents() = %d, want 3", n)
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless() error = %v, want %v", err, boom)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunHeadless() error = %v, want deadline exceeded", err)
	}
}

func TestRunHeadlessUsesProcessLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logging.SetGlobal(zap.New(core))
	defer logging.SetGlobal(nil)

	err := RunHeadless(context.Background(), func(HAL) func() error { return nil },
		HeadlessConfig{Width: 4, Height: 4, Hz: 1000, Ticks: 2})
	if err != nil {
		t.Fatalf("RunHeadless() error = %v", err)
	}
	if n := logs.FilterMessage("headless runner started").Len(); n != 1 {
		t.Fatalf("start entries = %d, want 1", n)
	}
	if n := logs.FilterMessage("headless runner finished").Len(); n != 1 {
		t.Fatalf("finish entries = %d, want 1", n)
	}
}
