package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"painter/internal/config"
)

func TestRenderWritesPNG(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Width = 48
	cfg.Window.Height = 32
	out := filepath.Join(t.TempDir(), "scene.png")

	require.NoError(t, render(cfg, out, zap.NewNop()))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 48, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}
