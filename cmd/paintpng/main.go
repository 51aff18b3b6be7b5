// Command paintpng renders the configured scene once and writes it as a PNG.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/anthonynsimon/bild/imgio"
	"go.uber.org/zap"

	"painter/app"
	"painter/canvas/raster"
	"painter/internal/config"
	"painter/internal/logging"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "Config file (YAML). Defaults apply when empty.")
		outPath = flag.String("out", "painter.png", "Output PNG file.")
		width   = flag.Int("width", 0, "Override window.width.")
		height  = flag.Int("height", 0, "Override window.height.")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatalf("config: %v", err)
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if err := cfg.Validate(); err != nil {
		fatalf("config: %v", err)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		fatalf("logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	if err := render(cfg, *outPath, log); err != nil {
		fatalf("render: %v", err)
	}
}

func render(cfg *config.Config, outPath string, log *zap.Logger) error {
	s, opts, err := app.FromConfig(cfg)
	if err != nil {
		return err
	}

	t := raster.NewRGBATarget(cfg.Window.Width, cfg.Window.Height)
	r := raster.NewRenderer(t)
	r.Viewport.FlipY = opts.FlipY
	r.Clear(opts.ClearColor)
	if err := s.Render(r); err != nil {
		return err
	}

	if err := imgio.Save(outPath, t.Img, imgio.PNGEncoder()); err != nil {
		return err
	}
	st := r.Stats()
	log.Info("png written",
		zap.String("path", outPath),
		zap.String("clear", raster.Hex(opts.ClearColor)),
		zap.Int("primitives", st.Primitives), zap.Int("pixels", st.Pixels))
	return nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
