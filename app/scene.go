package app

import (
	"fmt"

	"painter/canvas/drawing"
	"painter/canvas/geom"
	"painter/canvas/raster"
	"painter/canvas/scene"
	"painter/internal/config"
)

// FromConfig builds the startup scene and frame options from cfg.
func FromConfig(cfg *config.Config) (*scene.Scene, Options, error) {
	var cam *geom.Camera
	if cfg.Camera.Enabled {
		p := cfg.Camera.Position
		cam = geom.NewCamera(geom.New(p[0], p[1], p[2]))
	}
	s := scene.New(cam)

	for i, sc := range cfg.Shapes {
		r, err := newRectangle(sc)
		if err != nil {
			return nil, Options{}, fmt.Errorf("shapes[%d]: %w", i, err)
		}
		s.Add(r)
	}

	bg, err := raster.ParseHex(cfg.Render.ClearColor)
	if err != nil {
		return nil, Options{}, err
	}
	opts := Options{
		ClearColor: bg,
		FlipY:      cfg.Render.FlipY,
		Handles:    cfg.Render.Handles,
		Status:     cfg.Render.Status,
	}
	return s, opts, nil
}

func newRectangle(sc config.ShapeConfig) (*drawing.Rectangle, error) {
	mode, err := drawing.ParseMode(sc.Mode)
	if err != nil {
		return nil, err
	}
	r := drawing.NewRectangle()
	r.SetMode(mode)
	if err := r.SetPlane(sc.Plane); err != nil {
		return nil, err
	}
	r.SetPlanePosition(sc.PlanePosition)
	if sc.Color != "" {
		c, err := raster.ParseHex(sc.Color)
		if err != nil {
			return nil, err
		}
		r.SetColor(c)
	}
	r.SetStart(geom.New(sc.Start[0], sc.Start[1], sc.Start[2]))
	r.UpdateLastCoordinate(geom.New(sc.End[0], sc.End[1], sc.End[2]))
	return r, nil
}
