// Package drawing defines the shape gesture protocol and the shapes that emit
// projected vertices to a renderer sink.
package drawing

import (
	"fmt"
	"image/color"

	"painter/canvas/geom"
)

// Mode selects how a sink assembles the vertices of one shape.
type Mode uint8

const (
	// ModePolygon fills the polygon outlined by the vertices.
	ModePolygon Mode = iota
	// ModeLineLoop strokes the closed outline only.
	ModeLineLoop
)

func (m Mode) String() string {
	switch m {
	case ModePolygon:
		return "polygon"
	case ModeLineLoop:
		return "lineloop"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "polygon":
		return ModePolygon, nil
	case "lineloop":
		return ModeLineLoop, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Sink receives the 2D vertices of one shape at a time, in emission order.
type Sink interface {
	Begin(mode Mode, c color.RGBA)
	Vertex(x, y int)
	End() error
}

// Shape is the gesture protocol driven by input handling.
type Shape interface {
	// SetStart begins a new gesture at p.
	SetStart(p geom.Vector3)
	// MoveTo drags the whole shape so that it starts at p, keeping its size.
	MoveTo(p geom.Vector3)
	// UpdateLastCoordinate resizes the shape while the gesture is live.
	UpdateLastCoordinate(p geom.Vector3)
	// Draw emits the projected outline of the shape to sink.
	Draw(sink Sink, cam *geom.Camera) error
}

var defaultColor = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}

// Drawing holds the state shared by every shape: where the gesture started
// and how the shape is painted.
type Drawing struct {
	start geom.Vector3
	mode  Mode
	color color.RGBA
}

func newDrawing(mode Mode) Drawing {
	return Drawing{mode: mode, color: defaultColor}
}

func (d *Drawing) Start() geom.Vector3 { return d.start }
func (d *Drawing) Mode() Mode          { return d.mode }
func (d *Drawing) Color() color.RGBA   { return d.color }

func (d *Drawing) SetMode(m Mode)        { d.mode = m }
func (d *Drawing) SetColor(c color.RGBA) { d.color = c }

// SetStart moves the gesture origin to p.
func (d *Drawing) SetStart(p geom.Vector3) { d.start = p }

// MoveTo moves the gesture origin to p.
func (d *Drawing) MoveTo(p geom.Vector3) { d.start = p }

// emit wraps a shape's vertices in Begin/End on sink.
func (d *Drawing) emit(sink Sink, cam *geom.Camera, points []geom.Vector3) error {
	if sink == nil {
		return ErrNilSink
	}
	sink.Begin(d.mode, d.color)
	for _, p := range points {
		q := p.ProjectTo2D(cam)
		sink.Vertex(q.X(), q.Y())
	}
	return sink.End()
}
