package drawing

import (
	"fmt"

	"painter/canvas/geom"
)

// Plane selects which axis a Rectangle holds constant.
type Plane uint8

const (
	PlaneX Plane = iota
	PlaneY
	PlaneZ
)

func (p Plane) String() string {
	switch p {
	case PlaneX:
		return "x"
	case PlaneY:
		return "y"
	case PlaneZ:
		return "z"
	default:
		return fmt.Sprintf("Plane(%d)", uint8(p))
	}
}

// Rectangle is an axis-aligned quad spanned by two corners and pinned to one
// of the three coordinate planes.
//
// Build it with NewRectangle or NewRectangleWithMode. The zero value sits on
// the x plane with a transparent color.
type Rectangle struct {
	Drawing

	end           geom.Vector3
	plane         Plane
	planePosition int
}

var _ Shape = (*Rectangle)(nil)

// NewRectangle returns a filled rectangle on the z plane at depth 0.
func NewRectangle() *Rectangle { return NewRectangleWithMode(ModePolygon) }

func NewRectangleWithMode(mode Mode) *Rectangle {
	return &Rectangle{
		Drawing: newDrawing(mode),
		plane:   PlaneZ,
	}
}

func (r *Rectangle) End() geom.Vector3 { return r.end }
func (r *Rectangle) Plane() Plane      { return r.plane }
func (r *Rectangle) PlanePosition() int {
	return r.planePosition
}

// SetStart begins a new gesture: both corners collapse onto p.
func (r *Rectangle) SetStart(p geom.Vector3) {
	r.Drawing.SetStart(p)
	r.end = p
}

// MoveTo translates the rectangle so that it starts at p.
func (r *Rectangle) MoveTo(p geom.Vector3) {
	r.end = p.MoveBy(r.end.Delta(r.start))
	r.start = p
}

func (r *Rectangle) UpdateLastCoordinate(p geom.Vector3) { r.end = p }

// SetPlane selects the constant axis: 0 for x, 1 for y, 2 for z. Any other
// value is rejected and leaves the rectangle unchanged.
func (r *Rectangle) SetPlane(plane int) error {
	if plane < int(PlaneX) || plane > int(PlaneZ) {
		return fmt.Errorf("%w %d", ErrInvalidPlane, plane)
	}
	r.plane = Plane(plane)
	return nil
}

func (r *Rectangle) SetPlanePosition(pos int) { r.planePosition = pos }

// Corners returns the four corners of the quad on the active plane. The order
// sets the winding seen by the sink.
func (r *Rectangle) Corners() [4]geom.Vector3 {
	s, e, p := r.start, r.end, r.planePosition
	switch r.plane {
	case PlaneX:
		return [4]geom.Vector3{
			geom.New(p, s.Y(), s.Z()),
			geom.New(p, s.Y(), e.Z()),
			geom.New(p, e.Y(), e.Z()),
			geom.New(p, e.Y(), s.Z()),
		}
	case PlaneY:
		return [4]geom.Vector3{
			geom.New(s.X(), p, s.Z()),
			geom.New(e.X(), p, s.Z()),
			geom.New(e.X(), p, e.Z()),
			geom.New(s.X(), p, e.Z()),
		}
	default:
		return [4]geom.Vector3{
			geom.New(s.X(), s.Y(), p),
			geom.New(s.X(), e.Y(), p),
			geom.New(e.X(), e.Y(), p),
			geom.New(e.X(), s.Y(), p),
		}
	}
}

// Draw projects the corners through cam and emits them in corner order.
func (r *Rectangle) Draw(sink Sink, cam *geom.Camera) error {
	c := r.Corners()
	return r.emit(sink, cam, c[:])
}
