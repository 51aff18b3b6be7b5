package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3 is an immutable point or direction with integer coordinates.
type Vector3 struct {
	x, y, z int
}

// Origin is the (0, 0, 0) point.
var Origin = Vector3{}

// New returns the vector (x, y, z).
func New(x, y, z int) Vector3 { return Vector3{x: x, y: y, z: z} }

// New2 returns the vector (x, y, 0).
func New2(x, y int) Vector3 { return Vector3{x: x, y: y} }

func (v Vector3) X() int { return v.x }
func (v Vector3) Y() int { return v.y }
func (v Vector3) Z() int { return v.z }

// Move translates v by (dx, dy, dz).
func (v Vector3) Move(dx, dy, dz int) Vector3 {
	return Vector3{v.x + dx, v.y + dy, v.z + dz}
}

// Move2 translates v on the x and y axes only.
func (v Vector3) Move2(dx, dy int) Vector3 { return v.Move(dx, dy, 0) }

// MoveBy translates v by the components of o.
func (v Vector3) MoveBy(o Vector3) Vector3 { return v.Move(o.x, o.y, o.z) }

func (v Vector3) Reflected() Vector3 { return Vector3{-v.x, -v.y, -v.z} }

// Delta returns v - o. Callers depend on this operand order.
func (v Vector3) Delta(o Vector3) Vector3 { return v.MoveBy(o.Reflected()) }

func (v Vector3) Dot(o Vector3) int { return v.x*o.x + v.y*o.y + v.z*o.z }

// Cross returns the right-handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.y*o.z - v.z*o.y,
		v.z*o.x - v.x*o.z,
		v.x*o.y - v.y*o.x,
	}
}

// Scale multiplies every component by s and truncates toward zero.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{
		truncate(s * float64(v.x)),
		truncate(s * float64(v.y)),
		truncate(s * float64(v.z)),
	}
}

// Length returns the Euclidean norm of v.
func (v Vector3) Length() float64 { return math.Sqrt(r3.Norm2(v.vec())) }

// Normalize scales v by 1/Length. The zero vector normalizes to Origin.
func (v Vector3) Normalize() Vector3 { return v.Scale(1 / v.Length()) }

// InvertAxes swaps x and y, keeping z.
func (v Vector3) InvertAxes() Vector3 { return Vector3{v.y, v.x, v.z} }

// MirrorOnHorizontalAxis negates y. The result always has z = 0.
func (v Vector3) MirrorOnHorizontalAxis() Vector3 { return New2(v.x, -v.y) }

// MirrorOnVerticalAxis negates x. The result always has z = 0.
func (v Vector3) MirrorOnVerticalAxis() Vector3 { return New2(-v.x, v.y) }

// AllOctants returns the eight octant reflections of v in octant order,
// starting with v itself. The mirrors drop z, so only the first two entries
// can carry a non-zero z.
func (v Vector3) AllOctants() [8]Vector3 {
	return [8]Vector3{
		v,
		v.InvertAxes(),
		v.InvertAxes().MirrorOnVerticalAxis(),
		v.MirrorOnVerticalAxis(),
		v.MirrorOnHorizontalAxis().MirrorOnVerticalAxis(),
		v.InvertAxes().MirrorOnHorizontalAxis().MirrorOnVerticalAxis(),
		v.InvertAxes().MirrorOnHorizontalAxis(),
		v.MirrorOnHorizontalAxis(),
	}
}

// L2Distance returns the Euclidean distance between v and o.
func (v Vector3) L2Distance(o Vector3) float64 { return v.Delta(o).Length() }

func (v Vector3) Equal(o Vector3) bool { return v == o }

// Hash mixes the three components. Equal vectors hash equally.
func (v Vector3) Hash() int32 {
	h := int32(7)
	h = 59*h + int32(v.x)
	h = 59*h + int32(v.y)
	h = 59*h + int32(v.z)
	return h
}

func (v Vector3) String() string { return fmt.Sprintf("(%d, %d, %d)", v.x, v.y, v.z) }

func (v Vector3) vec() r3.Vec {
	return r3.Vec{X: float64(v.x), Y: float64(v.y), Z: float64(v.z)}
}

// truncate narrows f toward zero. NaN becomes 0 and out-of-range values
// saturate to the int32 range.
func truncate(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}
