package raster

import (
	"errors"
	"image/color"

	"painter/canvas/drawing"
	"painter/canvas/geom"
)

var (
	// ErrDegeneratePolygon is returned by End when a primitive has too few
	// vertices to be drawn.
	ErrDegeneratePolygon = errors.New("raster: degenerate polygon")
	// ErrNotInPolygon is returned when Vertex or End is called outside Begin/End.
	ErrNotInPolygon = errors.New("raster: vertex outside Begin/End")
)

// coordLimit bounds screen coordinates so edge functions cannot overflow.
// Saturated projections land far outside any real target anyway.
const coordLimit = 1 << 24

// Viewport maps drawing-plane coordinates to pixels.
type Viewport struct {
	OriginX int
	OriginY int
	// FlipY makes y grow upwards, as on the drawing plane.
	FlipY bool
}

func (v Viewport) toScreen(x, y int) (int, int) {
	sx := v.OriginX + x
	sy := v.OriginY + y
	if v.FlipY {
		sy = v.OriginY - y
	}
	return clampInt(sx, -coordLimit, coordLimit), clampInt(sy, -coordLimit, coordLimit)
}

// Stats counts what the renderer produced since it was created.
type Stats struct {
	Primitives int
	Vertices   int
	Pixels     int
}

type point struct{ x, y int }

// Renderer is an immediate-mode software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Viewport Viewport

	t     Target
	mode  drawing.Mode
	color color.RGBA
	open  bool
	verts []point
	err   error
	stats Stats
}

var _ drawing.Sink = (*Renderer)(nil)

// NewRenderer creates a renderer drawing into t with the plane origin at the
// centre of the target and y pointing up.
func NewRenderer(t Target) *Renderer {
	r := &Renderer{t: t, verts: make([]point, 0, 8)}
	if t != nil {
		w, h := t.Size()
		r.Viewport = Viewport{OriginX: w / 2, OriginY: h / 2, FlipY: true}
	}
	return r
}

func (r *Renderer) Target() Target { return r.t }
func (r *Renderer) Stats() Stats   { return r.stats }

func (r *Renderer) Clear(c color.RGBA) {
	if r.t != nil {
		r.t.Clear(c)
	}
}

// Begin opens a primitive. An unfinished primitive is discarded.
func (r *Renderer) Begin(mode drawing.Mode, c color.RGBA) {
	r.mode = mode
	r.color = c
	r.open = true
	r.err = nil
	r.verts = r.verts[:0]
}

func (r *Renderer) Vertex(x, y int) {
	if !r.open {
		r.err = ErrNotInPolygon
		return
	}
	sx, sy := r.Viewport.toScreen(x, y)
	r.verts = append(r.verts, point{sx, sy})
}

// End rasterizes the open primitive.
func (r *Renderer) End() error {
	if !r.open {
		if r.err != nil {
			return r.err
		}
		return ErrNotInPolygon
	}
	r.open = false

	v := r.verts
	switch r.mode {
	case drawing.ModeLineLoop:
		if len(v) == 0 {
			return ErrDegeneratePolygon
		}
		for i := range v {
			j := (i + 1) % len(v)
			r.drawLine(v[i].x, v[i].y, v[j].x, v[j].y, r.color)
		}
	default:
		if len(v) < 3 {
			return ErrDegeneratePolygon
		}
		// Fan from the first vertex; shapes emit convex outlines.
		for i := 1; i+1 < len(v); i++ {
			r.fillTriangle(v[0], v[i], v[i+1], r.color)
		}
	}
	r.stats.Primitives++
	r.stats.Vertices += len(v)
	return nil
}

// Handle draws a circular marker of the given radius around a drawing-plane
// point, using eight-way octant symmetry.
func (r *Renderer) Handle(center geom.Vector3, radius int, c color.RGBA) {
	if r.t == nil || radius < 0 {
		return
	}
	cx, cy := r.Viewport.toScreen(center.X(), center.Y())
	x, y := 0, radius
	d := 1 - radius
	for x <= y {
		for _, o := range geom.New2(x, y).AllOctants() {
			r.setPixel(cx+o.X(), cy+o.Y(), c)
		}
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
}

func (r *Renderer) setPixel(x, y int, c color.RGBA) {
	w, h := r.t.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.t.SetPixel(x, y, c)
	r.stats.Pixels++
}

func (r *Renderer) drawLine(x0, y0, x1, y1 int, c color.RGBA) {
	if r.t == nil {
		return
	}
	w, h := r.t.Size()
	var ok bool
	x0, y0, x1, y1, ok = clipLine(x0, y0, x1, y1, w, h)
	if !ok {
		return
	}

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		r.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) fillTriangle(a, b, c point, col color.RGBA) {
	if r.t == nil {
		return
	}
	w, h := r.t.Size()

	area := edgeFn(a.x, a.y, b.x, b.y, c.x, c.y)
	if area == 0 {
		return
	}
	if area < 0 {
		b, c = c, b
	}

	minX, maxX := min3(a.x, b.x, c.x), max3(a.x, b.x, c.x)
	minY, maxY := min3(a.y, b.y, c.y), max3(a.y, b.y, c.y)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(b.x, b.y, c.x, c.y, x, y)
			w1 := edgeFn(c.x, c.y, a.x, a.y, x, y)
			w2 := edgeFn(a.x, a.y, b.x, b.y, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			r.setPixel(x, y, col)
		}
	}
}

// clipLine clips a segment to [0,w) x [0,h) (Cohen-Sutherland).
func clipLine(x0, y0, x1, y1, w, h int) (int, int, int, int, bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}
	xmax, ymax := w-1, h-1
	code := func(x, y int) int {
		c := 0
		if x < 0 {
			c |= 1
		} else if x > xmax {
			c |= 2
		}
		if y < 0 {
			c |= 4
		} else if y > ymax {
			c |= 8
		}
		return c
	}

	c0, c1 := code(x0, y0), code(x1, y1)
	for {
		if c0|c1 == 0 {
			return x0, y0, x1, y1, true
		}
		if c0&c1 != 0 {
			return 0, 0, 0, 0, false
		}
		out := c0
		if out == 0 {
			out = c1
		}
		var x, y int
		switch {
		case out&8 != 0:
			x, y = x0+(x1-x0)*(ymax-y0)/(y1-y0), ymax
		case out&4 != 0:
			x, y = x0+(x1-x0)*(0-y0)/(y1-y0), 0
		case out&2 != 0:
			x, y = xmax, y0+(y1-y0)*(xmax-x0)/(x1-x0)
		default:
			x, y = 0, y0+(y1-y0)*(0-x0)/(x1-x0)
		}
		if out == c0 {
			x0, y0 = x, y
			c0 = code(x0, y0)
		} else {
			x1, y1 = x, y
			c1 = code(x1, y1)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}
