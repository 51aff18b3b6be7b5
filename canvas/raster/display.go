package raster

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Display adapts a Target to drivers.Displayer so tinyfont can draw on it.
type Display struct {
	t Target
}

var _ drivers.Displayer = (*Display)(nil)

func NewDisplay(t Target) *Display { return &Display{t: t} }

func (d *Display) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if d.t == nil {
		return
	}
	d.t.SetPixel(int(x), int(y), c)
}

func (d *Display) Display() error { return nil }

// Font is the overlay font.
var Font tinyfont.Fonter = &tinyfont.TomThumb

// Text draws s with its baseline at pixel row y. Coordinates are in target
// pixels, not drawing-plane units.
func (r *Renderer) Text(x, y int, s string, c color.RGBA) {
	if r.t == nil || s == "" {
		return
	}
	tinyfont.WriteLine(NewDisplay(r.t), Font, int16(x), int16(y), s, c)
}

// TextWidth returns the width in pixels of s in the overlay font.
func TextWidth(s string) int {
	_, w := tinyfont.LineWidth(Font, s)
	return int(w)
}
