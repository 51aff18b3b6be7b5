package raster

import (
	"image"
	"image/color"
)

// RGBATarget renders into an *image.RGBA, for file output.
type RGBATarget struct {
	Img *image.RGBA
}

func NewRGBATarget(w, h int) *RGBATarget {
	return &RGBATarget{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *RGBATarget) Size() (w, h int) {
	if t == nil || t.Img == nil {
		return 0, 0
	}
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *RGBATarget) SetPixel(x, y int, c color.RGBA) {
	if t == nil || t.Img == nil {
		return
	}
	b := t.Img.Bounds()
	if !(image.Point{X: b.Min.X + x, Y: b.Min.Y + y}).In(b) {
		return
	}
	t.Img.SetRGBA(b.Min.X+x, b.Min.Y+y, c)
}

func (t *RGBATarget) Clear(c color.RGBA) {
	if t == nil || t.Img == nil {
		return
	}
	pix := t.Img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}
