package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"painter/canvas/raster"
	"painter/hal"
)

// showPanic replaces the frame with a readable report of v and the stack of
// the panicking goroutine.
func showPanic(fb hal.Framebuffer, v any, stack []byte) {
	fb.ClearRGB(255, 255, 255)

	t := &raster.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
	r := raster.NewRenderer(t)

	lines := panicLines(v, stack)

	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	const lineHeight = 8

	fontWidth := raster.TextWidth("0")
	if fontWidth <= 0 {
		_ = fb.Present()
		return
	}
	cols := fb.Width() / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := lineHeight
	for _, line := range lines {
		for len(line) > 0 {
			if y > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			r.Text(0, y, chunk, fg)
			y += lineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func panicLines(v any, stack []byte) []string {
	lines := []string{
		"Painter panic:",
		fmt.Sprintf("panic: %v", v),
	}
	if len(stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
