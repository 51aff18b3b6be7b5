// Package raster is the software renderer behind the painter preview.
//
// It implements drawing.Sink: shapes open a primitive with Begin, stream
// their projected vertices and close it with End, at which point the
// primitive is rasterized into a caller-provided Target.
//
// Pipeline (fixed):
//
//	Vertex (plane coords) → Viewport → Clip → Rasterization → Target.
//
// The renderer avoids allocations once its vertex buffer has grown to the
// largest primitive seen.
package raster
