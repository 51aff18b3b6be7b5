// Package scene keeps the ordered list of shapes on the canvas and renders
// them through a camera.
package scene

import (
	"encoding/binary"
	"image/color"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"painter/canvas/drawing"
	"painter/canvas/geom"
)

type entry struct {
	id    uuid.UUID
	shape drawing.Shape
}

// Scene is a collection of shapes drawn in insertion order.
type Scene struct {
	// Camera is used for every projection. Nil means orthographic.
	Camera *geom.Camera

	entries []entry
}

func New(cam *geom.Camera) *Scene { return &Scene{Camera: cam} }

// Add appends a shape and returns its id.
func (s *Scene) Add(sh drawing.Shape) uuid.UUID {
	id := uuid.New()
	s.entries = append(s.entries, entry{id: id, shape: sh})
	return id
}

// Remove deletes the shape with the given id.
func (s *Scene) Remove(id uuid.UUID) bool {
	for i := range s.entries {
		if s.entries[i].id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Scene) Get(id uuid.UUID) (drawing.Shape, bool) {
	for _, e := range s.entries {
		if e.id == id {
			return e.shape, true
		}
	}
	return nil, false
}

func (s *Scene) Len() int { return len(s.entries) }

// Each calls fn for every shape in draw order until fn returns false.
func (s *Scene) Each(fn func(id uuid.UUID, sh drawing.Shape) bool) {
	for _, e := range s.entries {
		if !fn(e.id, e.shape) {
			return
		}
	}
}

// Render draws every shape into sink. It stops at the first error.
func (s *Scene) Render(sink drawing.Sink) error {
	for _, e := range s.entries {
		if err := e.shape.Draw(sink, s.Camera); err != nil {
			return err
		}
	}
	return nil
}

// Fingerprint hashes everything Render would emit. Two scenes with the same
// fingerprint produce the same frame.
func (s *Scene) Fingerprint() uint64 {
	h := &hashSink{d: xxhash.New()}
	for _, e := range s.entries {
		_ = e.shape.Draw(h, s.Camera)
	}
	return h.d.Sum64()
}

// hashSink feeds the vertex stream into a digest.
type hashSink struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (h *hashSink) Begin(mode drawing.Mode, c color.RGBA) {
	_, _ = h.d.Write([]byte{'B', byte(mode), c.R, c.G, c.B, c.A})
}

func (h *hashSink) Vertex(x, y int) {
	binary.LittleEndian.PutUint32(h.buf[0:4], uint32(int32(x)))
	binary.LittleEndian.PutUint32(h.buf[4:8], uint32(int32(y)))
	_, _ = h.d.Write(h.buf[:])
}

func (h *hashSink) End() error {
	_, _ = h.d.Write([]byte{'E'})
	return nil
}
