package geom

import (
	"math"
	"testing"
)

func TestProjectWithoutCameraIsOrthographic(t *testing.T) {
	if got, want := New(3, 4, 5).ProjectTo2D(nil), New(3, 4, 0); got != want {
		t.Fatalf("ProjectTo2D(nil) = %v, want %v", got, want)
	}
}

func TestProjectZeroDepthIgnoresCamera(t *testing.T) {
	cam := NewCamera(New(0, 0, 50))
	if got, want := New(-7, 8, 0).ProjectTo2D(cam), New(-7, 8, 0); got != want {
		t.Fatalf("ProjectTo2D = %v, want %v", got, want)
	}
}

func TestProjectPerspectiveDivide(t *testing.T) {
	// zd = 5 / (5 - -5) + 1 = 1.5
	cam := NewCamera(New(0, 0, -5))
	if got, want := New(3, 9, 5).ProjectTo2D(cam), New(2, 6, 0); got != want {
		t.Fatalf("ProjectTo2D = %v, want %v", got, want)
	}
	// zd = -10 / (-10 - 10) + 1 = 1.5
	cam = NewCamera(New(0, 0, 10))
	if got, want := New(-3, 12, -10).ProjectTo2D(cam), New(-2, 8, 0); got != want {
		t.Fatalf("ProjectTo2D = %v, want %v", got, want)
	}
}

func TestProjectLevelWithCameraCollapses(t *testing.T) {
	cam := NewCamera(New(0, 0, 4))
	p := New(30, -40, 4)
	if p.Projectable(cam) {
		t.Fatalf("Projectable() = true for a point level with the camera")
	}
	if got := p.ProjectTo2D(cam); got != Origin {
		t.Fatalf("ProjectTo2D = %v, want Origin", got)
	}
}

func TestProjectHalfwaySaturates(t *testing.T) {
	cam := NewCamera(New(0, 0, 8))
	p := New(3, -3, 4)
	if p.Projectable(cam) {
		t.Fatalf("Projectable() = true for 2z == camera z")
	}
	if got, want := p.ProjectTo2D(cam), New(math.MaxInt32, math.MinInt32, 0); got != want {
		t.Fatalf("ProjectTo2D = %v, want %v", got, want)
	}
	if got := New(0, 0, 4).ProjectTo2D(cam); got != Origin {
		t.Fatalf("ProjectTo2D of 0/0 = %v, want Origin", got)
	}
}

func TestProjectable(t *testing.T) {
	cam := NewCamera(New(0, 0, 8))
	if !New(1, 1, 0).Projectable(cam) || !New(1, 1, 3).Projectable(cam) || !New(1, 1, 3).Projectable(nil) {
		t.Fatalf("Projectable() = false for a regular point")
	}
}
