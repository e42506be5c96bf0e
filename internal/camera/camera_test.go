package camera

import (
	"math"
	"testing"

	"solar-renderer/internal/mathutil"
)

func newTestCamera() *Camera {
	return New(mathutil.Vec3{0, 0, 10}, mathutil.Vec3{}, mathutil.WorldUp)
}

func TestOrbitPreservesRadius(t *testing.T) {
	c := newTestCamera()
	want := c.Eye.Sub(c.Center).Len()

	deltas := [][2]float64{
		{0.3, 0}, {0, 0.2}, {-1.1, 0.4}, {2.7, -0.9}, {0.01, 0.01},
	}
	for _, d := range deltas {
		c.Orbit(d[0], d[1])
		got := c.Eye.Sub(c.Center).Len()
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("orbit(%v, %v): radius = %v, want %v", d[0], d[1], got, want)
		}
	}
}

func TestOrbitPitchClamp(t *testing.T) {
	c := newTestCamera()
	radius := c.Eye.Sub(c.Center).Len()

	// Pile on pitch far beyond the clamp; the eye must never reach a pole.
	for i := 0; i < 50; i++ {
		c.Orbit(0, 1)
	}
	offset := c.Eye.Sub(c.Center)
	horizontal := math.Sqrt(offset[0]*offset[0] + offset[2]*offset[2])
	if horizontal < radius*math.Cos(math.Pi/2-pitchMargin)-1e-6 {
		t.Errorf("pitch exceeded clamp: horizontal distance %v", horizontal)
	}
	if horizontal < 1e-6 {
		t.Error("eye reached the pole; spherical decomposition degenerates")
	}

	c = newTestCamera()
	for i := 0; i < 50; i++ {
		c.Orbit(0, -1)
	}
	offset = c.Eye.Sub(c.Center)
	horizontal = math.Sqrt(offset[0]*offset[0] + offset[2]*offset[2])
	if horizontal < 1e-6 {
		t.Error("eye reached the pole orbiting upward")
	}
}

func TestChangedFlag(t *testing.T) {
	c := newTestCamera()
	if !c.Changed {
		t.Fatal("new camera should start changed so the first frame renders")
	}

	c.Changed = false
	c.Orbit(0.1, 0)
	if !c.Changed {
		t.Error("Orbit should set Changed")
	}

	c.Changed = false
	c.Zoom(1)
	if !c.Changed {
		t.Error("Zoom should set Changed")
	}

	c.Changed = false
	c.MoveVertical(1)
	if !c.Changed {
		t.Error("MoveVertical should set Changed")
	}

	c.Changed = false
	c.MoveCenter(mathutil.Vec3{1, 0, 0})
	if c.Changed {
		t.Error("MoveCenter must not set Changed")
	}
}

func TestMoveCenter(t *testing.T) {
	c := newTestCamera()
	c.Up = mathutil.Vec3{0.1, 0.9, 0.1}

	c.MoveCenter(mathutil.Vec3{5, 0, -3})

	if c.Eye != (mathutil.Vec3{5, 0, 7}) {
		t.Errorf("eye = %v, want (5,0,7)", c.Eye)
	}
	if c.Center != (mathutil.Vec3{5, 0, -3}) {
		t.Errorf("center = %v, want (5,0,-3)", c.Center)
	}
	if c.Up != mathutil.WorldUp {
		t.Errorf("up = %v, want world up reset", c.Up)
	}
}

func TestMoveVertical(t *testing.T) {
	c := newTestCamera()
	c.MoveVertical(3)
	if c.Eye != (mathutil.Vec3{0, 3, 10}) || c.Center != (mathutil.Vec3{0, 3, 0}) {
		t.Errorf("eye %v center %v after vertical move", c.Eye, c.Center)
	}
}

func TestZoom(t *testing.T) {
	c := newTestCamera()
	c.Zoom(4)
	got := c.Eye.Sub(c.Center).Len()
	if math.Abs(got-6) > 1e-9 {
		t.Errorf("radius after zoom-in = %v, want 6", got)
	}

	c.Zoom(-4)
	got = c.Eye.Sub(c.Center).Len()
	if math.Abs(got-10) > 1e-9 {
		t.Errorf("radius after zoom-out = %v, want 10", got)
	}
}

func TestZoomDegenerate(t *testing.T) {
	c := New(mathutil.Vec3{}, mathutil.Vec3{}, mathutil.WorldUp)
	c.Zoom(5)
	if c.Eye != (mathutil.Vec3{}) {
		t.Errorf("zoom on eye==center moved the eye to %v", c.Eye)
	}
}

func TestViewMatrixCenterInFront(t *testing.T) {
	c := newTestCamera()
	view := c.ViewMatrix()
	got := view.MulPoint(c.Center)
	if math.Abs(got[0]) > 1e-9 || math.Abs(got[1]) > 1e-9 || math.Abs(got[2]+10) > 1e-9 {
		t.Errorf("center in view space = %v, want (0,0,-10)", got)
	}
}
