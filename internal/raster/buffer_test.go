package raster

import (
	"math"
	"testing"
)

func TestClear(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.SetBackgroundColor(NewColor(10, 20, 30))
	fb.SetCurrentColor(NewColor(255, 0, 0))
	fb.Point(1, 1, 0.5)

	fb.Clear()

	if got := fb.At(1, 1); got != (Color{R: 10, G: 20, B: 30}) {
		t.Errorf("color after clear = %v", got)
	}
	for i, d := range fb.Depth {
		if !math.IsInf(d, 1) {
			t.Fatalf("depth[%d] = %v, want +Inf", i, d)
		}
	}
}

func TestPointDepthTest(t *testing.T) {
	fb := NewFrameBuffer(4, 4)

	near := NewColor(255, 0, 0)
	far := NewColor(0, 0, 255)

	// Near first, farther second: near wins.
	fb.SetCurrentColor(near)
	fb.Point(0, 0, 0.2)
	fb.SetCurrentColor(far)
	fb.Point(0, 0, 0.8)
	if got := fb.At(0, 0); got != near {
		t.Errorf("far fragment overwrote near one: %v", got)
	}

	// Farther first, nearer second: near still wins.
	fb.SetCurrentColor(far)
	fb.Point(1, 0, 0.8)
	fb.SetCurrentColor(near)
	fb.Point(1, 0, 0.2)
	if got := fb.At(1, 0); got != near {
		t.Errorf("near fragment lost to far one: %v", got)
	}
}

func TestPointDepthBias(t *testing.T) {
	fb := NewFrameBuffer(4, 4)

	first := NewColor(255, 0, 0)
	second := NewColor(0, 255, 0)

	// Within the bias window the later write is accepted.
	fb.SetCurrentColor(first)
	fb.Point(0, 0, 0.5)
	fb.SetCurrentColor(second)
	fb.Point(0, 0, 0.5+DepthBias/2)
	if got := fb.At(0, 0); got != second {
		t.Errorf("write inside bias window rejected: %v", got)
	}

	// Beyond the window it is not.
	fb.SetCurrentColor(first)
	fb.Point(1, 0, 0.5)
	fb.SetCurrentColor(second)
	fb.Point(1, 0, 0.5+DepthBias*2)
	if got := fb.At(1, 0); got != first {
		t.Errorf("write beyond bias window accepted: %v", got)
	}
}

func TestPointPainterMode(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.SetDepthMode(DepthNone)

	fb.SetCurrentColor(NewColor(255, 0, 0))
	fb.Point(0, 0, 0.1)
	fb.SetCurrentColor(NewColor(0, 255, 0))
	fb.Point(0, 0, 0.9)

	// Draw order wins regardless of depth.
	if got := fb.At(0, 0); got != (Color{G: 255}) {
		t.Errorf("painter mode kept earlier write: %v", got)
	}
}

func TestPointOutOfBounds(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.SetCurrentColor(NewColor(255, 255, 255))

	// Must not panic or corrupt neighbors.
	fb.Point(-1, 0, 0)
	fb.Point(0, -1, 0)
	fb.Point(4, 0, 0)
	fb.Point(0, 4, 0)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.At(x, y); got != (Color{}) {
				t.Fatalf("pixel (%d,%d) was written: %v", x, y, got)
			}
		}
	}
}

func TestAtOutOfBounds(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	if got := fb.At(-1, 99); got != (Color{}) {
		t.Errorf("At out of bounds = %v, want zero", got)
	}
}

func TestParseDepthMode(t *testing.T) {
	tests := []struct {
		name    string
		want    DepthMode
		wantErr bool
	}{
		{"zbuffer", DepthTest, false},
		{"painter", DepthNone, false},
		{"bogus", DepthTest, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDepthMode(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("mode = %v, want %v", got, tc.want)
			}
		})
	}
}
