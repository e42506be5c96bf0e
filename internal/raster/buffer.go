package raster

import (
	"fmt"
	"math"
)

// DepthMode selects how Point resolves overlapping writes.
type DepthMode int

const (
	// DepthTest keeps the nearest fragment per pixel via the z-buffer.
	DepthTest DepthMode = iota
	// DepthNone lets draw order win (painter's algorithm); the caller is
	// expected to pre-sort geometry back to front.
	DepthNone
)

// ParseDepthMode maps a config name to a DepthMode.
func ParseDepthMode(name string) (DepthMode, error) {
	switch name {
	case "zbuffer":
		return DepthTest, nil
	case "painter":
		return DepthNone, nil
	default:
		return DepthTest, fmt.Errorf("raster: unknown depth mode %q", name)
	}
}

// DepthBias is the fixed epsilon added to the stored depth during the test,
// avoiding z-fighting between directly adjacent surfaces. Not adaptive.
const DepthBias = 1e-4

// FrameBuffer holds the rendering target as flat slices for cache locality.
// Depth is lower-is-closer NDC z, reset to +Inf each frame.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float64 // per-pixel nearest depth, len = W*H

	mode       DepthMode
	current    Color
	background Color
}

// NewFrameBuffer allocates a cleared buffer with depth testing enabled.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
		Depth:  make([]float64, w*h),
	}
	fb.Clear()
	return fb
}

// SetDepthMode switches between z-buffered and painter's overlap policy.
func (fb *FrameBuffer) SetDepthMode(m DepthMode) {
	fb.mode = m
}

// DepthMode reports the active overlap policy.
func (fb *FrameBuffer) DepthMode() DepthMode {
	return fb.mode
}

// SetBackgroundColor sets the color Clear fills with.
func (fb *FrameBuffer) SetBackgroundColor(c Color) {
	fb.background = c
}

// SetCurrentColor sets the draw-color register used by Point.
func (fb *FrameBuffer) SetCurrentColor(c Color) {
	fb.current = c
}

// Clear fills the color buffer with the background color and resets every
// depth entry to +Inf.
func (fb *FrameBuffer) Clear() {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = fb.background.R
		fb.Color[i+1] = fb.background.G
		fb.Color[i+2] = fb.background.B
		fb.Color[i+3] = 255
	}
	for i := range fb.Depth {
		fb.Depth[i] = math.Inf(1)
	}
}

// Point plots the current color at (x, y) with the configured depth policy.
// Out-of-bounds coordinates are silently dropped; this is the single plot
// primitive shared by the rasterizer, the line plotter, and the skybox pass.
func (fb *FrameBuffer) Point(x, y int, depth float64) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	idx := y*fb.Width + x
	if fb.mode == DepthTest {
		if depth > fb.Depth[idx]+DepthBias {
			return
		}
		fb.Depth[idx] = depth
	}
	px := idx * 4
	fb.Color[px] = fb.current.R
	fb.Color[px+1] = fb.current.G
	fb.Color[px+2] = fb.current.B
	fb.Color[px+3] = 255
}

// At returns the stored color at (x, y) for inspection; zero Color outside
// the buffer.
func (fb *FrameBuffer) At(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	px := (y*fb.Width + x) * 4
	return Color{R: fb.Color[px], G: fb.Color[px+1], B: fb.Color[px+2]}
}

// Pix exposes the flat row-major RGBA buffer for presentation.
func (fb *FrameBuffer) Pix() []uint8 {
	return fb.Color
}
