package raster

import "math"

// Line plots a depth-interpolated DDA line in the current draw color. Depth
// is interpolated linearly from z1 to z2 so lines participate in the depth
// test like any other geometry. Zero-length segments are a no-op.
func Line(fb *FrameBuffer, x1, y1, x2, y2 int, z1, z2 float64) {
	dx := x2 - x1
	dy := y2 - y1

	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		return
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)
	zInc := (z2 - z1) / float64(steps)

	x := float64(x1)
	y := float64(y1)
	z := z1
	for i := 0; i <= steps; i++ {
		fb.Point(int(x), int(y), z)
		x += xInc
		y += yInc
		z += zInc
	}
}

// ThickLine draws the main line plus perpendicular-offset passes for
// thickness > 1. Thin lines fall through to a single Line call.
func ThickLine(fb *FrameBuffer, x1, y1, x2, y2 int, z1, z2, thickness float64) {
	fdx := float64(x2 - x1)
	fdy := float64(y2 - y1)
	distance := math.Sqrt(fdx*fdx + fdy*fdy)
	if distance == 0 {
		return
	}
	fdx /= distance
	fdy /= distance

	Line(fb, x1, y1, x2, y2, z1, z2)
	if thickness <= 1 {
		return
	}

	for off := 1; off <= int(thickness); off++ {
		o := float64(off) * 0.5
		perpX := -fdy * o
		perpY := fdx * o

		Line(fb,
			x1+int(perpX), y1+int(perpY),
			x2+int(perpX), y2+int(perpY), z1, z2)
		Line(fb,
			x1-int(perpX), y1-int(perpY),
			x2-int(perpX), y2-int(perpY), z1, z2)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
