package raster

import (
	"iter"
	"math"

	"solar-renderer/internal/mathutil"
)

// edgeEpsilon accepts slightly negative barycentric weights so adjacent
// triangles share their seam pixels instead of leaving gaps.
const edgeEpsilon = -0.001

// minIntensity is the floor on the directional-light term so back-facing
// fragments never go fully dark before shading.
const minIntensity = 0.3

// fragmentLight is the fixed directional light dotted with the interpolated
// normal to produce the fragment intensity.
var fragmentLight = mathutil.Vec3{0.6, 0.8, 0.4}.Normalize()

// Triangle rasterizes one screen-space triangle into a lazy fragment
// sequence, clamped to a width×height target. Depth, normal and object-space
// position are interpolated linearly by barycentric weights in screen space;
// no perspective correction is applied. Degenerate triangles yield nothing.
// The sequence is finite and meant to be consumed immediately by the shading
// stage.
func Triangle(v0, v1, v2 Vertex, width, height int) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		x0, y0, z0 := v0.ScreenPosition[0], v0.ScreenPosition[1], v0.ScreenPosition[2]
		x1, y1, z1 := v1.ScreenPosition[0], v1.ScreenPosition[1], v1.ScreenPosition[2]
		x2, y2, z2 := v2.ScreenPosition[0], v2.ScreenPosition[1], v2.ScreenPosition[2]

		// Bounding box clamped to the target.
		minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
		maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
		minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
		maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

		if minX < 0 {
			minX = 0
		}
		if maxX >= width {
			maxX = width - 1
		}
		if minY < 0 {
			minY = 0
		}
		if maxY >= height {
			maxY = height - 1
		}
		if minX > maxX || minY > maxY {
			return
		}

		// Barycentric setup; a near-zero determinant is a degenerate
		// (zero-area) triangle.
		det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
		if det > -1e-9 && det < 1e-9 {
			return
		}
		invDet := 1.0 / det

		dy12 := y1 - y2
		dx21 := x2 - x1
		dy20 := y2 - y0
		dx02 := x0 - x2

		for sy := minY; sy <= maxY; sy++ {
			dsy := float64(sy) - y2
			for sx := minX; sx <= maxX; sx++ {
				dsx := float64(sx) - x2
				w0 := (dy12*dsx + dx21*dsy) * invDet
				w1 := (dy20*dsx + dx02*dsy) * invDet
				w2 := 1.0 - w0 - w1

				if w0 < edgeEpsilon || w1 < edgeEpsilon || w2 < edgeEpsilon {
					continue
				}

				normal := v0.TransformedNormal.Scale(w0).
					Add(v1.TransformedNormal.Scale(w1)).
					Add(v2.TransformedNormal.Scale(w2))

				intensity := fragmentLight.Dot(normal.Normalize())
				if intensity < minIntensity {
					intensity = minIntensity
				}

				frag := Fragment{
					X:      sx,
					Y:      sy,
					Depth:  w0*z0 + w1*z1 + w2*z2,
					Normal: normal,
					VertexPosition: v0.Position.Scale(w0).
						Add(v1.Position.Scale(w1)).
						Add(v2.Position.Scale(w2)),
					Intensity: intensity,
				}
				if !yield(frag) {
					return
				}
			}
		}
	}
}
