package raster

import "solar-renderer/internal/mathutil"

// Vertex carries the model-space attributes loaded from a mesh plus the
// fields the vertex stage fills in. The transform stage returns a new value;
// input vertices are never mutated.
type Vertex struct {
	Position  mathutil.Vec3 // model space
	Normal    mathutil.Vec3 // model space
	TexCoords [2]float64
	Color     Color

	// Filled by the vertex stage.
	ScreenPosition    mathutil.Vec3 // x,y in pixels, z = NDC depth
	TransformedNormal mathutil.Vec3
}

// Fragment is one covered pixel with attributes interpolated by barycentric
// weights. Fragments live only for the duration of one rasterization pass.
type Fragment struct {
	X, Y           int
	Depth          float64
	Normal         mathutil.Vec3
	VertexPosition mathutil.Vec3 // object space, stable shader noise key
	Intensity      float64
}
