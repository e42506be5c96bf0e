package pipeline

import (
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

// VertexShader maps one model-space vertex through the MVP and viewport
// matrices into screen space and remaps its normal by the inverse-transpose
// of the model's linear part. The input vertex is untouched; the result
// keeps the model-space attributes the fragment shaders key their noise on.
func VertexShader(v raster.Vertex, u *Uniforms) raster.Vertex {
	clip := u.ProjectionMatrix.MulVec4(
		u.ViewMatrix.MulVec4(
			u.ModelMatrix.MulVec4(mathutil.FromPoint(v.Position))))

	// Perspective divide. A vertex at the camera plane would divide by
	// zero; treat it as unprojected rather than poisoning the triangle.
	w := clip[3]
	if w > -1e-9 && w < 1e-9 {
		w = 1
	}
	ndc := mathutil.Vec4{clip[0] / w, clip[1] / w, clip[2] / w, 1}

	screen := u.ViewportMatrix.MulVec4(ndc)

	// Inverse-transpose of the model 3×3 handles non-uniform scale; the
	// Mat3 inverse already falls back to identity when singular.
	normalMatrix := u.ModelMatrix.Mat3Part().Transpose().Inverse()

	out := v
	out.ScreenPosition = screen.XYZ()
	out.TransformedNormal = normalMatrix.MulVec3(v.Normal)
	return out
}
