package shading

import (
	"math"

	"solar-renderer/internal/pipeline"
	"solar-renderer/internal/raster"
)

// craftShader is the flat metallic hull shader: a height gradient between
// two blues, normal-based shadowing and a slow time shimmer. The only
// variant that does not sample the noise field.
func craftShader(frag raster.Fragment, u *pipeline.Uniforms) raster.Color {
	baseBlue := raster.NewColor(30, 30, 100)
	highlightBlue := raster.NewColor(70, 130, 180)
	shadowBlack := raster.NewColor(0, 0, 0)

	gradientFactor := clamp01(frag.VertexPosition[1] / 10)
	timeFactor := clamp01(math.Sin(float64(u.Time)*0.01)*0.5 + 0.5)
	brightness := clamp01(math.Abs(frag.Normal[1]))

	return baseBlue.
		Lerp(highlightBlue, gradientFactor).
		Lerp(shadowBlack, 1-brightness).
		Lerp(raster.NewColor(50, 50, 100), timeFactor*0.2)
}
