package shading

import (
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/pipeline"
	"solar-renderer/internal/raster"
)

// glacialShader renders the ice world: one ice-blue base tinted by four
// noise octaves, one of them time-drifting, plus a subtle flicker.
func glacialShader(frag raster.Fragment, u *pipeline.Uniforms) raster.Color {
	iceBlue := raster.NewColor(173, 216, 230)

	position := mathutil.Vec3{frag.VertexPosition[0], frag.VertexPosition[1], frag.Depth}
	const zoom = 100.0
	timeFactor := float64(u.Time) * 0.1

	baseNoise := u.Noise.GetNoise3D(position[0]*zoom, position[1]*zoom, position[2]*zoom) * 0.6
	detail1 := u.Noise.GetNoise3D(position[0]*700, position[1]*700, position[2]*700) * 0.5
	detail2 := u.Noise.GetNoise3D(
		position[0]*1200+timeFactor,
		position[1]*1200+timeFactor,
		position[2]*1200+timeFactor,
	) * 0.4
	fineDetail := u.Noise.GetNoise3D(position[0]*2500, position[1]*2500, position[2]*2500) * 0.3

	combined := clamp01(baseNoise + detail1 + detail2 + fineDetail)
	texturized := iceBlue.Mul(1 + combined)

	flicker := math.Sin(position[0]*0.05+float64(u.Time)*0.005)*0.1 + 0.9
	flickerLight := math.Cos(position[1]*0.03+float64(u.Time)*0.007)*0.1 + 0.95

	return texturized.Mul(flicker * flickerLight).LimitMin(60).Mul(frag.Intensity)
}
