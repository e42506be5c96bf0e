package shading

import (
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/pipeline"
	"solar-renderer/internal/raster"
)

// alienPlanetShader paints an ocean world with drifting flora continents.
// The elevation noise is time-offset so the weather visibly migrates.
func alienPlanetShader(frag raster.Fragment, u *pipeline.Uniforms) raster.Color {
	oceanColor := raster.NewColor(25, 25, 112)
	floraColor := raster.NewColor(110, 62, 136)
	alienColor := raster.NewColor(13, 246, 243)

	position := mathutil.Vec3{frag.VertexPosition[0], frag.VertexPosition[1], frag.Depth}
	const zoom = 450.0
	timeFactor := float64(u.Time) * 0.15

	noise1 := u.Noise.GetNoise3D(
		position[0]*zoom+timeFactor,
		position[1]*zoom+timeFactor,
		position[2]*zoom+timeFactor,
	)
	noise2 := u.Noise.GetNoise3D(
		(position[0]+300)*zoom+timeFactor,
		(position[1]+300)*zoom+timeFactor,
		(position[2]+300)*zoom+timeFactor,
	)
	noiseValue := (noise1 + noise2) * 0.5

	driftNoise := u.Noise.GetNoise3D(
		position[0]*0.05+timeFactor,
		position[1]*0.05+timeFactor,
		position[2]*0.05+timeFactor,
	)

	combined := clamp01(noiseValue + driftNoise*0.4)

	var base raster.Color
	switch {
	case combined > 0.75:
		base = alienColor
	case combined > 0.4:
		base = floraColor
	default:
		base = oceanColor
	}

	// Six texture octaves, decreasing amplitude with frequency.
	textureCombined := clamp01(
		u.Noise.GetNoise3D(position[0]*700, position[1]*700, position[2]*700)*0.3 +
			u.Noise.GetNoise3D(position[0]*1000, position[1]*1000, position[2]*1000)*0.25 +
			u.Noise.GetNoise3D(position[0]*1500, position[1]*1500, position[2]*1500)*0.2 +
			u.Noise.GetNoise3D(position[0]*2000, position[1]*2000, position[2]*2000)*0.15 +
			u.Noise.GetNoise3D(position[0]*2500, position[1]*2500, position[2]*2500)*0.15 +
			u.Noise.GetNoise3D(position[0]*3500, position[1]*3500, position[2]*3500)*0.1)

	texturized := base.Mul(1 + textureCombined).LimitMin(50)

	lightFactor := math.Sin(position[1]*0.5+float64(u.Time)*0.001)*0.2 + 1
	directionalLight := math.Cos(position[0]*0.4+float64(u.Time)*0.0015)*0.2 + 1

	return texturized.Mul(lightFactor * directionalLight).LimitMin(50).Mul(frag.Intensity)
}
