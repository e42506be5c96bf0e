package shading

import (
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/pipeline"
	"solar-renderer/internal/raster"
)

// solarShader renders the star: layered 3D noise for the granulation and
// sunspots, sine band patterns for the surface flow, and a slow global
// pulsation of the whole disc.
func solarShader(frag raster.Fragment, u *pipeline.Uniforms) raster.Color {
	brightColor := raster.NewColor(255, 240, 70)
	midColor := raster.NewColor(255, 100, 0)
	darkColor := raster.NewColor(70, 10, 0)

	position := mathutil.Vec3{frag.VertexPosition[0], frag.VertexPosition[1], frag.Depth}

	baseFrequency := 0.04 + position[0]*0.01
	pulsateAmplitude := 0.6 + position[1]*0.02
	t := float64(u.Time) * 0.02

	pulsate := math.Sin(t*baseFrequency) * pulsateAmplitude

	const zoom = 1500.0
	noise1 := u.Noise.GetNoise3D(
		position[0]*zoom,
		position[1]*zoom,
		(position[2]+pulsate)*zoom,
	)
	noise2 := u.Noise.GetNoise3D(
		(position[0]+300)*zoom,
		(position[1]+300)*zoom,
		(position[2]+300+pulsate)*zoom,
	)
	noiseValue := (noise1 + noise2) * 0.5

	fineNoise := u.Noise.GetNoise3D(
		position[0]*500,
		position[1]*500,
		(position[2]+pulsate)*500,
	)
	adjustedNoise := (noiseValue+fineNoise*0.6)*1.8 - 0.4

	highFreqNoise := u.Noise.GetNoise3D(
		position[0]*2000,
		position[1]*2000,
		(position[2]+pulsate)*2000,
	) * 0.03

	bands1 := math.Sin(position[1]*6+noiseValue*25+t*0.15) * 0.2
	bands2 := math.Sin(position[1]*10+noiseValue*50+t*0.08) * 0.1
	combinedBands := bands1 + bands2 + highFreqNoise

	var color raster.Color
	if adjustedNoise+combinedBands > 0.4 {
		color = midColor.Lerp(brightColor, adjustedNoise+combinedBands-0.4)
	} else {
		color = darkColor.Lerp(midColor, (adjustedNoise+combinedBands)*2.5)
	}

	pulseEffect := 1 + 0.15*math.Sin(t*1.5+position[0]*0.05)
	return color.Mul(pulseEffect).Mul(frag.Intensity)
}
