package shading

import (
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/pipeline"
	"solar-renderer/internal/raster"
)

// rockyParams are the per-variant knobs of the shared rocky surface. The
// variant differs from the base planet only in palette, noise zoom and
// pulsation.
type rockyParams struct {
	bright, mid, dark raster.Color
	zoom              float64
	pulsateFrequency  float64
	pulsateAmplitude  float64
}

func rockyPlanetShader(frag raster.Fragment, u *pipeline.Uniforms) raster.Color {
	return rockySurface(frag, u, rockyParams{
		bright:           raster.NewColor(230, 120, 70),
		mid:              raster.NewColor(140, 70, 40),
		dark:             raster.NewColor(30, 10, 5),
		zoom:             1200,
		pulsateFrequency: 0.06,
		pulsateAmplitude: 0.1,
	})
}

func rockyPlanetVariantShader(frag raster.Fragment, u *pipeline.Uniforms) raster.Color {
	return rockySurface(frag, u, rockyParams{
		bright:           raster.NewColor(237, 201, 175),
		mid:              raster.NewColor(193, 154, 107),
		dark:             raster.NewColor(139, 108, 66),
		zoom:             1000,
		pulsateFrequency: 0.04,
		pulsateAmplitude: 0.08,
	})
}

func rockySurface(frag raster.Fragment, u *pipeline.Uniforms, p rockyParams) raster.Color {
	position := mathutil.Vec3{frag.VertexPosition[0], frag.VertexPosition[1], frag.Depth}
	time := float64(u.Time)

	// Two offset octaves form the base rocky relief.
	noise1 := u.Noise.GetNoise3D(position[0]*p.zoom, position[1]*p.zoom, position[2]*p.zoom)
	noise2 := u.Noise.GetNoise3D(
		(position[0]+400)*p.zoom,
		(position[1]+400)*p.zoom,
		(position[2]+400)*p.zoom,
	)
	noiseValue := (noise1 + noise2) * 0.5

	const craterFrequency = 1.5
	const craterAmplitude = 2.0
	craterValue := math.Sin(position[0]*craterFrequency+position[1]*craterFrequency) *
		math.Cos(position[0]*craterFrequency-position[1]*craterFrequency) *
		craterAmplitude

	combined := clamp01(noiseValue + craterValue)

	fineNoise := u.Noise.GetNoise3D(position[0]*1600, position[1]*1600, position[2]*1600) * 0.3
	combined = clamp01(combined + fineNoise)

	fractureNoise := u.Noise.GetNoise3D(position[0]*2000, position[1]*2000, position[2]*2000) * 0.15
	combined = clamp01(combined + fractureNoise)

	var color raster.Color
	if combined > 0.5 {
		color = p.mid.Lerp(p.bright, (combined-0.5)*1.5)
	} else {
		color = p.dark.Lerp(p.mid, combined*2)
	}

	lightFactor := math.Sin(position[1]*0.5+time*0.0015)*0.1 + 1
	directionalLight := math.Cos(position[0]*0.3+time*0.002)*0.05 + 1
	final := color.Mul(lightFactor * directionalLight)

	pulsate := math.Sin(time*p.pulsateFrequency+position[0]*0.02+position[1]*0.02) * p.pulsateAmplitude
	final = final.Mul(1 + pulsate)

	shadowNoise := u.Noise.GetNoise3D(position[0]*2500, position[1]*2500, position[2]*2500) * 0.3
	final = final.Mul(1 + shadowNoise)

	highlightNoise := u.Noise.GetNoise3D(position[0]*3000, position[1]*3000, position[2]*3000) * 0.25
	final = final.Mul(1 + highlightNoise)

	depthVariation := u.Noise.GetNoise3D(position[0]*3500, position[1]*3500, position[2]*3500) * 0.1
	final = final.Mul(1 + depthVariation)

	return final.Mul(frag.Intensity)
}
