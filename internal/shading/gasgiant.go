package shading

import (
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/pipeline"
	"solar-renderer/internal/raster"
)

// bandedParams distinguish the warm and cold gas giants: palette, the wind
// tilt of the bands, and the storm-spot pass.
type bandedParams struct {
	palette       [5]mathutil.Vec3
	windTilt      float64
	spotScale     float64
	spotThreshold float64
	stormColor    mathutil.Vec3
}

func gasGiantShader(frag raster.Fragment, u *pipeline.Uniforms) raster.Color {
	return bandedGiantSurface(frag, u, bandedParams{
		palette: [5]mathutil.Vec3{
			{110.0 / 255, 0.0 / 255, 90.0 / 255},
			{160.0 / 255, 20.0 / 255, 60.0 / 255},
			{130.0 / 255, 10.0 / 255, 80.0 / 255},
			{180.0 / 255, 40.0 / 255, 90.0 / 255},
			{140.0 / 255, 10.0 / 255, 70.0 / 255},
		},
		windTilt:      0,
		spotScale:     25,
		spotThreshold: 0.75,
		stormColor:    mathutil.Vec3{0.95, 0.85, 0.65},
	})
}

func coldGasGiantShader(frag raster.Fragment, u *pipeline.Uniforms) raster.Color {
	return bandedGiantSurface(frag, u, bandedParams{
		palette: [5]mathutil.Vec3{
			{100.0 / 255, 150.0 / 255, 180.0 / 255},
			{120.0 / 255, 180.0 / 255, 200.0 / 255},
			{90.0 / 255, 140.0 / 255, 170.0 / 255},
			{130.0 / 255, 190.0 / 255, 210.0 / 255},
			{80.0 / 255, 120.0 / 255, 160.0 / 255},
		},
		windTilt:      0.02,
		spotScale:     15,
		spotThreshold: 0.70,
		stormColor:    mathutil.Vec3{0.75, 0.85, 0.95},
	})
}

func bandedGiantSurface(frag raster.Fragment, u *pipeline.Uniforms, p bandedParams) raster.Color {
	pos := frag.VertexPosition
	time := float64(u.Time) * 0.001
	dynamicY := pos[1] + time

	// Low-frequency distortion bends the latitude bands.
	const distortionScale = 10.0
	distortion := u.Noise.GetNoise2D(pos[0]*distortionScale, dynamicY*distortionScale)
	distortedY := dynamicY + pos[0]*p.windTilt + distortion*0.1 + pos[0]*0.05

	const bandFrequency = 40.0
	bandSine := math.Sin(distortedY * bandFrequency)
	bandVariation := math.Sin(pos[1]*10) * 0.3
	bandIndexFloat := (bandSine + bandVariation + 1) / 2 * float64(len(p.palette))
	bandIndex := int(bandIndexFloat) % len(p.palette)
	if bandIndex < 0 {
		bandIndex += len(p.palette)
	}

	// Per-band jitter. A band-keyed hash substitutes for randomness so the
	// offset is identical along a band (continuity) and across calls
	// (determinism).
	h := bandHash(uint64(bandIndex), math.Float64bits(math.Floor(pos[1]*4)))
	randomOffset := (float64(h&0xffff)/0xffff*2 - 1) * 0.03
	saturationBoost := 1.0
	if h&(1<<20) != 0 {
		saturationBoost = 1.2
	}

	jitter := mathutil.Vec3{randomOffset, randomOffset, randomOffset}
	baseBandColor := p.palette[bandIndex].Add(jitter).Scale(saturationBoost)
	nextBandColor := p.palette[(bandIndex+1)%len(p.palette)].Add(jitter)

	interpolated := baseBandColor.Lerp(nextBandColor, bandIndexFloat-math.Floor(bandIndexFloat))

	// High-frequency octaves give the bands their grain.
	noise1 := u.Noise.GetNoise2D(pos[0]*80, pos[1]*80)
	noise2 := u.Noise.GetNoise2D(pos[0]*40, pos[1]*40)
	perturbed := interpolated.Scale(0.95 + (noise1+noise2)*0.015)

	internalShadow := math.Abs(math.Sin(distortedY*bandFrequency*0.1)) * 0.15
	shaded := perturbed.Scale(1 - internalShadow)

	shadowNoise := u.Noise.GetNoise2D(pos[0]*50, pos[1]*50)
	shaded = shaded.Scale(1 - shadowNoise*0.05)

	spotNoise := u.Noise.GetNoise2D(pos[0]*p.spotScale, pos[1]*p.spotScale)
	final := shaded
	if spotNoise > p.spotThreshold {
		mix := (spotNoise - p.spotThreshold) / (1 - p.spotThreshold)
		final = shaded.Lerp(p.stormColor, mix)
	}

	normal := pos.Normalize()
	lambertian := math.Max(surfaceLight.Dot(normal), 0)
	final = final.Scale(0.75 + 0.25*lambertian)

	// Atmospheric falloff toward the poles.
	final = final.Scale(1 - math.Abs(pos[1])*0.15)

	// Small specular sheen on the atmosphere.
	viewDir := mathutil.Vec3{0, 0, 1}
	reflectDir := normal.Scale(2 * normal.Dot(surfaceLight)).Sub(surfaceLight).Normalize()
	specular := math.Pow(math.Max(viewDir.Dot(reflectDir), 0), 10)
	final = final.Add(mathutil.Vec3{1, 1, 1}.Scale(specular * 0.15))

	return raster.FromVec3(final.Scale(frag.Intensity))
}

// bandHash mixes two words into pseudo-random bits (splitmix64 finalizer).
func bandHash(a, b uint64) uint64 {
	x := a*0x9e3779b97f4a7c15 + b
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
