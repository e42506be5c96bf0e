package shading

import (
	"math"

	"solar-renderer/internal/pipeline"
	"solar-renderer/internal/raster"
)

// moonShader renders the cratered moon: threshold-picked crater noise over
// a gray base, drifting dust, and a Lambertian term against the
// position-as-normal (meshes are unit spheres).
func moonShader(frag raster.Fragment, u *pipeline.Uniforms) raster.Color {
	position := frag.VertexPosition
	time := float64(u.Time) * 0.001

	baseColor := raster.NewColor(180, 180, 180)
	craterColor := raster.NewColor(100, 100, 100)
	dustColor := raster.NewColor(150, 150, 150)

	craters := math.Abs(u.Noise.GetNoise3D(position[0]*150, position[1]*150, position[2]*150))
	dust := u.Noise.GetNoise3D(position[0]*80+time, position[1]*80, position[2]*80)
	surfaceDetails := math.Abs(u.Noise.GetNoise3D(position[0]*200, position[1]*200, position[2]*200))

	final := baseColor
	if craters > 0.7 {
		final = final.Lerp(craterColor, (craters-0.7)*2)
	}
	final = final.Lerp(dustColor, math.Abs(dust)*0.2)
	if surfaceDetails > 0.8 {
		final = final.Lerp(craterColor, (surfaceDetails-0.8)*0.5)
	}

	normal := position.Normalize()
	lambertian := math.Max(surfaceLight.Dot(normal), 0)
	final = final.Mul(0.75 + 0.25*lambertian)

	return final.Mul(frag.Intensity)
}
