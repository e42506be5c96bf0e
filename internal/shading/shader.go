// Package shading implements the fragment stage: a dispatch over nine
// procedural surface shaders, each a deterministic function of the fragment
// attributes, the frame counter and the noise field in the uniforms.
package shading

import (
	"fmt"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/pipeline"
	"solar-renderer/internal/raster"
)

// Shader selects one of the procedural surface functions.
type Shader int

const (
	RockyPlanet Shader = iota
	RockyPlanetVariant
	GasGiant
	ColdGasGiant
	Solar
	AlienPlanet
	Glacial
	Moon
	Craft
)

var shaderNames = map[Shader]string{
	RockyPlanet:        "rocky",
	RockyPlanetVariant: "rocky-variant",
	GasGiant:           "gas-giant",
	ColdGasGiant:       "cold-gas-giant",
	Solar:              "solar",
	AlienPlanet:        "alien",
	Glacial:            "glacial",
	Moon:               "moon",
	Craft:              "craft",
}

func (s Shader) String() string {
	if n, ok := shaderNames[s]; ok {
		return n
	}
	return fmt.Sprintf("shader(%d)", int(s))
}

// Parse maps a config name back to a Shader.
func Parse(name string) (Shader, error) {
	for s, n := range shaderNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("shading: unknown shader %q", name)
}

// surfaceLight is the fixed directional light the surface shaders apply
// their Lambertian term against.
var surfaceLight = mathutil.Vec3{0.6, 0.8, 0.4}.Normalize()

// FragmentShader dispatches the fragment to the selected surface function.
// Unknown shaders fall back to the craft shader rather than failing a frame.
func FragmentShader(frag raster.Fragment, u *pipeline.Uniforms, s Shader) raster.Color {
	switch s {
	case GasGiant:
		return gasGiantShader(frag, u)
	case ColdGasGiant:
		return coldGasGiantShader(frag, u)
	case Solar:
		return solarShader(frag, u)
	case RockyPlanet:
		return rockyPlanetShader(frag, u)
	case RockyPlanetVariant:
		return rockyPlanetVariantShader(frag, u)
	case AlienPlanet:
		return alienPlanetShader(frag, u)
	case Glacial:
		return glacialShader(frag, u)
	case Moon:
		return moonShader(frag, u)
	default:
		return craftShader(frag, u)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
