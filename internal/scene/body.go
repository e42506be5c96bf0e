package scene

import "solar-renderer/internal/shading"

// Body describes one orbiting planet: its circular orbit, size, spin and
// surface shader.
type Body struct {
	OrbitRadius float64
	OrbitSpeed  float64
	Scale       float64
	SpinSpeed   float64
	Shader      shading.Shader
}

// Sun, moon and craft parameters of the stock scene.
const (
	sunScale     = 4.0
	sunSpinSpeed = 0.0001

	moonOrbitRadius = 2.0
	moonOrbitSpeed  = 0.01
	moonScale       = 0.5
	moonSpinSpeed   = 0.005

	craftOffset   = 15.0
	craftScale    = 0.1
	craftRotation = 3.141592653589793

	orbitSegments            = 150
	orbitVisibilityThreshold = 10.0
)

// DefaultPlanets returns the six stock planets, innermost first. The moon
// orbits the first of them.
func DefaultPlanets() []Body {
	return []Body{
		{OrbitRadius: 10, OrbitSpeed: 0.008, Scale: 1.5, SpinSpeed: 0.015, Shader: shading.RockyPlanet},
		{OrbitRadius: 20, OrbitSpeed: 0.006, Scale: 1.7, SpinSpeed: 0.015, Shader: shading.RockyPlanetVariant},
		{OrbitRadius: 30, OrbitSpeed: 0.005, Scale: 2.5, SpinSpeed: 0.025, Shader: shading.GasGiant},
		{OrbitRadius: 40, OrbitSpeed: 0.004, Scale: 3.5, SpinSpeed: 0.018, Shader: shading.ColdGasGiant},
		{OrbitRadius: 50, OrbitSpeed: 0.003, Scale: 2.8, SpinSpeed: 0.018, Shader: shading.AlienPlanet},
		{OrbitRadius: 60, OrbitSpeed: 0.002, Scale: 3.3, SpinSpeed: 0.016, Shader: shading.Glacial},
	}
}
