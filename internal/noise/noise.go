// Package noise provides the coherent noise field sampled by the procedural
// surface shaders. The field is an explicit value carried in the per-draw
// uniforms, never package-level state, so every sample is a pure function of
// (seed, coordinates).
package noise

import opensimplex "github.com/ojrac/opensimplex-go"

// DefaultFrequency matches the sampling scale the shader octave constants
// were tuned against. Changing it changes every surface's feature size.
const DefaultFrequency = 0.01

// Field is a deterministic coherent noise field over 2D/3D coordinates.
// Output range is roughly [-1, 1].
type Field struct {
	n    opensimplex.Noise
	freq float64
}

// New builds a field seeded for reproducibility at the default frequency.
func New(seed int64) Field {
	return Field{n: opensimplex.New(seed), freq: DefaultFrequency}
}

// NewWithFrequency builds a field with an explicit base frequency.
func NewWithFrequency(seed int64, freq float64) Field {
	return Field{n: opensimplex.New(seed), freq: freq}
}

// GetNoise2D samples the field at (x, y).
func (f Field) GetNoise2D(x, y float64) float64 {
	return f.n.Eval2(x*f.freq, y*f.freq)
}

// GetNoise3D samples the field at (x, y, z).
func (f Field) GetNoise3D(x, y, z float64) float64 {
	return f.n.Eval3(x*f.freq, y*f.freq, z*f.freq)
}
