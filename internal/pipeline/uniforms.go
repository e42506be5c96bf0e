// Package pipeline implements the vertex stage of the renderer: the
// per-draw uniform bundle, the matrix constructors, and the transform from
// model space to screen space.
package pipeline

import (
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/noise"
)

// Uniforms is the immutable per-draw-call bundle. One value is built per
// mesh instance per frame and read by both shader stages. The noise field
// travels here explicitly so no shader depends on hidden global state.
type Uniforms struct {
	ModelMatrix      mathutil.Mat4
	ViewMatrix       mathutil.Mat4
	ProjectionMatrix mathutil.Mat4
	ViewportMatrix   mathutil.Mat4
	Time             int
	Noise            noise.Field
}

// ModelMatrix composes translation × Y-rotation × uniform scale, the
// transform every scene body uses.
func ModelMatrix(translation mathutil.Vec3, scale, rotationAngle float64) mathutil.Mat4 {
	return mathutil.Mat4Mul(
		mathutil.Translation(translation),
		mathutil.Mat4Mul(
			mathutil.FromMat3Translation(mathutil.RotY(rotationAngle), mathutil.Vec3{}),
			mathutil.Scaling(scale),
		),
	)
}

// ProjectionMatrix builds the fixed 60° perspective used by the scene.
func ProjectionMatrix(width, height float64) mathutil.Mat4 {
	return mathutil.Perspective(mathutil.Deg2Rad(60), width/height, 0.1, 1000)
}

// ViewportMatrix maps NDC to pixel coordinates for a width×height target.
func ViewportMatrix(width, height float64) mathutil.Mat4 {
	return mathutil.Viewport(width, height)
}
