// Package camera implements the orbit camera feeding the view matrix.
package camera

import (
	"math"

	"solar-renderer/internal/mathutil"
)

// pitchMargin keeps pitch strictly inside (-π/2, π/2) so the spherical
// decomposition never degenerates at the poles.
const pitchMargin = 0.1

// Camera holds the eye/center/up basis of the view transform. Changed is set
// by the motions dependent systems react to (orbit, vertical, zoom) and left
// alone by lateral pans; callers reset it after consuming the flag.
type Camera struct {
	Eye     mathutil.Vec3
	Center  mathutil.Vec3
	Up      mathutil.Vec3
	Changed bool
}

// New builds a camera marked changed so the first frame renders.
func New(eye, center, up mathutil.Vec3) *Camera {
	return &Camera{Eye: eye, Center: center, Up: up, Changed: true}
}

// Orbit rotates the eye around the center at fixed radius. Yaw wraps modulo
// 2π; pitch is clamped short of the poles.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	radiusVec := c.Eye.Sub(c.Center)
	radius := radiusVec.Len()

	yaw := math.Atan2(radiusVec[2], radiusVec[0])
	radiusXZ := math.Sqrt(radiusVec[0]*radiusVec[0] + radiusVec[2]*radiusVec[2])
	pitch := math.Atan2(-radiusVec[1], radiusXZ)

	yaw = math.Mod(yaw+deltaYaw, 2*math.Pi)
	pitch = clamp(pitch+deltaPitch, -math.Pi/2+pitchMargin, math.Pi/2-pitchMargin)

	c.Eye = c.Center.Add(mathutil.Vec3{
		radius * math.Cos(yaw) * math.Cos(pitch),
		-radius * math.Sin(pitch),
		radius * math.Sin(yaw) * math.Cos(pitch),
	})
	c.Changed = true
}

// MoveVertical translates eye and center along the world Y axis, preserving
// the eye-center offset.
func (c *Camera) MoveVertical(delta float64) {
	c.Eye[1] += delta
	c.Center[1] += delta
	c.Changed = true
}

// MoveCenter pans eye and center by a horizontal-plane vector and resets up
// to world-up to cancel roll drift. Deliberately does not set Changed.
func (c *Camera) MoveCenter(movement mathutil.Vec3) {
	c.Eye = c.Eye.Add(movement)
	c.Center = c.Center.Add(movement)
	c.Up = mathutil.WorldUp
}

// Zoom dollies the eye along the view direction. The center stays put, so
// the orbit radius changes. A degenerate eye==center state is left untouched.
func (c *Camera) Zoom(delta float64) {
	dir := c.Center.Sub(c.Eye)
	if dir.Len() < 1e-9 {
		return
	}
	c.Eye = c.Eye.Add(dir.Normalize().Scale(delta))
	c.Changed = true
}

// ViewMatrix builds the right-handed look-at matrix for the current basis.
func (c *Camera) ViewMatrix() mathutil.Mat4 {
	return mathutil.LookAt(c.Eye, c.Center, c.Up)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
