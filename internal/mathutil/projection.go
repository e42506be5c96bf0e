package mathutil

import "math"

// WorldUp is the global up axis used by the camera and view matrix.
var WorldUp = Vec3{0, 1, 0}

// LookAt builds a right-handed view matrix for a camera at eye looking at
// center. up must not be collinear with center-eye.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4{
		s[0], s[1], s[2], -s.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		-f[0], -f[1], -f[2], f.Dot(eye),
		0, 0, 0, 1,
	}
}

// Perspective builds a right-handed perspective projection with fovY in
// radians, mapping depth to NDC z in [-1, 1].
func Perspective(fovY, aspect, near, far float64) Mat4 {
	t := math.Tan(fovY / 2)
	if t == 0 || aspect == 0 || far == near {
		return Mat4Identity()
	}
	return Mat4{
		1 / (aspect * t), 0, 0, 0,
		0, 1 / t, 0, 0,
		0, 0, -(far + near) / (far - near), -(2 * far * near) / (far - near),
		0, 0, -1, 0,
	}
}

// Viewport maps NDC x,y to pixel coordinates (y flipped so that +y is down)
// while passing NDC z through unchanged for the depth buffer.
func Viewport(width, height float64) Mat4 {
	return Mat4{
		width / 2, 0, 0, width / 2,
		0, -height / 2, 0, height / 2,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
