package mathutil

// Vec4 is a 4-component homogeneous vector (value type, stack-allocated).
type Vec4 [4]float64

// FromPoint lifts a 3D point into homogeneous coordinates with w = 1.
func FromPoint(v Vec3) Vec4 {
	return Vec4{v[0], v[1], v[2], 1}
}

// FromDirection lifts a 3D direction into homogeneous coordinates with w = 0.
func FromDirection(v Vec3) Vec4 {
	return Vec4{v[0], v[1], v[2], 0}
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}
