package mathutil

import (
	"math"
	"testing"
)

func vec3Near(a, b Vec3, eps float64) bool {
	return a.Sub(b).Len() <= eps
}

func TestRotationAxes(t *testing.T) {
	quarter := math.Pi / 2

	tests := []struct {
		name string
		m    Mat3
		in   Vec3
		want Vec3
	}{
		{"x axis sends +y to +z", RotX(quarter), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"x axis fixes +x", RotX(quarter), Vec3{1, 0, 0}, Vec3{1, 0, 0}},
		{"y axis sends +z to +x", RotY(quarter), Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"y axis fixes +y", RotY(quarter), Vec3{0, 1, 0}, Vec3{0, 1, 0}},
		{"z axis sends +x to +y", RotZ(quarter), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"z axis fixes +z", RotZ(quarter), Vec3{0, 0, 1}, Vec3{0, 0, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.m.MulVec3(tc.in)
			if !vec3Near(got, tc.want, 1e-12) {
				t.Errorf("rotation * %v = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMat3MulComposesRotations(t *testing.T) {
	a, b := 0.4, 1.1

	tests := []struct {
		name     string
		got, sum Mat3
	}{
		{"x", Mat3Mul(RotX(a), RotX(b)), RotX(a + b)},
		{"y", Mat3Mul(RotY(a), RotY(b)), RotY(a + b)},
		{"z", Mat3Mul(RotZ(a), RotZ(b)), RotZ(a + b)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i := range tc.got {
				if math.Abs(tc.got[i]-tc.sum[i]) > 1e-12 {
					t.Fatalf("product differs from single rotation at [%d]: %v vs %v", i, tc.got[i], tc.sum[i])
				}
			}
		})
	}
}

func TestMat3MulIdentity(t *testing.T) {
	m := Mat3{2, -1, 0, 3, 5, 7, 0, 1, 4}
	if Mat3Mul(m, Mat3Identity()) != m || Mat3Mul(Mat3Identity(), m) != m {
		t.Error("identity is not a multiplication neutral element")
	}
}

func TestDeg2Rad(t *testing.T) {
	tests := []struct {
		deg, rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{-60, -math.Pi / 3},
	}
	for _, tc := range tests {
		if got := Deg2Rad(tc.deg); math.Abs(got-tc.rad) > 1e-15 {
			t.Errorf("Deg2Rad(%v) = %v, want %v", tc.deg, got, tc.rad)
		}
	}
}
