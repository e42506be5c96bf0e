package mathutil

import (
	"math"
	"testing"
)

func TestMat4InverseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"identity", Mat4Identity()},
		{"translation", Translation(Vec3{1, -2, 3})},
		{"scaling", Scaling(2.5)},
		{"composed", Mat4Mul(Translation(Vec3{5, 0, -7}), Mat4Mul(FromMat3Translation(RotY(0.7), Vec3{}), Scaling(3)))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !Mat4Mul(tc.m, tc.m.Inverse()).IsIdentity() {
				t.Errorf("M * M⁻¹ != I for %v", tc.m)
			}
		})
	}
}

func TestMat4InverseSingularFallback(t *testing.T) {
	var zero Mat4
	if !zero.Inverse().IsIdentity() {
		t.Error("singular matrix inverse should fall back to identity")
	}
}

func TestMat4MulPoint(t *testing.T) {
	m := Translation(Vec3{1, 2, 3})
	got := m.MulPoint(Vec3{10, 20, 30})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("MulPoint = %v, want %v", got, want)
	}
}

func TestMat4MulVec4Direction(t *testing.T) {
	// w=0 directions must ignore translation.
	m := Translation(Vec3{100, 100, 100})
	got := m.MulVec4(FromDirection(Vec3{0, 0, -1}))
	if got != (Vec4{0, 0, -1, 0}) {
		t.Errorf("direction transform = %v, want (0,0,-1,0)", got)
	}
}

func TestLookAt(t *testing.T) {
	view := LookAt(Vec3{0, 0, 10}, Vec3{}, WorldUp)

	// The look-at target sits straight down the view -Z axis.
	got := view.MulPoint(Vec3{})
	want := Vec3{0, 0, -10}
	for i := 0; i < 3; i++ {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("view * center = %v, want %v", got, want)
		}
	}

	// The eye maps to the view-space origin.
	eye := view.MulPoint(Vec3{0, 0, 10})
	if eye.Len() > 1e-9 {
		t.Errorf("view * eye = %v, want origin", eye)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := 0.1, 1000.0
	p := Perspective(math.Pi/3, 1.25, near, far)

	tests := []struct {
		name string
		z    float64
		want float64
	}{
		{"near plane", -near, -1},
		{"far plane", -far, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clip := p.MulVec4(FromPoint(Vec3{0, 0, tc.z}))
			ndcZ := clip[2] / clip[3]
			if math.Abs(ndcZ-tc.want) > 1e-6 {
				t.Errorf("ndc z at %v = %v, want %v", tc.z, ndcZ, tc.want)
			}
		})
	}
}

func TestPerspectiveDegenerate(t *testing.T) {
	if !Perspective(math.Pi/3, 0, 0.1, 1000).IsIdentity() {
		t.Error("zero aspect should fall back to identity")
	}
	if !Perspective(math.Pi/3, 1, 5, 5).IsIdentity() {
		t.Error("near == far should fall back to identity")
	}
}

func TestViewport(t *testing.T) {
	vp := Viewport(800, 600)

	tests := []struct {
		name string
		ndc  Vec4
		want Vec3
	}{
		{"center", Vec4{0, 0, 0.5, 1}, Vec3{400, 300, 0.5}},
		{"top left", Vec4{-1, 1, 0, 1}, Vec3{0, 0, 0}},
		{"bottom right", Vec4{1, -1, 1, 1}, Vec3{800, 600, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := vp.MulVec4(tc.ndc).XYZ()
			if got != tc.want {
				t.Errorf("viewport(%v) = %v, want %v", tc.ndc, got, tc.want)
			}
		})
	}
}
