// Package ray provides the analytic sphere intersection used to paint the
// background skybox without going through the triangle rasterizer.
package ray

import (
	"math"

	"solar-renderer/internal/mathutil"
)

// Intersect records the outcome of one ray query. Produced fresh per query,
// never retained.
type Intersect struct {
	Hit      bool
	Distance float64
	Point    mathutil.Vec3
	Normal   mathutil.Vec3
	U, V     float64
}

// Sphere is an analytic sphere; the skybox uses one of very large radius
// centered at the camera eye.
type Sphere struct {
	Center mathutil.Vec3
	Radius float64
}

// RayIntersect solves a·t² + b·t + c = 0 for the ray against the sphere and
// returns the nearer real root. A negative discriminant is a miss. On a hit
// the outward normal yields spherical UV coordinates for texture lookup.
func (s Sphere) RayIntersect(origin, direction mathutil.Vec3) Intersect {
	oc := origin.Sub(s.Center)
	a := direction.Dot(direction)
	b := 2 * oc.Dot(direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := b*b - 4*a*c

	if discriminant < 0 {
		return Intersect{}
	}

	dist := (-b - math.Sqrt(discriminant)) / (2 * a)
	point := origin.Add(direction.Scale(dist))
	normal := point.Sub(s.Center).Normalize()

	u := 0.5 + math.Atan2(normal[2], normal[0])/(2*math.Pi)
	v := 0.5 - math.Asin(normal[1])/math.Pi

	return Intersect{
		Hit:      true,
		Distance: dist,
		Point:    point,
		Normal:   normal,
		U:        u,
		V:        v,
	}
}
