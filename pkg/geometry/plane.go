package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Plane represents a one-sided infinite plane defined by a point and normal.
// Only rays travelling against the normal can hit it.
type Plane struct {
	Point    core.Vec3     // A point on the plane
	Normal   core.Vec3     // Unit normal; the visible side
	Material core.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material core.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the front side of the plane
func (p *Plane) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Rays leaving the surface, running parallel to it, or arriving from behind never hit
	if denominator >= 0 {
		return nil, false
	}

	t := p.Normal.Dot(p.Point.Subtract(ray.Origin)) / denominator
	if !interval.Contains(t) {
		return nil, false
	}

	return &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   p.Normal,
		Material: p.Material,
	}, true
}
