package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Cuboid is an oriented box. In its local space the box is centered on the
// origin with the given dimensions along each axis; Transform places it in
// the world. Rays are intersected in local space via the inverse transform.
type Cuboid struct {
	Transform  core.Mat4
	Dimensions core.Vec3
	Material   core.Material
	inverse    core.Mat4
	cornerMin  core.Vec3
	cornerMax  core.Vec3
}

// NewCuboid creates an axis-aligned cuboid centered at origin
func NewCuboid(origin, dimensions core.Vec3, material core.Material) *Cuboid {
	// A pure translation is always invertible
	c, _ := NewTransformedCuboid(core.Translate4(origin), dimensions, material)
	return c
}

// NewTransformedCuboid creates a cuboid placed by an arbitrary affine transform
func NewTransformedCuboid(transform core.Mat4, dimensions core.Vec3, material core.Material) (*Cuboid, error) {
	inverse, err := transform.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularTransform, err)
	}
	half := dimensions.Multiply(0.5)
	return &Cuboid{
		Transform:  transform,
		Dimensions: dimensions,
		Material:   material,
		inverse:    inverse,
		cornerMin:  half.Negate(),
		cornerMax:  half,
	}, nil
}

// Hit tests if a ray intersects with the cuboid using a slab test in local space
func (c *Cuboid) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	// The direction is not normalized so t means the same thing in both spaces
	origin := c.inverse.TransformPoint(ray.Origin)
	direction := c.inverse.TransformVector(ray.Direction)

	t1 := c.cornerMin.Subtract(origin).DivideVec(direction)
	t2 := c.cornerMax.Subtract(origin).DivideVec(direction)

	tMin := math.Max(math.Min(t1.Z, t2.Z), math.Max(math.Min(t1.Y, t2.Y), math.Min(t1.X, t2.X)))
	tMax := math.Min(math.Max(t1.Z, t2.Z), math.Min(math.Max(t1.Y, t2.Y), math.Max(t1.X, t2.X)))

	if tMax < tMin || tMax < 0 {
		return nil, false
	}

	// Prefer the entry point; fall back to the exit point for rays starting inside
	dist := tMin
	if tMin < 0 {
		dist = tMax
	}
	if !interval.Contains(dist) {
		return nil, false
	}

	localPoint := origin.Add(direction.Multiply(dist))
	localNormal := faceNormal(localPoint.DivideVec(c.Dimensions))

	return &core.HitRecord{
		T:        dist,
		Point:    c.Transform.TransformPoint(localPoint),
		Normal:   c.inverse.TransformNormal(localNormal).Normalize(),
		Material: c.Material,
	}, true
}

// faceNormal picks the axis along which the dimension-normalized point lies
// furthest from the center; that axis identifies the face that was hit.
func faceNormal(p core.Vec3) core.Vec3 {
	ax, ay, az := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
	switch {
	case ax > ay && ax > az:
		return core.NewVec3(math.Copysign(1, p.X), 0, 0)
	case ay > az:
		return core.NewVec3(0, math.Copysign(1, p.Y), 0)
	default:
		return core.NewVec3(0, 0, math.Copysign(1, p.Z))
	}
}
