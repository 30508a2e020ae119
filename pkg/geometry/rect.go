package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Axis-aligned rectangles lie in a plane where one coordinate is fixed at K.
// Their normal is the fixed axis, pointing in the positive direction unless
// FlipNormal was applied at construction. The sign never depends on the ray.

// RectXY is a rectangle spanning [X0,X1]×[Y0,Y1] in the plane z=K
type RectXY struct {
	X0, X1, Y0, Y1 float64
	K              float64
	Material       core.Material
	facing         float64
}

// NewRectXY creates a rectangle in the plane z=k with normal +Z
func NewRectXY(x0, x1, y0, y1, k float64, material core.Material) *RectXY {
	return &RectXY{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material, facing: 1}
}

// FlipNormal makes the rectangle's normal point along -Z
func (r *RectXY) FlipNormal() *RectXY {
	r.facing = -r.facing
	return r
}

// Hit tests if a ray crosses the rectangle
func (r *RectXY) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	if ray.Direction.Z == 0 {
		return nil, false
	}
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if !interval.Contains(t) {
		return nil, false
	}
	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return nil, false
	}
	return &core.HitRecord{
		T:        t,
		Point:    core.NewVec3(x, y, r.K),
		Normal:   core.NewVec3(0, 0, r.facing),
		UV:       core.NewVec2((x-r.X0)/(r.X1-r.X0), (y-r.Y0)/(r.Y1-r.Y0)),
		Material: r.Material,
	}, true
}

// RectXZ is a rectangle spanning [X0,X1]×[Z0,Z1] in the plane y=K
type RectXZ struct {
	X0, X1, Z0, Z1 float64
	K              float64
	Material       core.Material
	facing         float64
}

// NewRectXZ creates a rectangle in the plane y=k with normal +Y
func NewRectXZ(x0, x1, z0, z1, k float64, material core.Material) *RectXZ {
	return &RectXZ{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material, facing: 1}
}

// FlipNormal makes the rectangle's normal point along -Y
func (r *RectXZ) FlipNormal() *RectXZ {
	r.facing = -r.facing
	return r
}

// Hit tests if a ray crosses the rectangle
func (r *RectXZ) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	if ray.Direction.Y == 0 {
		return nil, false
	}
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if !interval.Contains(t) {
		return nil, false
	}
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}
	return &core.HitRecord{
		T:        t,
		Point:    core.NewVec3(x, r.K, z),
		Normal:   core.NewVec3(0, r.facing, 0),
		UV:       core.NewVec2((x-r.X0)/(r.X1-r.X0), (z-r.Z0)/(r.Z1-r.Z0)),
		Material: r.Material,
	}, true
}

// RectYZ is a rectangle spanning [Y0,Y1]×[Z0,Z1] in the plane x=K
type RectYZ struct {
	Y0, Y1, Z0, Z1 float64
	K              float64
	Material       core.Material
	facing         float64
}

// NewRectYZ creates a rectangle in the plane x=k with normal +X
func NewRectYZ(y0, y1, z0, z1, k float64, material core.Material) *RectYZ {
	return &RectYZ{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material, facing: 1}
}

// FlipNormal makes the rectangle's normal point along -X
func (r *RectYZ) FlipNormal() *RectYZ {
	r.facing = -r.facing
	return r
}

// Hit tests if a ray crosses the rectangle
func (r *RectYZ) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	if ray.Direction.X == 0 {
		return nil, false
	}
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if !interval.Contains(t) {
		return nil, false
	}
	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}
	return &core.HitRecord{
		T:        t,
		Point:    core.NewVec3(r.K, y, z),
		Normal:   core.NewVec3(r.facing, 0, 0),
		UV:       core.NewVec2((y-r.Y0)/(r.Y1-r.Y0), (z-r.Z0)/(r.Z1-r.Z0)),
		Material: r.Material,
	}, true
}
