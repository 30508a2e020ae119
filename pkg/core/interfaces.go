package core

import "math/rand"

// Logger interface for renderer logging.
// A *logging.Logger from github.com/op/go-logging satisfies it.
type Logger interface {
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// HitRecord contains information about a ray-object intersection.
// Material refers to the material owned by the shape that was struck; it is
// only valid for as long as the scene that produced it.
type HitRecord struct {
	T        float64  // Parameter t along the ray
	Point    Vec3     // World-space point of intersection
	Normal   Vec3     // Unit surface normal
	UV       Vec2     // Surface coordinates, zero for shapes without a parameterization
	Material Material // Material of the hit object
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Per-channel color attenuation
}

// Shape interface for objects that can be hit by rays.
// Hit returns the nearest intersection whose distance lies within interval.
type Shape interface {
	Hit(ray Ray, interval Interval) (*HitRecord, bool)
}

// Material interface for surfaces that scatter and/or emit light
type Material interface {
	// Scatter returns the bounced ray and its attenuation, or false if the
	// incoming ray is absorbed.
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)

	// Emit returns radiance emitted at surface coordinates (u, v) and point p
	Emit(u, v float64, p Vec3) Vec3
}
