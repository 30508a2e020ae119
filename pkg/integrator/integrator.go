package integrator

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// World is the read-only view of a scene an integrator traces against.
// *scene.Scene satisfies it.
type World interface {
	Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool)
	BackgroundRadiance(ray core.Ray) core.Vec3
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along a camera ray.
	// Returns (radiance, number of rays cast).
	RayColor(ray core.Ray, random *rand.Rand) (core.Vec3, int)
}
