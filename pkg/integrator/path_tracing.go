package integrator

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultMaxDepth is the recursion depth at which paths stop scattering
const DefaultMaxDepth = 50

// PathTracer implements recursive unidirectional path tracing without light sampling
type PathTracer struct {
	world    World
	maxDepth int
}

// NewPathTracer creates a path tracer. A non-positive maxDepth selects DefaultMaxDepth.
func NewPathTracer(world World, maxDepth int) *PathTracer {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &PathTracer{world: world, maxDepth: maxDepth}
}

// MaxDepth returns the depth at which Trace stops scattering
func (pt *PathTracer) MaxDepth() int {
	return pt.maxDepth
}

// RayColor traces a camera ray from depth zero
func (pt *PathTracer) RayColor(ray core.Ray, random *rand.Rand) (core.Vec3, int) {
	return pt.Trace(ray, 0, random)
}

// Trace returns the radiance arriving along ray and the number of rays cast.
// A surface contributes its emission, plus the attenuated radiance of its
// scattered ray while depth is below the limit and the material scatters.
func (pt *PathTracer) Trace(ray core.Ray, depth int, random *rand.Rand) (core.Vec3, int) {
	hit, isHit := pt.world.Hit(ray, core.TraceInterval())
	if !isHit {
		return pt.world.BackgroundRadiance(ray), 1
	}

	emitted := hit.Material.Emit(hit.UV.X, hit.UV.Y, hit.Point)
	if depth >= pt.maxDepth {
		return emitted, 1
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return emitted, 1
	}

	incoming, rays := pt.Trace(scatter.Scattered, depth+1, random)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming)), rays + 1
}
