package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DummyMaterial is a mock material for testing shapes
type DummyMaterial struct{}

func (d DummyMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func (d DummyMaterial) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func vecApproxEqual(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
