package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	NonEmitting
	Albedo    core.Vec3 // Metal color
	Fuzziness float64   // 0.0 = perfect mirror
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzziness float64) *Metal {
	if fuzziness < 0.0 {
		fuzziness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzziness: fuzziness}
}

// Scatter reflects the ray about the normal, perturbed by a random unit vector
// scaled by the fuzziness. Rays perturbed below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	direction := reflected.Add(core.RandomUnitVector(random).Multiply(m.Fuzziness)).Normalize()

	if direction.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: m.Albedo,
	}, true
}
