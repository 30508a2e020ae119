package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	NonEmitting
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter chooses between reflection and refraction with the Schlick
// probability. Exactly one ray leaves the surface and glass absorbs nothing.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)
	reflected := core.Reflect(rayIn.Direction, hit.Normal)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	dirDotN := rayIn.Direction.Dot(hit.Normal)
	if dirDotN > 0 {
		// Leaving the medium
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * dirDotN / rayIn.Direction.Length()
	} else {
		// TODO: assumes the outside medium is air (index 1); nested media need the index on both sides
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -dirDotN / rayIn.Direction.Length()
	}

	reflectProbability := 1.0
	refracted, ok := core.Refract(rayIn.Direction, outwardNormal, niOverNt)
	if ok {
		reflectProbability = core.Schlick(cosine, d.RefractiveIndex)
	}

	direction := refracted
	if random.Float64() < reflectProbability {
		direction = reflected
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}
