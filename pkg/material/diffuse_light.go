package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight is an emitter that absorbs everything that strikes it
type DiffuseLight struct {
	Colour core.Vec3 // Emitted radiance
}

// NewDiffuseLight creates a new emissive material
func NewDiffuseLight(colour core.Vec3) *DiffuseLight {
	return &DiffuseLight{Colour: colour}
}

// Scatter never produces a ray
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit returns the light's colour everywhere on the surface
func (d *DiffuseLight) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return d.Colour
}
