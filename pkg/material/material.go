package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NonEmitting provides the zero Emit used by every material that does not give off light
type NonEmitting struct{}

// Emit returns no radiance
func (NonEmitting) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
