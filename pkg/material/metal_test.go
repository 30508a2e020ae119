package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestMetal_PerfectMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	random := rand.New(rand.NewSource(42))
	hit := testHit(core.NewVec3(0, 1, 0))

	tests := []struct {
		name     string
		incoming core.Vec3
		expected core.Vec3
	}{
		{"45 degrees", core.NewVec3(1, -1, 0), core.NewVec3(1, 1, 0).Normalize()},
		{"normal incidence", core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0)},
		{"shallow", core.NewVec3(4, -1, 2), core.NewVec3(4, 1, 2).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, scattered := metal.Scatter(core.NewRay(core.NewVec3(0, 1, 0), tt.incoming), hit, random)
			if !scattered {
				t.Fatal("Expected mirror reflection to scatter")
			}
			if !vecApproxEqual(result.Scattered.Direction, tt.expected, 1e-9) {
				t.Errorf("Expected direction %v, got %v", tt.expected, result.Scattered.Direction)
			}
			if math.Abs(result.Scattered.Direction.Length()-1) > 1e-9 {
				t.Errorf("Expected normalized direction, got length %f", result.Scattered.Direction.Length())
			}
		})
	}
}

func TestMetal_AbsorptionBoundary(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	random := rand.New(rand.NewSource(7))
	hit := testHit(core.NewVec3(0, 1, 0))

	// Grazing incidence with heavy fuzz pushes many reflections under the surface
	rayIn := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))

	absorbed, scattered := 0, 0
	for i := 0; i < 2000; i++ {
		result, ok := metal.Scatter(rayIn, hit, random)
		if !ok {
			absorbed++
			continue
		}
		scattered++
		if result.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scattered direction %v is not above the surface", result.Scattered.Direction)
		}
	}

	if absorbed == 0 {
		t.Error("Expected some grazing reflections to be absorbed")
	}
	if scattered == 0 {
		t.Error("Expected some grazing reflections to scatter")
	}
}

func TestNewMetal_ClampsNegativeFuzziness(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), -0.5)
	if metal.Fuzziness != 0 {
		t.Errorf("Expected fuzziness clamped to 0, got %f", metal.Fuzziness)
	}
}
