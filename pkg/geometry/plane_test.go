package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPlane_Hit(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), DummyMaterial{})

	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
		interval     core.Interval
		expectHit    bool
		expectedT    float64
	}{
		{"from above", core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), core.TraceInterval(), true, 1.0},
		{"oblique from above", core.NewVec3(0, 2, 0), core.NewVec3(1, -1, 0), core.TraceInterval(), true, 2.0},
		{"from below is one-sided", core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.TraceInterval(), false, 0},
		{"parallel", core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), core.TraceInterval(), false, 0},
		{"beyond max", core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), core.NewInterval(0.001, 4), false, 0},
		{"leaving the surface", core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), core.TraceInterval(), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := plane.Hit(core.NewRay(tt.rayOrigin, tt.rayDirection), tt.interval)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if math.Abs(hit.Point.Y) > 1e-9 {
				t.Errorf("Expected hit point on plane, got %v", hit.Point)
			}
			if !vecApproxEqual(hit.Normal, core.NewVec3(0, 1, 0), 1e-12) {
				t.Errorf("Expected normalized normal (0,1,0), got %v", hit.Normal)
			}
		})
	}
}
