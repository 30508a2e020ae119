package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCuboid_Hit_AxisAligned(t *testing.T) {
	cuboid := NewCuboid(core.NewVec3(0, 0, -5), core.NewVec3(2, 2, 2), DummyMaterial{})

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{"front face", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), true, 4, core.NewVec3(0, 0, 1)},
		{"top face", core.NewVec3(0, 5, -5), core.NewVec3(0, -1, 0), true, 4, core.NewVec3(0, 1, 0)},
		{"left face", core.NewVec3(-3, 0.5, -5), core.NewVec3(1, 0, 0), true, 2, core.NewVec3(-1, 0, 0)},
		{"from inside exits", core.NewVec3(0, 0, -5), core.NewVec3(1, 0, 0), true, 1, core.NewVec3(1, 0, 0)},
		{"miss beside", core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1), false, 0, core.Vec3{}},
		{"box behind ray", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), false, 0, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := cuboid.Hit(core.NewRay(tt.rayOrigin, tt.rayDirection), core.TraceInterval())
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if !vecApproxEqual(hit.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			expectedPoint := core.NewRay(tt.rayOrigin, tt.rayDirection).At(tt.expectedT)
			if !vecApproxEqual(hit.Point, expectedPoint, 1e-9) {
				t.Errorf("Expected point %v, got %v", expectedPoint, hit.Point)
			}
		})
	}
}

func TestCuboid_Hit_RespectsInterval(t *testing.T) {
	cuboid := NewCuboid(core.NewVec3(0, 0, -5), core.NewVec3(2, 2, 2), DummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := cuboid.Hit(ray, core.NewInterval(0.001, 3.5)); isHit {
		t.Error("Expected miss when the box lies beyond interval max")
	}
}

func TestCuboid_Hit_Rotated(t *testing.T) {
	transform := core.Translate4(core.NewVec3(0, 0, -5)).Mul(core.RotateY4(math.Pi / 4))
	cuboid, err := NewTransformedCuboid(transform, core.NewVec3(2, 2, 2), DummyMaterial{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The rotated +Z face spans x+z = √2 relative to the center
	ray := core.NewRay(core.NewVec3(0.3, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := cuboid.Hit(ray, core.TraceInterval())
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expectedT := 5 - (math.Sqrt2 - 0.3)
	if math.Abs(hit.T-expectedT) > 1e-9 {
		t.Errorf("Expected t=%f, got t=%f", expectedT, hit.T)
	}

	expectedNormal := core.NewVec3(1, 0, 1).Normalize()
	if !vecApproxEqual(hit.Normal, expectedNormal, 1e-9) {
		t.Errorf("Expected normal %v, got %v", expectedNormal, hit.Normal)
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
	}
}

func TestCuboid_Hit_ScaledNormalStaysPerpendicular(t *testing.T) {
	transform := core.Translate4(core.NewVec3(0, 0, -5)).
		Mul(core.RotateY4(math.Pi / 6)).
		Mul(core.Scale4(core.NewVec3(3, 1, 1)))
	cuboid, err := NewTransformedCuboid(transform, core.NewVec3(1, 1, 1), DummyMaterial{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	hit, isHit := cuboid.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), core.TraceInterval())
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	// Any direction lying in the struck face must be perpendicular to the normal
	faceEdge := transform.TransformVector(core.NewVec3(0, 1, 0))
	if math.Abs(hit.Normal.Dot(faceEdge)) > 1e-9 {
		t.Errorf("Expected normal perpendicular to face, dot=%f", hit.Normal.Dot(faceEdge))
	}
	// The struck face also contains one of the transformed x or z edges
	edgeX := transform.TransformVector(core.NewVec3(1, 0, 0))
	edgeZ := transform.TransformVector(core.NewVec3(0, 0, 1))
	if math.Abs(hit.Normal.Dot(edgeX)) > 1e-9 && math.Abs(hit.Normal.Dot(edgeZ)) > 1e-9 {
		t.Errorf("Expected normal %v perpendicular to a face edge", hit.Normal)
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
	}
}

func TestNewTransformedCuboid_Singular(t *testing.T) {
	_, err := NewTransformedCuboid(core.Scale4(core.NewVec3(1, 0, 1)), core.NewVec3(1, 1, 1), DummyMaterial{})
	if !errors.Is(err, ErrSingularTransform) {
		t.Errorf("Expected ErrSingularTransform, got %v", err)
	}
}
