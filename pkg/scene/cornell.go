package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewCornellScene creates a classic Cornell box lit by a ceiling panel, with
// two rotated boxes standing on the floor. Nothing but the panel emits light.
func NewCornellScene(width, height int) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Eye:    core.NewVec3(278, 278, -800), // Outside the open front of the box
		Target: core.NewVec3(278, 278, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0,
		Near:   1.0,
		Far:    3000.0,
	}
	sampling := SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: 200,
		MaxDepth:        DefaultMaxDepth,
	}

	s, err := New("cornell", cameraConfig, sampling, core.BackgroundBlack)
	if err != nil {
		return nil, err
	}

	// Standard 555-unit box; every wall faces inwards
	const boxSize = 555.0
	white := func() core.Material { return material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)) }

	s.Add(
		geometry.NewRectYZ(0, boxSize, 0, boxSize, boxSize, material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))).FlipNormal(),
		geometry.NewRectYZ(0, boxSize, 0, boxSize, 0, material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))),
		geometry.NewRectXZ(213, 343, 227, 332, boxSize-1, material.NewDiffuseLight(core.NewVec3(15, 15, 15))).FlipNormal(),
		geometry.NewRectXZ(0, boxSize, 0, boxSize, boxSize, white()).FlipNormal(),
		geometry.NewRectXZ(0, boxSize, 0, boxSize, 0, white()),
		geometry.NewRectXY(0, boxSize, 0, boxSize, boxSize, white()).FlipNormal(),
	)

	tall, err := geometry.NewTransformedCuboid(
		core.Translate4(core.NewVec3(347.5, 165, 377.5)).Mul(core.RotateY4(15*math.Pi/180)),
		core.NewVec3(165, 330, 165),
		white(),
	)
	if err != nil {
		return nil, err
	}
	short, err := geometry.NewTransformedCuboid(
		core.Translate4(core.NewVec3(212.5, 82.5, 147.5)).Mul(core.RotateY4(-18*math.Pi/180)),
		core.NewVec3(165, 165, 165),
		white(),
	)
	if err != nil {
		return nil, err
	}
	s.Add(tall, short)

	return s, nil
}
