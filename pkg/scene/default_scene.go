package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates a row of diffuse, metal and glass spheres on a
// large ground sphere, viewed through a wide aperture lens
func NewDefaultScene(width, height int) (*Scene, error) {
	eye := core.NewVec3(0, 0, 0.75)
	target := core.NewVec3(0, 0, -1)
	cameraConfig := geometry.CameraConfig{
		Eye:      eye,
		Target:   target,
		Up:       core.NewVec3(0, 1, 0),
		VFov:     60.0,
		Near:     0.01,
		Far:      100.0,
		Aperture: 0.4,
	}
	sampling := SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: 50,
		MaxDepth:        DefaultMaxDepth,
	}

	s, err := New("default", cameraConfig, sampling, core.BackgroundSky)
	if err != nil {
		return nil, err
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
	)
	return s, nil
}
