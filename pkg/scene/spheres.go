package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewSpheresScene creates a diffuse sphere resting on a very large ground sphere, lit by the sky
func NewSpheresScene(width, height int) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Eye:    core.NewVec3(0, 0, 0),
		Target: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   90.0,
		Near:   0.01,
		Far:    100.0,
	}
	sampling := SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: 100,
		MaxDepth:        DefaultMaxDepth,
	}

	s, err := New("spheres", cameraConfig, sampling, core.BackgroundSky)
	if err != nil {
		return nil, err
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
	)
	return s, nil
}
