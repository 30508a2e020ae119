package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// DefaultMaxDepth is the bounce limit applied to every built-in scene
const DefaultMaxDepth = 50

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	Shapes         []core.Shape    // Objects in the scene, in insertion order
	Background     core.Background // Radiance returned for rays that escape
	SamplingConfig SamplingConfig
}

// SamplingConfig contains rendering configuration. Width and Height fix the
// camera's aspect ratio in New; build a new scene to change the image shape.
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// New creates an empty scene viewed through a camera sized for width×height images
func New(name string, cameraConfig geometry.CameraConfig, sampling SamplingConfig, background core.Background) (*Scene, error) {
	if sampling.Width <= 0 || sampling.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, sampling.Width, sampling.Height)
	}
	camera, err := geometry.NewCamera(cameraConfig, float64(sampling.Width)/float64(sampling.Height))
	if err != nil {
		return nil, err
	}
	if sampling.MaxDepth <= 0 {
		sampling.MaxDepth = DefaultMaxDepth
	}
	return &Scene{
		Name:           name,
		Camera:         camera,
		CameraConfig:   cameraConfig,
		Shapes:         make([]core.Shape, 0),
		Background:     background,
		SamplingConfig: sampling,
	}, nil
}

// Add appends shapes to the scene. Scenes must not be modified once rendering starts.
func (s *Scene) Add(shapes ...core.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Hit returns the nearest intersection across all shapes. The interval's
// upper bound shrinks to the closest hit found so far, so later shapes can
// only replace a hit with a strictly nearer one.
func (s *Scene) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	for _, shape := range s.Shapes {
		if hit, ok := shape.Hit(ray, interval); ok {
			closest = hit
			interval = interval.WithMax(hit.T)
		}
	}
	return closest, closest != nil
}

// BackgroundRadiance returns the radiance seen by a ray that hit nothing
func (s *Scene) BackgroundRadiance(ray core.Ray) core.Vec3 {
	return s.Background.Radiance(ray)
}
