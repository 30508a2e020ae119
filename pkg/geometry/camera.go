package geometry

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrDegenerateCamera is returned when the camera configuration does not
// describe an invertible view-projection
var ErrDegenerateCamera = errors.New("geometry: degenerate camera")

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Eye           core.Vec3 // Camera position
	Target        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	VFov          float64   // Vertical field of view in degrees
	Near          float64   // Near clipping distance
	Far           float64   // Far clipping distance
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // Distance to the focal plane; 0 means |Target-Eye|
}

// Camera generates primary rays by unprojecting pixel positions through the
// inverse view-projection matrix
type Camera struct {
	config        CameraConfig
	aspect        float64
	view          core.Mat4
	projection    core.Mat4
	inverseVP     core.Mat4
	right         core.Vec3
	up            core.Vec3
	lensRadius    float64
	focusDistance float64
}

// NewCamera creates a camera for an image with the given width/height ratio
func NewCamera(config CameraConfig, aspect float64) (*Camera, error) {
	forward := config.Target.Subtract(config.Eye)
	if forward.LengthSquared() == 0 {
		return nil, fmt.Errorf("%w: eye and target coincide", ErrDegenerateCamera)
	}
	right := forward.Cross(config.Up).Normalize()
	if right.LengthSquared() == 0 {
		return nil, fmt.Errorf("%w: up is parallel to the view direction", ErrDegenerateCamera)
	}

	view := core.LookAt4(config.Eye, config.Target, config.Up)
	projection := core.Perspective4(config.VFov, aspect, config.Near, config.Far)
	inverseVP, err := projection.Mul(view).Inverse()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateCamera, err)
	}

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = forward.Length()
	}

	return &Camera{
		config:        config,
		aspect:        aspect,
		view:          view,
		projection:    projection,
		inverseVP:     inverseVP,
		right:         right,
		up:            right.Cross(forward.Normalize()),
		lensRadius:    config.Aperture / 2,
		focusDistance: focusDistance,
	}, nil
}

// Aspect returns the width/height ratio the projection was built for
func (c *Camera) Aspect() float64 {
	return c.aspect
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// View returns the world-to-camera matrix
func (c *Camera) View() core.Mat4 {
	return c.view
}

// Projection returns the camera-to-clip matrix
func (c *Camera) Projection() core.Mat4 {
	return c.projection
}

// InverseViewProjection returns the NDC-to-world matrix
func (c *Camera) InverseViewProjection() core.Mat4 {
	return c.inverseVP
}

// GetRay generates a ray through a random position inside pixel (x, y) of a
// width×height image. Pixel rows run top to bottom.
func (c *Camera) GetRay(x, y, width, height int, random *rand.Rand) core.Ray {
	sx := float64(x) + random.Float64()
	sy := float64(y) + random.Float64()
	return c.RayThrough(sx, sy, float64(width), float64(height), random)
}

// RayThrough generates a ray through the screen position (sx, sy) measured in
// pixels from the top-left corner
func (c *Camera) RayThrough(sx, sy, width, height float64, random *rand.Rand) core.Ray {
	ndc := core.NewVec3(sx/(width/2)-1, -(sy/(height/2))+1, 0)
	point := c.inverseVP.TransformPoint(ndc)
	origin := c.config.Eye
	direction := point.Subtract(origin).Normalize()

	if c.lensRadius <= 0 {
		return core.NewRay(origin, direction)
	}

	// Thin lens: move the origin across the aperture and aim back at the focal plane
	focus := origin.Add(direction.Multiply(c.focusDistance))
	rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	origin = origin.Add(c.right.Multiply(rd.X)).Add(c.up.Multiply(rd.Y))
	return core.NewRay(origin, focus.Subtract(origin).Normalize())
}
