package core

import "fmt"

// Background selects the radiance returned for rays that leave the scene
type Background int

const (
	// BackgroundBlack returns zero radiance; used by scenes lit by emitters
	BackgroundBlack Background = iota
	// BackgroundSky returns a white to sky-blue vertical gradient
	BackgroundSky
)

var (
	skyWhite = NewVec3(1, 1, 1)
	skyBlue  = NewVec3(0.5, 0.7, 1.0)
)

// Radiance returns the background radiance seen along ray
func (b Background) Radiance(ray Ray) Vec3 {
	switch b {
	case BackgroundSky:
		// Map the unit direction's y from [-1,1] to [0,1]
		t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
		return skyWhite.Lerp(skyBlue, t)
	default:
		return Vec3{}
	}
}

func (b Background) String() string {
	switch b {
	case BackgroundBlack:
		return "black"
	case BackgroundSky:
		return "sky"
	default:
		return fmt.Sprintf("Background(%d)", int(b))
	}
}

// ParseBackground converts a name produced by String back into a Background
func ParseBackground(name string) (Background, error) {
	switch name {
	case "black":
		return BackgroundBlack, nil
	case "sky":
		return BackgroundSky, nil
	default:
		return BackgroundBlack, fmt.Errorf("core: unknown background %q", name)
	}
}
