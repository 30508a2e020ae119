package core

import "math"

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// ShadowEpsilon is the lower bound used for secondary rays so they do not
// re-intersect the surface they start on.
const ShadowEpsilon = 0.001

// Interval is the closed range of ray parameters accepted by an intersection test
type Interval struct {
	Min float64
	Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// TraceInterval returns [ShadowEpsilon, +Inf), the interval used for every traced ray
func TraceInterval() Interval {
	return Interval{Min: ShadowEpsilon, Max: math.Inf(1)}
}

// Contains reports whether t lies within [Min, Max]. NaN is never contained.
func (i Interval) Contains(t float64) bool {
	return t >= i.Min && t <= i.Max
}

// WithMax returns a copy of the interval with its upper bound replaced
func (i Interval) WithMax(max float64) Interval {
	return Interval{Min: i.Min, Max: max}
}
