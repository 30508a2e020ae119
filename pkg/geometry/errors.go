package geometry

import "errors"

var (
	ErrSingularTransform = errors.New("geometry: cuboid transform is not invertible")
)
