package scene

import "errors"

var (
	ErrUnknownScene = errors.New("scene: unknown scene")
	ErrInvalidSize  = errors.New("scene: image size must be positive")
)
