package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: image dimensions must be positive")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be positive")
	ErrAspectMismatch    = errors.New("renderer: image size does not match the camera aspect ratio")
	ErrFrameSizeMismatch = errors.New("renderer: frame size does not match accumulation buffer")
)
