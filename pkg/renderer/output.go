package renderer

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Frame is a width×height buffer of linear radiance stored row-major from the top-left
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the radiance of pixel (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Rows returns the sub-slice of pixels covering rows [y0, y1)
func (f *Frame) Rows(y0, y1 int) []core.Vec3 {
	return f.Pixels[y0*f.Width : y1*f.Width]
}

// Clone returns a deep copy of the frame
func (f *Frame) Clone() *Frame {
	clone := NewFrame(f.Width, f.Height)
	copy(clone.Pixels, f.Pixels)
	return clone
}

// RGB converts the frame to 8-bit RGB triples, row-major, width*height*3 bytes
func (f *Frame) RGB() []byte {
	out := make([]byte, 0, len(f.Pixels)*3)
	for _, p := range f.Pixels {
		r, g, b := toRGB(p)
		out = append(out, r, g, b)
	}
	return out
}

// Image converts the frame to an opaque RGBA image
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := toRGB(f.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePNG encodes the frame as a PNG image
func (f *Frame) WritePNG(w io.Writer) error {
	return png.Encode(w, f.Image())
}

// toRGB applies gamma 2 (square root), clamps to [0,1] and quantizes each channel
func toRGB(p core.Vec3) (r, g, b uint8) {
	c := p.Sqrt().Clamp(0, 1)
	return quantize(c.X), quantize(c.Y), quantize(c.Z)
}

// quantize maps [0,1] to a byte; NaN from negative or undefined radiance is black
func quantize(c float64) uint8 {
	if !(c > 0) {
		return 0
	}
	return uint8(255 * c)
}
