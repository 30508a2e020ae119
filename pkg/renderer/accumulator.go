package renderer

import (
	"fmt"
)

// Accumulator keeps the per-pixel running average of every frame blended into it.
// It is not safe for concurrent use; the progressive loop blends frames one at a time.
type Accumulator struct {
	frame  *Frame
	frames int
}

// NewAccumulator creates an empty accumulation buffer
func NewAccumulator(width, height int) *Accumulator {
	return &Accumulator{frame: NewFrame(width, height)}
}

// Frames returns how many frames have been blended
func (a *Accumulator) Frames() int {
	return a.frames
}

// Blend folds a frame into the average: accum = accum·n/(n+1) + frame/(n+1)
func (a *Accumulator) Blend(frame *Frame) error {
	if frame.Width != a.frame.Width || frame.Height != a.frame.Height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrFrameSizeMismatch, frame.Width, frame.Height, a.frame.Width, a.frame.Height)
	}

	n := float64(a.frames)
	keep := n / (n + 1)
	add := 1 / (n + 1)
	for i, p := range frame.Pixels {
		a.frame.Pixels[i] = a.frame.Pixels[i].Multiply(keep).Add(p.Multiply(add))
	}
	a.frames++
	return nil
}

// Snapshot returns a copy of the current average
func (a *Accumulator) Snapshot() *Frame {
	return a.frame.Clone()
}
