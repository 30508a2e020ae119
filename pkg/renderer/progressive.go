package renderer

import (
	"context"
	"fmt"
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	MaxPasses      int   // Number of frames to blend
	SamplesPerPass int   // Camera samples per pixel in each frame
	NumWorkers     int   // Number of parallel bands (0 = use CPU count)
	Seed           int64 // Base seed for every random stream
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		MaxPasses:      50,
		SamplesPerPass: 1,
		NumWorkers:     0, // Auto-detect CPU count
		Seed:           42,
	}
}

// PassResult contains the accumulated image after a single pass
type PassResult struct {
	PassNumber int
	Frame      *Frame // Accumulated linear radiance
	Image      *image.RGBA
	Stats      RenderStats
	IsLast     bool
}

// ProgressiveRaytracer renders a scene frame after frame, blending each frame
// into an accumulation buffer so the image converges over time
type ProgressiveRaytracer struct {
	raytracer   *Raytracer
	accumulator *Accumulator
	config      ProgressiveConfig
	stats       RenderStats
	currentPass int
	logger      core.Logger
}

// NewProgressiveRaytracer creates a new progressive raytracer
func NewProgressiveRaytracer(s *scene.Scene, config ProgressiveConfig, logger core.Logger) (*ProgressiveRaytracer, error) {
	if config.MaxPasses <= 0 {
		config.MaxPasses = 1
	}
	if config.SamplesPerPass <= 0 {
		config.SamplesPerPass = 1
	}

	raytracer, err := NewRaytracer(s, config.NumWorkers, config.Seed, logger)
	if err != nil {
		return nil, err
	}

	return &ProgressiveRaytracer{
		raytracer:   raytracer,
		accumulator: NewAccumulator(raytracer.width, raytracer.height),
		config:      config,
		logger:      logger,
	}, nil
}

// Raytracer returns the frame renderer used for every pass
func (pr *ProgressiveRaytracer) Raytracer() *Raytracer {
	return pr.raytracer
}

// Config returns the effective configuration
func (pr *ProgressiveRaytracer) Config() ProgressiveConfig {
	return pr.config
}

// RenderPass renders the next frame, blends it and returns the accumulated result
func (pr *ProgressiveRaytracer) RenderPass() (PassResult, error) {
	pr.currentPass++

	frame, frameStats, err := pr.raytracer.RenderFrame(pr.currentPass, pr.config.SamplesPerPass)
	if err != nil {
		return PassResult{}, err
	}
	if err := pr.accumulator.Blend(frame); err != nil {
		return PassResult{}, err
	}
	pr.stats.Add(frameStats, pr.config.SamplesPerPass)

	accumulated := pr.accumulator.Snapshot()
	return PassResult{
		PassNumber: pr.currentPass,
		Frame:      accumulated,
		Image:      accumulated.Image(),
		Stats:      pr.stats,
		IsLast:     pr.currentPass >= pr.config.MaxPasses,
	}, nil
}

// RenderProgressive renders up to MaxPasses passes in a background goroutine
// and streams each accumulated result. Cancellation is observed between
// frames only; a frame that has started always completes. The pass channel
// is closed when rendering stops, and at most one error is reported.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)

		pr.logf("Starting progressive rendering with %d passes of %d samples...", pr.config.MaxPasses, pr.config.SamplesPerPass)

		for pr.currentPass < pr.config.MaxPasses {
			// Check if the client went away before starting the next frame
			select {
			case <-ctx.Done():
				pr.logf("Rendering cancelled before pass %d", pr.currentPass+1)
				errChan <- ctx.Err()
				return
			default:
			}

			result, err := pr.RenderPass()
			if err != nil {
				errChan <- fmt.Errorf("pass %d: %w", pr.currentPass, err)
				return
			}

			pr.logf("Pass %d completed in %v (%d samples/pixel, %.0f rays/s)",
				result.PassNumber, result.Stats.LastFrame.RenderTime, result.Stats.SamplesPerPixel, result.Stats.LastFrame.RaysPerSecond())

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return passChan, errChan
}

func (pr *ProgressiveRaytracer) logf(format string, args ...interface{}) {
	if pr.logger != nil {
		pr.logger.Infof(format, args...)
	}
}
