package renderer

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Raytracer renders whole frames of a scene. Each frame is split into
// horizontal bands that are rendered concurrently, one goroutine per band,
// and joined before the frame is returned.
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	width      int
	height     int
	numWorkers int
	seed       int64
	logger     core.Logger
}

// NewRaytracer creates a raytracer for the scene's configured image size.
// numWorkers <= 0 uses one band per available CPU. The size must keep the
// aspect ratio the scene's camera was built with.
func NewRaytracer(s *scene.Scene, numWorkers int, seed int64, logger core.Logger) (*Raytracer, error) {
	width, height := s.SamplingConfig.Width, s.SamplingConfig.Height
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if aspect := s.Camera.Aspect(); math.Abs(float64(width)/float64(height)-aspect) > 1e-9*aspect {
		return nil, fmt.Errorf("%w: %dx%d against %.4f", ErrAspectMismatch, width, height, aspect)
	}
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	return &Raytracer{
		scene:      s,
		integrator: integrator.NewPathTracer(s, s.SamplingConfig.MaxDepth),
		width:      width,
		height:     height,
		numWorkers: numWorkers,
		seed:       seed,
		logger:     logger,
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// Bands returns the partition used for every frame
func (rt *Raytracer) Bands() []Band {
	return PartitionBands(rt.height, rt.numWorkers)
}

// RenderFrame renders one frame with samplesPerPixel camera samples per pixel.
// The frame index selects the random streams, so distinct frames carry
// independent noise while the same index always reproduces the same frame.
func (rt *Raytracer) RenderFrame(frameIndex, samplesPerPixel int) (*Frame, FrameStats, error) {
	if samplesPerPixel <= 0 {
		return nil, FrameStats{}, fmt.Errorf("%w: %d", ErrInvalidSamples, samplesPerPixel)
	}

	start := time.Now()
	frame := NewFrame(rt.width, rt.height)
	bands := rt.Bands()
	stats := FrameStats{Frame: frameIndex, Bands: make([]BandStats, len(bands))}

	var wg sync.WaitGroup
	wg.Add(len(bands))
	for i, band := range bands {
		go func(i int, band Band) {
			defer wg.Done()
			random := rand.New(rand.NewSource(bandSeed(rt.seed, frameIndex, band.Index)))
			stats.Bands[i] = rt.renderBand(band, frame.Rows(band.Y0, band.Y1), samplesPerPixel, random)
		}(i, band)
	}
	wg.Wait()

	stats.RenderTime = time.Since(start)
	if rt.logger != nil {
		rt.logger.Debugf("frame %d: %d bands, %d rays in %v", frameIndex, len(bands), stats.TotalRays(), stats.RenderTime)
	}
	return frame, stats, nil
}

// renderBand writes every pixel of the band into pixels, which holds exactly the band's rows
func (rt *Raytracer) renderBand(band Band, pixels []core.Vec3, samplesPerPixel int, random *rand.Rand) BandStats {
	start := time.Now()
	stats := BandStats{Band: band}
	camera := rt.scene.Camera
	scale := 1.0 / float64(samplesPerPixel)

	for y := band.Y0; y < band.Y1; y++ {
		row := pixels[(y-band.Y0)*rt.width : (y-band.Y0+1)*rt.width]
		for x := range row {
			var colorAccum core.Vec3
			for s := 0; s < samplesPerPixel; s++ {
				ray := camera.GetRay(x, y, rt.width, rt.height, random)
				color, rays := rt.integrator.RayColor(ray, random)
				colorAccum = colorAccum.Add(color)
				stats.Rays += rays
			}
			row[x] = colorAccum.Multiply(scale)
			stats.Pixels++
			stats.Samples += samplesPerPixel
		}
	}

	stats.RenderTime = time.Since(start)
	return stats
}

// bandSeed mixes the render seed, frame index and band index into a random stream seed
func bandSeed(seed int64, frame, band int) int64 {
	h := uint64(seed)
	h ^= uint64(frame+1) * 0x9E3779B97F4A7C15
	h ^= uint64(band+1) * 0xBF58476D1CE4E5B9
	h ^= h >> 31
	h *= 0x94D049BB133111EB
	h ^= h >> 29
	return int64(h)
}
