package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestProgressiveConfig(t *testing.T) {
	config := DefaultProgressiveConfig()

	if config.MaxPasses != 50 {
		t.Errorf("Expected default max passes 50, got %d", config.MaxPasses)
	}
	if config.SamplesPerPass != 1 {
		t.Errorf("Expected default samples per pass 1, got %d", config.SamplesPerPass)
	}
	if config.NumWorkers != 0 {
		t.Errorf("Expected auto-detected workers, got %d", config.NumWorkers)
	}
}

func TestProgressiveRaytracer_RenderProgressive(t *testing.T) {
	s := createTestScene(t, 12, 8)
	config := ProgressiveConfig{MaxPasses: 3, SamplesPerPass: 2, NumWorkers: 2, Seed: 1}
	pr, err := NewProgressiveRaytracer(s, config, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	mock := &MockIntegrator{color: core.NewVec3(0.5, 0.5, 0.5), rays: 1}
	pr.Raytracer().SetIntegrator(mock)

	passChan, errChan := pr.RenderProgressive(context.Background())

	var results []PassResult
	for result := range passChan {
		results = append(results, result)
	}
	if err := <-errChan; err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 passes, got %d", len(results))
	}
	for i, result := range results {
		if result.PassNumber != i+1 {
			t.Errorf("Expected pass %d, got %d", i+1, result.PassNumber)
		}
		if result.IsLast != (i == 2) {
			t.Errorf("Pass %d: unexpected IsLast=%t", i+1, result.IsLast)
		}
		if result.Stats.Passes != i+1 || result.Stats.SamplesPerPixel != 2*(i+1) {
			t.Errorf("Pass %d: unexpected stats %+v", i+1, result.Stats)
		}
		if result.Image.Bounds().Dx() != 12 || result.Image.Bounds().Dy() != 8 {
			t.Errorf("Pass %d: unexpected image bounds %v", i+1, result.Image.Bounds())
		}
	}

	last := results[2]
	if last.Stats.Rays != int64(12*8*2*3) {
		t.Errorf("Expected %d rays, got %d", 12*8*2*3, last.Stats.Rays)
	}
	for i, p := range last.Frame.Pixels {
		if p.Subtract(core.NewVec3(0.5, 0.5, 0.5)).Length() > 1e-12 {
			t.Fatalf("Pixel %d: expected 0.5 grey, got %v", i, p)
		}
	}
}

func TestProgressiveRaytracer_CancelledBeforeStart(t *testing.T) {
	pr, err := NewProgressiveRaytracer(createTestScene(t, 8, 8), ProgressiveConfig{MaxPasses: 5, SamplesPerPass: 1, NumWorkers: 1}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	mock := &MockIntegrator{}
	pr.Raytracer().SetIntegrator(mock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	passChan, errChan := pr.RenderProgressive(ctx)
	count := 0
	for range passChan {
		count++
	}
	if count != 0 {
		t.Errorf("Expected no passes after cancellation, got %d", count)
	}
	if err := <-errChan; !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if mock.calls.Load() != 0 {
		t.Errorf("Expected no rendering after cancellation, got %d calls", mock.calls.Load())
	}
}

func TestProgressiveRaytracer_CancelBetweenFrames(t *testing.T) {
	pr, err := NewProgressiveRaytracer(createTestScene(t, 8, 8), ProgressiveConfig{MaxPasses: 100, SamplesPerPass: 1, NumWorkers: 2}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	mock := &MockIntegrator{rays: 1}
	pr.Raytracer().SetIntegrator(mock)

	ctx, cancel := context.WithCancel(context.Background())
	passChan, errChan := pr.RenderProgressive(ctx)

	first, ok := <-passChan
	if !ok {
		t.Fatal("Expected at least one pass")
	}
	cancel()

	passes := first.PassNumber
	for result := range passChan {
		passes = result.PassNumber
	}
	if err := <-errChan; !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if passes >= 100 {
		t.Errorf("Expected rendering to stop early, got %d passes", passes)
	}

	// Only whole frames are ever rendered
	if calls := mock.calls.Load(); calls%64 != 0 {
		t.Errorf("Expected whole frames only, got %d integrator calls", calls)
	}
}

func TestNewProgressiveRaytracer_Defaults(t *testing.T) {
	pr, err := NewProgressiveRaytracer(createTestScene(t, 4, 4), ProgressiveConfig{}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if pr.Config().MaxPasses != 1 || pr.Config().SamplesPerPass != 1 {
		t.Errorf("Expected minimum passes and samples, got %+v", pr.Config())
	}
}
