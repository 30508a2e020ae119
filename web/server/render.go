package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/url"
	"time"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

const (
	defaultScene      = "default"
	minImageSize      = 16
	maxImageSize      = 2000
	maxSamplesPerPass = 1000
	maxPasses         = 10000
	maxDepth          = 1000
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene          string `json:"scene"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	SamplesPerPass int    `json:"spp"`
	MaxPasses      int    `json:"maxPasses"`
	MaxDepth       int    `json:"maxDepth"` // 0 keeps the scene default
	Seed           int    `json:"seed"`
}

// ProgressUpdate is sent after every completed pass
type ProgressUpdate struct {
	PassNumber  int    `json:"passNumber"`
	TotalPasses int    `json:"totalPasses"`
	ImageData   string `json:"imageData"` // Base64 encoded PNG
	Stats       Stats  `json:"stats"`
	IsComplete  bool   `json:"isComplete"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// Stats represents accumulated render statistics
type Stats struct {
	SamplesPerPixel int     `json:"samplesPerPixel"`
	Rays            int64   `json:"rays"`
	RaysPerSecond   float64 `json:"raysPerSecond"`
	RenderTimeMs    int64   `json:"renderTimeMs"`
	Bands           int     `json:"bands"`
}

// SSEEvent is a single server-sent event queued for the writer goroutine
type SSEEvent struct {
	Type string // "console", "progress", "error", "complete"
	Data string
}

// handleRender streams a progressive render as server-sent events. Request
// errors are reported as JSON before the stream starts; render errors are
// reported in-stream.
func (s *Server) handleRender(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sceneObj, err := scene.ByName(req.Scene, req.Width, req.Height)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if req.MaxDepth > 0 {
		sceneObj.SamplingConfig.MaxDepth = req.MaxDepth
	}

	setSSEHeaders(c.Response())
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Flush()

	ctx := c.Request().Context()
	events := make(chan SSEEvent, 100)
	done := make(chan struct{})
	go func() {
		defer close(done)
		writeSSEEvents(ctx, c.Response(), events)
	}()

	s.streamRender(ctx, events, sceneObj, req)

	close(events)
	<-done
	return nil
}

func (s *Server) streamRender(ctx context.Context, events chan<- SSEEvent, sceneObj *scene.Scene, req *RenderRequest) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, s.logger, consoleChan)

	config := renderer.ProgressiveConfig{
		MaxPasses:      req.MaxPasses,
		SamplesPerPass: req.SamplesPerPass,
		NumWorkers:     0, // Auto-detect
		Seed:           int64(req.Seed),
	}
	pr, err := renderer.NewProgressiveRaytracer(sceneObj, config, webLogger)
	if err != nil {
		sendEvent(ctx, events, SSEEvent{Type: "error", Data: err.Error()})
		return
	}

	s.logger.Infof("[%s] rendering scene %q at %dx%d", renderID, sceneObj.Name, req.Width, req.Height)
	startTime := time.Now()
	passes, errs := pr.RenderProgressive(ctx)
	bands := len(pr.Raytracer().Bands())

renderLoop:
	for {
		select {
		case pass, ok := <-passes:
			if !ok {
				break renderLoop
			}
			drainConsole(ctx, events, consoleChan)
			update, err := newProgressUpdate(pass, req.MaxPasses, bands, startTime)
			if err != nil {
				sendEvent(ctx, events, SSEEvent{Type: "error", Data: err.Error()})
				return
			}
			data, err := json.Marshal(update)
			if err != nil {
				s.logger.Errorf("error marshaling progress update: %v", err)
				return
			}
			if !sendEvent(ctx, events, SSEEvent{Type: "progress", Data: string(data)}) {
				return
			}

		case msg := <-consoleChan:
			sendConsole(ctx, events, msg)

		case <-ctx.Done():
			s.logger.Infof("[%s] client disconnected", renderID)
			return
		}
	}

	if err := <-errs; err != nil {
		sendEvent(ctx, events, SSEEvent{Type: "error", Data: fmt.Sprintf("Rendering failed: %v", err)})
		return
	}
	drainConsole(ctx, events, consoleChan)
	sendEvent(ctx, events, SSEEvent{Type: "complete", Data: "Rendering completed"})
}

func newProgressUpdate(pass renderer.PassResult, totalPasses, bands int, startTime time.Time) (ProgressUpdate, error) {
	imageData, err := imageToBase64PNG(pass.Image)
	if err != nil {
		return ProgressUpdate{}, fmt.Errorf("failed to encode image: %w", err)
	}
	return ProgressUpdate{
		PassNumber:  pass.PassNumber,
		TotalPasses: totalPasses,
		ImageData:   imageData,
		Stats: Stats{
			SamplesPerPixel: pass.Stats.SamplesPerPixel,
			Rays:            pass.Stats.Rays,
			RaysPerSecond:   pass.Stats.RaysPerSecond(),
			RenderTimeMs:    pass.Stats.RenderTime.Milliseconds(),
			Bands:           bands,
		},
		IsComplete: pass.IsLast,
		ElapsedMs:  time.Since(startTime).Milliseconds(),
	}, nil
}

func drainConsole(ctx context.Context, events chan<- SSEEvent, consoleChan <-chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			sendConsole(ctx, events, msg)
		default:
			return
		}
	}
}

func sendConsole(ctx context.Context, events chan<- SSEEvent, msg ConsoleMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	sendEvent(ctx, events, SSEEvent{Type: "console", Data: string(data)})
}

// sendEvent queues an event for the writer, returning false once the client is gone
func sendEvent(ctx context.Context, events chan<- SSEEvent, event SSEEvent) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}

func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
}

// writeSSEEvents is the only goroutine that writes to the response
func writeSSEEvents(ctx context.Context, w *echo.Response, events <-chan SSEEvent) {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				return
			}
			w.Flush()

		case <-ctx.Done():
			return
		}
	}
}

func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = defaultScene
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 400, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 225, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.SamplesPerPass, err = parseIntParam(values, "spp", 1, 1, maxSamplesPerPass); err != nil {
		return nil, err
	}
	if req.MaxPasses, err = parseIntParam(values, "maxPasses", 50, 1, maxPasses); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "maxDepth", 0, 0, maxDepth); err != nil {
		return nil, err
	}
	if req.Seed, err = parseIntParam(values, "seed", 42, 0, 1<<31-1); err != nil {
		return nil, err
	}
	return req, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
