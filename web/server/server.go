package server

import (
	"embed"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/host"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFiles embed.FS

// Server serves the browser viewer and streams progressive renders to it
type Server struct {
	port   int
	logger log.Logger
	echo   *echo.Echo
}

// NewServer creates a new web server with its routes registered
func NewServer(port int, logger log.Logger) *Server {
	s := &Server{port: port, logger: logger}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(corsMiddleware)

	e.GET("/", s.handleIndex)
	e.GET("/api/health", s.handleHealth)
	e.GET("/api/scenes", s.handleScenes)
	e.GET("/api/scene-config", s.handleSceneConfig)
	e.GET("/api/render", s.handleRender)

	s.echo = e
	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the configured port until the server is shut down
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web server stopped: %w", err)
	}
	return nil
}

func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Allow-Methods", "GET")
		c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}

		return next(c)
	}
}

func (s *Server) handleIndex(c echo.Context) error {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "viewer page missing"})
	}
	return c.HTMLBlob(http.StatusOK, page)
}

// handleHealth reports liveness along with a summary of the host
func (s *Server) handleHealth(c echo.Context) error {
	info, err := host.Detect()
	if err != nil {
		s.logger.Warningf("unable to query host information: %v", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
		"host":   info,
	})
}

func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, scene.ListScenes())
}

// handleSceneConfig returns the default sampling configuration of a scene
// together with the limits accepted by the render endpoint
func (s *Server) handleSceneConfig(c echo.Context) error {
	name := c.QueryParam("scene")
	if name == "" {
		name = defaultScene
	}

	sceneObj, err := scene.ByName(name, 1, 1)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"scene":      name,
		"background": sceneObj.Background.String(),
		"defaults": map[string]int{
			"samplesPerPixel": sceneObj.SamplingConfig.SamplesPerPixel,
			"maxDepth":        sceneObj.SamplingConfig.MaxDepth,
		},
		"limits": map[string]map[string]int{
			"width":     {"min": minImageSize, "max": maxImageSize},
			"height":    {"min": minImageSize, "max": maxImageSize},
			"spp":       {"min": 1, "max": maxSamplesPerPass},
			"maxPasses": {"min": 1, "max": maxPasses},
			"maxDepth":  {"min": 0, "max": maxDepth}, // 0 keeps the scene default
		},
	})
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
