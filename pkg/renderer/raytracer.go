package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var (
	// ErrNoCamera is returned when rendering a scene that has no camera
	ErrNoCamera = errors.New("scene has no camera")
	// ErrDegenerateCamera is returned when the camera's up vector is parallel
	// to its view direction
	ErrDegenerateCamera = errors.New("camera up vector is parallel to the view direction")
	// ErrInvalidDimensions is returned for a non-positive width or height
	ErrInvalidDimensions = errors.New("image dimensions must be positive")
)

// Config contains rendering configuration
type Config struct {
	Width            int  // Image width in pixels
	Height           int  // Image height in pixels
	NumWorkers       int  // Concurrent rows; <= 0 means one per CPU
	EnableReflection bool // Follow mirror bounces for reflective materials
	EnableTextures   bool // Accepted for compatibility; ignored since no material is textured
	MaxDepth         int  // Bounce budget for primary rays
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		NumWorkers: runtime.NumCPU(),
		MaxDepth:   integrator.DefaultConfig().MaxDepth,
	}
}

// AspectRatio returns width / height
func (c Config) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Raytracer renders a scene into an Image. The scene is shared read-only by
// every worker; each pixel is written exactly once.
type Raytracer struct {
	scene      *scene.Scene
	config     Config
	integrator integrator.Integrator
	maxDepth   int
	logger     core.Logger
}

// NewRaytracer creates a raytracer for the scene. A nil logger discards output.
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}

	integratorConfig := integrator.DefaultConfig()
	integratorConfig.EnableReflection = config.EnableReflection
	if config.MaxDepth > 0 {
		integratorConfig.MaxDepth = config.MaxDepth
	}

	return &Raytracer{
		scene:      s,
		config:     config,
		integrator: integrator.NewWhittedIntegrator(integratorConfig),
		maxDepth:   integratorConfig.MaxDepth,
		logger:     logger,
	}
}

// GetConfig returns the render configuration
func (rt *Raytracer) GetConfig() Config {
	return rt.config
}

// Render traces one primary ray per pixel and returns the finished image
func (rt *Raytracer) Render(ctx context.Context) (*Image, RenderStats, error) {
	width, height := rt.config.Width, rt.config.Height
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("while rendering %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	camera := rt.scene.GetCamera()
	if camera == nil {
		return nil, RenderStats{}, ErrNoCamera
	}
	if camera.IsDegenerate() {
		return nil, RenderStats{}, ErrDegenerateCamera
	}

	img := NewImage(width, height)
	pool := NewWorkerPool(rt.config.NumWorkers)
	pool.OnProgress(func(remaining int) {
		rt.logger.Printf("Scanlines remaining: %d", remaining)
	})

	start := time.Now()
	err := pool.Run(ctx, height, func(ctx context.Context, row int) error {
		v := viewportCoord(height-1-row, height)
		for col := 0; col < width; col++ {
			ray := camera.GetRay(viewportCoord(col, width), v)
			img.SetPixel(col, row, rt.integrator.RayColor(ray, rt.scene, rt.maxDepth))
		}
		return nil
	})
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("while rendering rows: %w", err)
	}

	stats := RenderStats{
		TotalPixels: width * height,
		Rows:        height,
		Workers:     pool.GetNumWorkers(),
		Duration:    time.Since(start),
	}
	return img, stats, nil
}

// viewportCoord maps pixel index i of n onto [0,1]; a single pixel samples
// the viewport center
func viewportCoord(i, n int) float64 {
	if n == 1 {
		return 0.5
	}
	return float64(i) / float64(n-1)
}

// Render renders s at the given size with default settings
func Render(ctx context.Context, s *scene.Scene, width, height int, enableReflection bool) (*Image, error) {
	config := DefaultConfig()
	config.Width = width
	config.Height = height
	config.EnableReflection = enableReflection

	img, _, err := NewRaytracer(s, config, nil).Render(ctx)
	return img, err
}
