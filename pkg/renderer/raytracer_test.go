package renderer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// recordingLogger collects formatted log lines from concurrent workers
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func testConfig(width, height int) Config {
	config := DefaultConfig()
	config.Width = width
	config.Height = height
	return config
}

func newEmptySceneWithCamera(aspectRatio float64) *scene.Scene {
	s := scene.NewScene()
	s.SetCamera(geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        45.0,
		AspectRatio: aspectRatio,
	}))
	return s
}

func TestRaytracer_EmptySceneIsBackground(t *testing.T) {
	s := newEmptySceneWithCamera(4.0 / 3.0)

	img, stats, err := NewRaytracer(s, testConfig(8, 6), nil).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if got := img.GetPixel(x, y); got != scene.DefaultBackgroundColor {
				t.Fatalf("Pixel (%d,%d): got %v, want background", x, y, got)
			}
		}
	}

	if stats.TotalPixels != 48 || stats.Rows != 6 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestRaytracer_Errors(t *testing.T) {
	degenerate := scene.NewScene()
	degenerate.SetCamera(geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(0, 5, 0),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        45.0,
		AspectRatio: 1.0,
	}))

	tests := []struct {
		name     string
		scene    *scene.Scene
		config   Config
		expected error
	}{
		{"no camera", scene.NewScene(), testConfig(4, 4), ErrNoCamera},
		{"degenerate camera", degenerate, testConfig(4, 4), ErrDegenerateCamera},
		{"zero width", newEmptySceneWithCamera(1), testConfig(0, 4), ErrInvalidDimensions},
		{"negative height", newEmptySceneWithCamera(1), testConfig(4, -1), ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, _, err := NewRaytracer(tt.scene, tt.config, nil).Render(context.Background())
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
			if img != nil {
				t.Error("Expected no image on error")
			}
		})
	}
}

func TestRaytracer_Deterministic(t *testing.T) {
	s, _ := scene.Create("scene3", 4.0/3.0)

	serial := testConfig(32, 24)
	serial.NumWorkers = 1
	parallel := testConfig(32, 24)
	parallel.NumWorkers = 8

	first, _, err := NewRaytracer(s, serial, nil).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	second, _, err := NewRaytracer(s, parallel, nil).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Renders differ between worker counts (-serial +parallel):\n%s", diff)
	}
}

func TestRaytracer_PixelMatchesCameraRay(t *testing.T) {
	s, _ := scene.Create("scene1", 1.0)
	config := testConfig(5, 5)

	img, _, err := NewRaytracer(s, config, nil).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	wi := integrator.NewWhittedIntegrator(integrator.DefaultConfig())
	camera := s.GetCamera()

	tests := []struct {
		x, y int
		u, v float64
	}{
		{0, 0, 0, 1},     // top-left
		{4, 4, 1, 0},     // bottom-right
		{2, 2, 0.5, 0.5}, // center
		{1, 3, 0.25, 0.25},
	}

	for _, tt := range tests {
		expected := wi.RayColor(camera.GetRay(tt.u, tt.v), s, 5)
		if diff := cmp.Diff(expected, img.GetPixel(tt.x, tt.y)); diff != "" {
			t.Errorf("Pixel (%d,%d) mismatch (-want +got):\n%s", tt.x, tt.y, diff)
		}
	}
}

func TestRaytracer_SinglePixel(t *testing.T) {
	s, _ := scene.Create("scene1", 1.0)

	img, _, err := NewRaytracer(s, testConfig(1, 1), nil).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// The viewport center looks straight at the red sphere
	got := img.GetPixel(0, 0)
	if !got.IsFinite() || got == scene.DefaultBackgroundColor {
		t.Errorf("Expected finite sphere color at the center, got %v", got)
	}
	if got.X <= got.Y || got.X <= got.Z {
		t.Errorf("Expected a red-dominant pixel, got %v", got)
	}
}

func TestRaytracer_Progress(t *testing.T) {
	s := newEmptySceneWithCamera(1)
	logger := &recordingLogger{}

	if _, _, err := NewRaytracer(s, testConfig(3, 25), logger).Render(context.Background()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	sort.Strings(logger.lines)
	expected := []string{"Scanlines remaining: 15", "Scanlines remaining: 5"}
	if diff := cmp.Diff(expected, logger.lines); diff != "" {
		t.Errorf("Progress mismatch (-want +got):\n%s", diff)
	}
}

func TestRaytracer_Canceled(t *testing.T) {
	s := newEmptySceneWithCamera(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewRaytracer(s, testConfig(4, 4), nil).Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestRender_Convenience(t *testing.T) {
	s, _ := scene.Create("scene2", 2.0)

	img, err := Render(context.Background(), s, 6, 3, false)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Width != 6 || img.Height != 3 || len(img.Pixels) != 18 {
		t.Errorf("Unexpected image shape %dx%d with %d pixels", img.Width, img.Height, len(img.Pixels))
	}
}
