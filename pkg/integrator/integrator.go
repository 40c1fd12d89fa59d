package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms.
// Implementations must be safe for concurrent use: the renderer calls
// RayColor from many goroutines against the same read-only scene.
type Integrator interface {
	// RayColor computes the color seen along ray with the given bounce budget
	RayColor(ray core.Ray, s *scene.Scene, depth int) core.Vec3
}

// Config contains the integrator settings
type Config struct {
	MaxDepth         int     // Bounce budget for primary rays
	EnableReflection bool    // Follow mirror bounces for reflective materials
	TMin             float64 // Lower (exclusive) bound for every intersection query
	SurfaceBias      float64 // Offset along the normal for secondary ray origins
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:         5,
		EnableReflection: false,
		TMin:             0.001,
		SurfaceBias:      0.001,
	}
}
