package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// DefaultBackgroundColor is the light sky blue returned for rays that escape the scene
var DefaultBackgroundColor = core.NewVec3(0.7, 0.8, 1.0)

// Scene contains all the elements needed for rendering.
// It is built once and treated as read-only while a render is running.
type Scene struct {
	Camera          *geometry.Camera    // Nil until SetCamera is called
	Shapes          []geometry.Shape    // Objects in the scene
	Lights          []lights.PointLight // Lights in the scene
	BackgroundColor core.Vec3           // Color for rays that hit nothing
}

// NewScene creates an empty scene with the default background and no camera
func NewScene() *Scene {
	return &Scene{
		Shapes:          make([]geometry.Shape, 0),
		Lights:          make([]lights.PointLight, 0),
		BackgroundColor: DefaultBackgroundColor,
	}
}

// AddShape appends a shape to the scene
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(light lights.PointLight) {
	s.Lights = append(s.Lights, light)
}

// ClearLights removes every light from the scene
func (s *Scene) ClearLights() {
	s.Lights = s.Lights[:0]
}

// SetCamera sets (or replaces) the scene camera
func (s *Scene) SetCamera(camera *geometry.Camera) {
	s.Camera = camera
}

// GetCamera returns the scene camera, or nil if none was set
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetLights returns the scene lights
func (s *Scene) GetLights() []lights.PointLight {
	return s.Lights
}

// GetBackgroundColor returns the color for rays that hit nothing
func (s *Scene) GetBackgroundColor() core.Vec3 {
	return s.BackgroundColor
}

// Hit finds the nearest intersection along the ray with t in (tMin, tMax],
// together with the shape that was hit. The upper bound shrinks as closer
// hits are found, so list order never changes which shape wins.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, geometry.Shape, bool) {
	var closestHit *geometry.HitRecord
	var closestShape geometry.Shape
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
			closestShape = shape
		}
	}

	return closestHit, closestShape, closestHit != nil
}
