package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center      core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera is looking at
	Up          core.Vec3 // Up hint, must not be parallel to the view direction
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
}

// Camera generates rays for rendering with a pinhole perspective projection.
// The basis and viewport are derived once in NewCamera.
type Camera struct {
	config CameraConfig

	u, v, w         core.Vec3 // Orthonormal basis; the camera looks down -w
	horizontal      core.Vec3 // Full viewport width along u
	vertical        core.Vec3 // Full viewport height along v
	lowerLeftCorner core.Vec3
}

// NewCamera creates a camera from the configuration.
//
// Precondition: Up must not be parallel to Center-LookAt. When it is, the
// derived u axis is the zero vector and every ray collapses onto the view
// direction; IsDegenerate reports this and the renderer refuses to use it.
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2.0)
	viewportWidth := viewportHeight * config.AspectRatio

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		config:          config,
		u:               u,
		v:               v,
		w:               w,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for viewport coordinates (s, t) where 0 <= s,t <= 1,
// measured from the lower-left corner
func (c *Camera) GetRay(s, t float64) core.Ray {
	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))

	return core.NewRay(c.config.Center, target.Subtract(c.config.Center))
}

// IsDegenerate reports whether the basis could not be built from the config
func (c *Camera) IsDegenerate() bool {
	return c.u.LengthSquared() == 0 || c.w.LengthSquared() == 0
}

// GetConfig returns the configuration the camera was built from
func (c *Camera) GetConfig() CameraConfig {
	return c.config
}

// GetCameraForward returns the unit viewing direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}
