package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Attenuation curve coefficients: 1 / (1 + linear*d + quadratic*d²)
const (
	attenuationLinear    = 0.1
	attenuationQuadratic = 0.01
)

// PointLight is an infinitesimal light at a fixed position
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, intensity float64) PointLight {
	return PointLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

// DirectionFrom returns the unit direction from point toward the light
func (l PointLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.Position.Subtract(point).Normalize()
}

// DistanceFrom returns the distance from point to the light
func (l PointLight) DistanceFrom(point core.Vec3) float64 {
	return l.Position.Subtract(point).Length()
}

// Attenuation returns the falloff factor at the given distance.
// This is a fixed artistic curve, not the inverse-square law.
func (l PointLight) Attenuation(distance float64) float64 {
	return 1.0 / (1.0 + attenuationLinear*distance + attenuationQuadratic*distance*distance)
}
