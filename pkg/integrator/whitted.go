package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedIntegrator implements classic recursive ray tracing: Phong direct
// lighting with hard shadows, mirror reflection and dielectric refraction.
type WhittedIntegrator struct {
	config Config
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(config Config) *WhittedIntegrator {
	return &WhittedIntegrator{
		config: config,
	}
}

// GetConfig returns the integrator configuration
func (wi *WhittedIntegrator) GetConfig() Config {
	return wi.config
}

// RayColor returns the color for a ray, recursing at most depth times.
//
// Reflection is blended in before refraction is evaluated, so a material that
// is both reflective and transparent mixes the refracted color over an
// already reflection-weighted result. Scenes may depend on that order.
func (wi *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene, depth int) core.Vec3 {
	// Bounce budget exhausted, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, shape, isHit := s.Hit(ray, wi.config.TMin, math.Inf(1))
	if !isHit {
		return s.GetBackgroundColor()
	}
	mat := shape.GetMaterial()

	color := mat.AmbientColor()
	color = color.Add(wi.calculateDirectLighting(ray, hit, mat, s))

	if wi.config.EnableReflection && mat.Reflectivity > 0 {
		reflected := wi.calculateReflectedColor(ray, hit, s, depth)
		color = color.Lerp(reflected, mat.Reflectivity)
	}

	if mat.Transparency > 0 {
		// Total internal reflection simply drops the transmitted contribution
		if refracted, ok := wi.calculateRefractedColor(ray, hit, mat, s, depth); ok {
			color = color.Lerp(refracted, mat.Transparency)
		}
	}

	return color.Clamp(0.0, 1.0)
}

// calculateDirectLighting sums the diffuse and specular Phong terms of every
// light that is not occluded from the hit point
func (wi *WhittedIntegrator) calculateDirectLighting(ray core.Ray, hit *geometry.HitRecord, mat material.Material, s *scene.Scene) core.Vec3 {
	color := core.Vec3{X: 0, Y: 0, Z: 0}
	viewDir := ray.Direction.Negate().Normalize()

	for _, light := range s.GetLights() {
		lightDir := light.DirectionFrom(hit.Point)
		lightDistance := light.DistanceFrom(hit.Point)

		// Binary shadow test toward the light, truncated at the light
		shadowRay := core.NewRay(wi.offset(hit, 1), lightDir)
		if _, _, blocked := s.Hit(shadowRay, wi.config.TMin, lightDistance); blocked {
			continue
		}

		diffuseStrength := math.Max(hit.Normal.Dot(lightDir), 0)
		diffuse := mat.Color.MultiplyVec(light.Color).
			Multiply(mat.Diffuse * diffuseStrength * light.Intensity)

		reflectDir := lightDir.Negate().Reflect(hit.Normal)
		specStrength := math.Pow(math.Max(viewDir.Dot(reflectDir), 0), mat.Shininess)
		specular := light.Color.Multiply(mat.Specular * specStrength * light.Intensity)

		attenuation := light.Attenuation(lightDistance)
		color = color.Add(diffuse.Add(specular).Multiply(attenuation))
	}

	return color
}

// calculateReflectedColor follows the mirror bounce off the surface
func (wi *WhittedIntegrator) calculateReflectedColor(ray core.Ray, hit *geometry.HitRecord, s *scene.Scene, depth int) core.Vec3 {
	reflectedDir := ray.Direction.Reflect(hit.Normal)
	reflectedRay := core.NewRay(wi.offset(hit, 1), reflectedDir)
	return wi.RayColor(reflectedRay, s, depth-1)
}

// calculateRefractedColor follows the transmitted ray through the surface.
// Returns false on total internal reflection.
func (wi *WhittedIntegrator) calculateRefractedColor(ray core.Ray, hit *geometry.HitRecord, mat material.Material, s *scene.Scene, depth int) (core.Vec3, bool) {
	refractedDir, ok := ray.Direction.Refract(hit.Normal, mat.RefractionRatio(hit.FrontFace))
	if !ok {
		return core.Vec3{}, false
	}
	refractedRay := core.NewRay(wi.offset(hit, -1), refractedDir)
	return wi.RayColor(refractedRay, s, depth-1), true
}

// offset nudges the hit point along the normal (side=1) or into the surface
// (side=-1) so secondary rays do not re-hit the surface they start on
func (wi *WhittedIntegrator) offset(hit *geometry.HitRecord, side float64) core.Vec3 {
	return hit.Point.Add(hit.Normal.Multiply(side * wi.config.SurfaceBias))
}
