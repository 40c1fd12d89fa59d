package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface responds to light under the Phong model,
// plus the reflective and refractive fractions used by the Whitted integrator.
// Materials are plain values: each shape owns its own copy.
type Material struct {
	Color           core.Vec3 // Base surface color
	Ambient         float64   // Ambient coefficient
	Diffuse         float64   // Diffuse coefficient
	Specular        float64   // Specular coefficient
	Shininess       float64   // Phong exponent
	Reflectivity    float64   // Mirror fraction in [0,1]
	Transparency    float64   // Transmitted fraction in [0,1]
	RefractiveIndex float64   // Index of refraction, >= 1
}

// NewMaterial creates a material from explicit coefficients
func NewMaterial(color core.Vec3, ambient, diffuse, specular, shininess, reflectivity, transparency, refractiveIndex float64) Material {
	return Material{
		Color:           color,
		Ambient:         ambient,
		Diffuse:         diffuse,
		Specular:        specular,
		Shininess:       shininess,
		Reflectivity:    reflectivity,
		Transparency:    transparency,
		RefractiveIndex: refractiveIndex,
	}
}

// Default returns a matte gray material
func Default() Material {
	return NewMaterial(core.NewVec3(0.5, 0.5, 0.5), 0.1, 0.7, 0.2, 200.0, 0.0, 0.0, 1.0)
}

// Reflective returns a shiny material that mirrors the given fraction of incoming light
func Reflective(color core.Vec3, reflectivity float64) Material {
	return NewMaterial(color, 0.1, 0.3, 0.6, 200.0, reflectivity, 0.0, 1.0)
}

// Transparent returns a glass-like material.
// It keeps a small reflectivity of 0.1 on top of the transmitted fraction.
func Transparent(color core.Vec3, transparency, refractiveIndex float64) Material {
	return NewMaterial(color, 0.1, 0.1, 0.8, 200.0, 0.1, transparency, refractiveIndex)
}

// AmbientColor returns the ambient term color * ambient
func (m Material) AmbientColor() core.Vec3 {
	return m.Color.Multiply(m.Ambient)
}

// RefractionRatio returns the ratio of indices for a ray crossing the surface:
// 1/ior when entering through the front face, ior when leaving.
func (m Material) RefractionRatio(frontFace bool) float64 {
	if frontFace {
		return 1.0 / m.RefractiveIndex
	}
	return m.RefractiveIndex
}
