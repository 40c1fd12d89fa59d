package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the outward-facing side
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// newHitRecord builds a hit record at parameter t with the given outward normal
func newHitRecord(ray core.Ray, t float64, outwardNormal core.Vec3) *HitRecord {
	hitRecord := &HitRecord{
		T:     t,
		Point: ray.At(t),
	}
	hitRecord.SetFaceNormal(ray, outwardNormal)
	return hitRecord
}

// Shape interface for objects that can be hit by rays.
// Hit reports the closest intersection with t in (tMin, tMax].
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
	GetMaterial() material.Material
}

// inRange reports whether t lies in the half-open interval (tMin, tMax]
func inRange(t, tMin, tMax float64) bool {
	return t > tMin && t <= tMax
}
