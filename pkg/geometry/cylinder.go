package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Cylinder represents a finite capped cylinder whose axis is parallel to Y
type Cylinder struct {
	Center   core.Vec3 // Midpoint of the axis
	Radius   float64
	Height   float64 // Total height, cap to cap
	Material material.Material
}

// NewCylinder creates a new capped cylinder centered at center
func NewCylinder(center core.Vec3, radius, height float64, mat material.Material) *Cylinder {
	return &Cylinder{
		Center:   center,
		Radius:   radius,
		Height:   height,
		Material: mat,
	}
}

// GetMaterial returns the cylinder's material
func (c *Cylinder) GetMaterial() material.Material {
	return c.Material
}

// Hit tests if a ray intersects with the cylinder's side or either cap,
// returning the nearest of all candidates
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	if c.Radius <= 0 {
		return nil, false
	}

	var closestHit *HitRecord
	closestT := tMax

	if hit, ok := c.hitSide(ray, tMin, closestT); ok {
		closestHit = hit
		closestT = hit.T
	}

	halfHeight := c.Height / 2.0
	for _, disk := range []struct {
		y      float64
		normal core.Vec3
	}{
		{c.Center.Y - halfHeight, core.NewVec3(0, -1, 0)},
		{c.Center.Y + halfHeight, core.NewVec3(0, 1, 0)},
	} {
		if hit, ok := c.hitCap(ray, tMin, closestT, disk.y, disk.normal); ok {
			closestHit = hit
			closestT = hit.T
		}
	}

	return closestHit, closestHit != nil
}

// hitSide intersects the lateral surface, solving the quadratic in the XZ plane
func (c *Cylinder) hitSide(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	oc := ray.Origin.Subtract(c.Center)

	// a is a squared length, so it is compared against the squared tolerance
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if a < parallelEpsilon*parallelEpsilon {
		// Ray runs along the axis; only the caps can be hit
		return nil, false
	}
	b := 2.0 * (oc.X*ray.Direction.X + oc.Z*ray.Direction.Z)
	cc := oc.X*oc.X + oc.Z*oc.Z - c.Radius*c.Radius

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)
	halfHeight := c.Height / 2.0

	// Roots in ascending order, so the first accepted one is the nearest
	for _, t := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if !inRange(t, tMin, tMax) {
			continue
		}
		point := ray.At(t)
		y := point.Y - c.Center.Y
		if y < -halfHeight || y > halfHeight {
			continue
		}
		outwardNormal := core.NewVec3(
			(point.X-c.Center.X)/c.Radius,
			0,
			(point.Z-c.Center.Z)/c.Radius,
		)
		if !outwardNormal.IsFinite() {
			continue
		}
		return newHitRecord(ray, t, outwardNormal), true
	}

	return nil, false
}

// hitCap intersects the disk of radius c.Radius lying in the plane y = capY
func (c *Cylinder) hitCap(ray core.Ray, tMin, tMax, capY float64, outwardNormal core.Vec3) (*HitRecord, bool) {
	if math.Abs(ray.Direction.Y) < parallelEpsilon {
		return nil, false
	}

	t := (capY - ray.Origin.Y) / ray.Direction.Y
	if !inRange(t, tMin, tMax) {
		return nil, false
	}

	point := ray.At(t)
	dx := point.X - c.Center.X
	dz := point.Z - c.Center.Z
	if dx*dx+dz*dz > c.Radius*c.Radius {
		return nil, false
	}

	return newHitRecord(ray, t, outwardNormal), true
}
