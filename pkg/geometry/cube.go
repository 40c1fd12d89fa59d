package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Cube represents an axis-aligned cube
type Cube struct {
	Center   core.Vec3         // Center point of the cube
	Size     float64           // Edge length (half-extent is Size/2)
	Material material.Material // Material for all faces
}

// NewCube creates a new axis-aligned cube with the given center and edge length
func NewCube(center core.Vec3, size float64, mat material.Material) *Cube {
	return &Cube{
		Center:   center,
		Size:     size,
		Material: mat,
	}
}

// GetMaterial returns the cube's material
func (c *Cube) GetMaterial() material.Material {
	return c.Material
}

// Hit tests if a ray intersects with the cube using the slab method
func (c *Cube) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	half := c.Size / 2.0
	minCorner := c.Center.Subtract(core.NewVec3(half, half, half))
	maxCorner := c.Center.Add(core.NewVec3(half, half, half))

	nearX, farX, ok := slab(ray.Origin.X, ray.Direction.X, minCorner.X, maxCorner.X)
	if !ok {
		return nil, false
	}
	nearY, farY, ok := slab(ray.Origin.Y, ray.Direction.Y, minCorner.Y, maxCorner.Y)
	if !ok {
		return nil, false
	}
	nearZ, farZ, ok := slab(ray.Origin.Z, ray.Direction.Z, minCorner.Z, maxCorner.Z)
	if !ok {
		return nil, false
	}

	tNear := max(nearX, nearY, nearZ)
	tFar := min(farX, farY, farZ)
	if tFar < 0 || tNear > tFar {
		return nil, false
	}

	// Origin inside the box (or entry point behind tMin): use the exit point
	t := tNear
	if t <= tMin {
		t = tFar
	}
	if !inRange(t, tMin, tMax) || math.IsInf(t, 0) {
		return nil, false
	}

	point := ray.At(t)
	return newHitRecord(ray, t, cubeFaceNormal(point.Subtract(c.Center))), true
}

// slab returns the parametric interval where the ray lies between lo and hi
// along one axis. A ray parallel to the slab either lies inside it for all t
// or misses it entirely.
func slab(origin, direction, lo, hi float64) (float64, float64, bool) {
	if math.Abs(direction) < parallelEpsilon {
		if origin < lo || origin > hi {
			return 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), true
	}
	invDir := 1.0 / direction
	t1 := (lo - origin) * invDir
	t2 := (hi - origin) * invDir
	return min(t1, t2), max(t1, t2), true
}

// cubeFaceNormal picks the face whose axis dominates the offset from the center.
// Ties resolve in x, y, z order.
func cubeFaceNormal(offset core.Vec3) core.Vec3 {
	absX := math.Abs(offset.X)
	absY := math.Abs(offset.Y)
	absZ := math.Abs(offset.Z)

	switch {
	case absX >= absY && absX >= absZ:
		return core.NewVec3(math.Copysign(1, offset.X), 0, 0)
	case absY >= absZ:
		return core.NewVec3(0, math.Copysign(1, offset.Y), 0)
	default:
		return core.NewVec3(0, 0, math.Copysign(1, offset.Z))
	}
}
