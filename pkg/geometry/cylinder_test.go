package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestCylinder_Hit(t *testing.T) {
	// Radius 1, spans y in [-1, 1]
	cyl := NewCylinder(core.NewVec3(0, 0, 0), 1.0, 2.0, material.Default())

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		want      HitRecord
	}{
		{
			name:      "side from +z",
			origin:    core.NewVec3(0, 0.5, 5),
			direction: core.NewVec3(0, 0, -1),
			want:      HitRecord{Point: core.NewVec3(0, 0.5, 1), Normal: core.NewVec3(0, 0, 1), T: 4, FrontFace: true},
		},
		{
			name:      "side from -x",
			origin:    core.NewVec3(-3, 0, 0),
			direction: core.NewVec3(1, 0, 0),
			want:      HitRecord{Point: core.NewVec3(-1, 0, 0), Normal: core.NewVec3(-1, 0, 0), T: 2, FrontFace: true},
		},
		{
			name:      "top cap from above",
			origin:    core.NewVec3(0.3, 5, 0.2),
			direction: core.NewVec3(0, -1, 0),
			want:      HitRecord{Point: core.NewVec3(0.3, 1, 0.2), Normal: core.NewVec3(0, 1, 0), T: 4, FrontFace: true},
		},
		{
			name:      "bottom cap from below",
			origin:    core.NewVec3(0, -4, 0),
			direction: core.NewVec3(0, 1, 0),
			want:      HitRecord{Point: core.NewVec3(0, -1, 0), Normal: core.NewVec3(0, -1, 0), T: 3, FrontFace: true},
		},
		{
			name:      "side from inside",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(1, 0, 0),
			want:      HitRecord{Point: core.NewVec3(1, 0, 0), Normal: core.NewVec3(-1, 0, 0), T: 1, FrontFace: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			hit, isHit := cyl.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if diff := cmp.Diff(tt.want, *hit, approx); diff != "" {
				t.Errorf("Hit mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCylinder_Hit_NearestCandidate(t *testing.T) {
	cyl := NewCylinder(core.NewVec3(0, 0, 0), 1.0, 2.0, material.Default())

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		want      HitRecord
	}{
		{
			// Enters through the top cap, would leave through the bottom rim
			name:      "cap nearer than side",
			origin:    core.NewVec3(0, 3, 0),
			direction: core.NewVec3(0.25, -1, 0),
			want:      HitRecord{Point: core.NewVec3(0.5, 1, 0), Normal: core.NewVec3(0, 1, 0), T: core.NewVec3(0.5, -2, 0).Length(), FrontFace: true},
		},
		{
			// Enters through the side, would leave through the top cap
			name:      "side nearer than cap",
			origin:    core.NewVec3(-3, 0, 0),
			direction: core.NewVec3(1, 0.4, 0),
			want:      HitRecord{Point: core.NewVec3(-1, 0.8, 0), Normal: core.NewVec3(-1, 0, 0), T: core.NewVec3(2, 0.8, 0).Length(), FrontFace: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			hit, isHit := cyl.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if diff := cmp.Diff(tt.want, *hit, approx); diff != "" {
				t.Errorf("Hit mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCylinder_Hit_NearlyAxialRay(t *testing.T) {
	// A very tall cylinder crossed by a ray whose XZ slope is tiny
	cyl := NewCylinder(core.NewVec3(0, 0, 0), 1.0, 1e6, material.Default())
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(-5e-5, -1, 0))

	hit, isHit := cyl.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected side hit, but got miss")
	}

	want := HitRecord{
		Point:     core.NewVec3(1, -20000, 0),
		Normal:    core.NewVec3(1, 0, 0),
		T:         core.NewVec3(-1, -20000, 0).Length(),
		FrontFace: true,
	}
	if diff := cmp.Diff(want, *hit, cmpopts.EquateApprox(1e-9, 1e-9)); diff != "" {
		t.Errorf("Hit mismatch (-want +got):\n%s", diff)
	}
}

func TestCylinder_Hit_Misses(t *testing.T) {
	cyl := NewCylinder(core.NewVec3(0, 0, -7), 0.5, 2.0, material.Default())
	zeroRadius := NewCylinder(core.NewVec3(0, 0, 0), 0, 2.0, material.Default())

	tests := []struct {
		name      string
		cylinder  *Cylinder
		origin    core.Vec3
		direction core.Vec3
	}{
		{"passes beside", cyl, core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1)},
		{"passes above", cyl, core.NewVec3(0, 1.5, 0), core.NewVec3(0, 0, -1)},
		{"parallel to axis outside radius", cyl, core.NewVec3(1, 5, -7), core.NewVec3(0, -1, 0)},
		{"points away", cyl, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)},
		{"zero direction", cyl, core.NewVec3(0, 0, 0), core.Zero()},
		{"zero radius through axis", zeroRadius, core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)},
		{"zero radius along axis", zeroRadius, core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			if hit, isHit := tt.cylinder.Hit(ray, 0.001, math.Inf(1)); isHit {
				t.Errorf("Expected miss, but got hit at t=%f", hit.T)
			}
		})
	}
}
