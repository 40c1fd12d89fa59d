package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// defaultCameraConfig looks down -z from the origin
func defaultCameraConfig(aspectRatio float64) geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        45.0,
		AspectRatio: aspectRatio,
	}
}

// newBaseScene creates a scene with the default camera and a single white key light
func newBaseScene(aspectRatio float64) *Scene {
	s := NewScene()
	s.SetCamera(geometry.NewCamera(defaultCameraConfig(aspectRatio)))
	s.AddLight(lights.NewPointLight(
		core.NewVec3(5, 5, 5), // position
		core.NewVec3(1, 1, 1), // color
		1.0,                   // intensity
	))
	return s
}

// NewSphereScene creates a single large red sphere in front of the camera
func NewSphereScene(aspectRatio float64) *Scene {
	s := newBaseScene(aspectRatio)

	red := material.NewMaterial(core.NewVec3(0.8, 0.2, 0.2), 0.2, 0.8, 0.3, 100.0, 0.0, 0.0, 1.0)
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -5), 2.0, red))

	return s
}

// NewPlaneCubeScene creates a cube resting above a ground plane under a dim light
func NewPlaneCubeScene(aspectRatio float64) *Scene {
	s := newBaseScene(aspectRatio)

	s.ClearLights()
	s.AddLight(lights.NewPointLight(
		core.NewVec3(5, 5, 5),
		core.NewVec3(0.3, 0.3, 0.3),
		0.3,
	))

	lavender := material.NewMaterial(core.NewVec3(0.9, 0.8, 0.95), 0.3, 0.8, 0.3, 200.0, 0.0, 0.0, 1.0)
	lightBlue := material.NewMaterial(core.NewVec3(0.7, 0.9, 1.0), 0.3, 0.8, 0.4, 200.0, 0.0, 0.0, 1.0)

	s.AddShape(geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), lavender))
	s.AddShape(geometry.NewCube(core.NewVec3(0, 0, -5), 1.0, lightBlue))

	return s
}

// NewAllObjectsScene creates one of each primitive above a ground plane
func NewAllObjectsScene(aspectRatio float64) *Scene {
	s := newBaseScene(aspectRatio)
	addAllObjects(s)
	return s
}

// NewPerspectiveScene shows the all-objects scene from an elevated camera.
// The camera keeps a fixed 4:3 aspect ratio regardless of the image size.
func NewPerspectiveScene(aspectRatio float64) *Scene {
	s := newBaseScene(aspectRatio)

	s.SetCamera(geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(-3, 3, 2),
		LookAt:      core.NewVec3(0, 0, -5),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        45.0,
		AspectRatio: 800.0 / 600.0,
	}))
	addAllObjects(s)

	return s
}

// addAllObjects adds a gray ground plane, a red sphere, a green cube and a blue cylinder
func addAllObjects(s *Scene) {
	gray := material.Default()
	red := material.NewMaterial(core.NewVec3(0.8, 0.2, 0.2), 0.1, 0.7, 0.2, 200.0, 0.0, 0.0, 1.0)
	green := material.NewMaterial(core.NewVec3(0.2, 0.8, 0.2), 0.1, 0.7, 0.2, 200.0, 0.0, 0.0, 1.0)
	blue := material.NewMaterial(core.NewVec3(0.2, 0.2, 0.8), 0.1, 0.7, 0.2, 200.0, 0.0, 0.0, 1.0)

	s.AddShape(geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), gray))
	s.AddShape(geometry.NewSphere(core.NewVec3(-2, 0, -5), 1.0, red))
	s.AddShape(geometry.NewCube(core.NewVec3(2, 0, -5), 1.0, green))
	s.AddShape(geometry.NewCylinder(core.NewVec3(0, 0, -7), 0.5, 2.0, blue))
}

// NewMaterialsScene creates a mirror sphere and a glass sphere over a
// slightly reflective floor
func NewMaterialsScene(aspectRatio float64) *Scene {
	s := newBaseScene(aspectRatio)

	s.AddShape(geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), material.Reflective(core.NewVec3(0.6, 0.6, 0.6), 0.3)))
	s.AddShape(geometry.NewSphere(core.NewVec3(-1.5, -0.5, -6), 1.5, material.Reflective(core.NewVec3(0.9, 0.9, 0.9), 0.8)))
	s.AddShape(geometry.NewSphere(core.NewVec3(1.2, -1, -4), 1.0, material.Transparent(core.NewVec3(0.9, 1.0, 0.9), 0.8, 1.5)))
	s.AddShape(geometry.NewCube(core.NewVec3(1.5, -1.25, -8), 1.5, material.NewMaterial(core.NewVec3(0.9, 0.6, 0.1), 0.1, 0.7, 0.2, 50.0, 0.0, 0.0, 1.0)))

	return s
}
