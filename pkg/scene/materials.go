package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewMaterialsScene creates a row of three spheres showing each material:
// hollow glass on the left, diffuse in the middle and polished gold on the right
func NewMaterialsScene() *Scene {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	cameraConfig := renderer.CameraConfig{
		LookFrom: core.NewVec3(-2, 2, 1),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     20,
		Aperture: 0.1,
	}

	s := &Scene{
		Name:           "materials",
		SamplingConfig: renderer.DefaultSamplingConfig(),
		CameraConfig:   renderer.MergeCameraConfig(renderer.DefaultCameraConfig(), cameraConfig),
	}
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		// Negative radius flips the normals inward to make the shell hollow
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)
	return s
}
