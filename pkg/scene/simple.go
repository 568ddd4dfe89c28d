package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewSimpleScene creates one diffuse sphere resting on a huge ground sphere,
// seen from the origin
func NewSimpleScene() *Scene {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s := &Scene{
		Name:           "simple",
		SamplingConfig: renderer.DefaultSamplingConfig(),
		CameraConfig:   renderer.DefaultCameraConfig(),
	}
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
	)
	return s
}
