package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewRandomScene creates a field of small random spheres around three large
// ones. Diffuse spheres bounce upwards during the shutter interval. The same
// seed always produces the same layout.
func NewRandomScene(seed int64) *Scene {
	sampler := core.NewSeededSampler(seed)

	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		Aperture:      0.1,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}

	s := &Scene{
		Name:           "random",
		SamplingConfig: renderer.MergeSamplingConfig(renderer.DefaultSamplingConfig(), renderer.SamplingConfig{Width: 600, Height: 400}),
		CameraConfig:   renderer.MergeCameraConfig(renderer.DefaultCameraConfig(), cameraConfig),
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := sampler.Get1D()
			jitter := sampler.Get2D()
			center := core.NewVec3(float64(a)+0.9*jitter.X, 0.2, float64(b)+0.9*jitter.Y)

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				bounce := core.NewVec3(0, core.RandomInRange(sampler.Get1D(), 0, 0.5), 0)
				s.Add(mustMovingSphere(center, center.Add(bounce), 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMaterial < 0.95:
				c := sampler.Get3D()
				albedo := core.NewVec3(
					core.RandomInRange(c.X, 0.5, 1),
					core.RandomInRange(c.Y, 0.5, 1),
					core.RandomInRange(c.Z, 0.5, 1),
				)
				fuzz := core.RandomInRange(sampler.Get1D(), 0, 0.5)
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)
	return s
}
