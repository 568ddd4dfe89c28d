package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/loaders"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// ErrMissingMesh is returned when the mesh scene is requested without a file
var ErrMissingMesh = errors.New("mesh scene requires a glTF or GLB file")

// NewMeshScene loads a glTF/GLB model, scales it to a unit-sized object and
// places it on a ground sphere in front of the camera
func NewMeshScene(path string) (*Scene, error) {
	if path == "" {
		return nil, ErrMissingMesh
	}

	mesh, err := loaders.LoadGLTF(path)
	if err != nil {
		return nil, fmt.Errorf("mesh scene: %w", err)
	}
	mesh = mesh.Fit(core.NewVec3(0, -0.5, -1), 1.0)

	cameraConfig := renderer.CameraConfig{
		LookFrom: core.NewVec3(0, 0.5, 1.2),
		LookAt:   core.NewVec3(0, 0, -1),
		VFov:     40,
	}

	s := &Scene{
		Name:           "mesh",
		SamplingConfig: renderer.DefaultSamplingConfig(),
		CameraConfig:   renderer.MergeCameraConfig(renderer.DefaultCameraConfig(), cameraConfig),
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	s.Add(mesh.Hittables(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2))...)
	return s, nil
}
