package scene

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Objects        []geometry.Hittable // Objects in the scene
	SamplingConfig renderer.SamplingConfig
	CameraConfig   renderer.CameraConfig
	BVH            *geometry.BVH // Acceleration structure built by Preprocess
}

// Add appends objects to the scene. Objects added after Preprocess are not
// visible until Preprocess is called again.
func (s *Scene) Add(objects ...geometry.Hittable) {
	s.Objects = append(s.Objects, objects...)
}

// Preprocess builds the BVH over the scene's objects
func (s *Scene) Preprocess() error {
	bvh, err := geometry.NewBVH(s.Objects)
	if err != nil {
		return fmt.Errorf("preprocess scene %q: %w", s.Name, err)
	}
	s.BVH = bvh
	return nil
}

// World returns the hittable the renderer should trace against: the BVH once
// built, otherwise a flat list of the scene's objects
func (s *Scene) World() geometry.Hittable {
	if s.BVH != nil {
		return s.BVH
	}
	return geometry.NewHittableList(s.Objects...)
}

// PrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Objects)
}

// NewCamera creates the scene's camera with the aspect ratio of its image
func (s *Scene) NewCamera() *renderer.Camera {
	config := s.CameraConfig
	if s.SamplingConfig.Width > 0 && s.SamplingConfig.Height > 0 {
		config.AspectRatio = float64(s.SamplingConfig.Width) / float64(s.SamplingConfig.Height)
	}
	return renderer.NewCamera(config)
}

// mustMovingSphere is for built-in scenes whose keyframe times are constants
func mustMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *geometry.MovingSphere {
	sphere, err := geometry.NewMovingSphere(center0, center1, time0, time1, radius, mat)
	if err != nil {
		panic(err)
	}
	return sphere
}

// newGroundQuad creates a horizontal square centered at the given point as two
// triangles whose normals point up (0,1,0)
func newGroundQuad(center core.Vec3, size float64, mat material.Material) []geometry.Hittable {
	half := size / 2
	p00 := core.NewVec3(center.X-half, center.Y, center.Z-half)
	p10 := core.NewVec3(center.X+half, center.Y, center.Z-half)
	p11 := core.NewVec3(center.X+half, center.Y, center.Z+half)
	p01 := core.NewVec3(center.X-half, center.Y, center.Z+half)
	// Counter-clockwise seen from above: (p01-p00) x (p11-p00) points up
	return []geometry.Hittable{
		geometry.NewTriangle(p00, p01, p11, mat),
		geometry.NewTriangle(p00, p11, p10, mat),
	}
}
