package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewTrianglesScene creates a mirrored pyramid and a diffuse tetrahedron built
// from triangles on a triangulated floor
func NewTrianglesScene() *Scene {
	floor := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	mirror := material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.05)
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))

	cameraConfig := renderer.CameraConfig{
		LookFrom: core.NewVec3(0, 1.5, 2.5),
		LookAt:   core.NewVec3(0, 0.25, -1),
		VFov:     45,
	}

	s := &Scene{
		Name:           "triangles",
		SamplingConfig: renderer.DefaultSamplingConfig(),
		CameraConfig:   renderer.MergeCameraConfig(renderer.DefaultCameraConfig(), cameraConfig),
	}

	s.Add(newGroundQuad(core.NewVec3(0, -0.5, -1), 20, floor)...)
	s.Add(newPyramid(core.NewVec3(-0.7, -0.5, -1.2), 1.0, 1.2, mirror)...)
	s.Add(newTetrahedron(core.NewVec3(0.8, -0.5, -0.8), 0.6, red)...)
	return s
}

// newPyramid creates the four sloped faces of a square pyramid standing on base
func newPyramid(base core.Vec3, width, height float64, mat material.Material) []geometry.Hittable {
	h := width / 2
	apex := base.Add(core.NewVec3(0, height, 0))
	corners := []core.Vec3{
		base.Add(core.NewVec3(-h, 0, h)),
		base.Add(core.NewVec3(h, 0, h)),
		base.Add(core.NewVec3(h, 0, -h)),
		base.Add(core.NewVec3(-h, 0, -h)),
	}

	faces := make([]geometry.Hittable, 0, len(corners))
	for i := range corners {
		faces = append(faces, geometry.NewTriangle(corners[i], corners[(i+1)%len(corners)], apex, mat))
	}
	return faces
}

// newTetrahedron creates a regular tetrahedron with edge length size standing on base
func newTetrahedron(base core.Vec3, size float64, mat material.Material) []geometry.Hittable {
	r := size / 1.7320508075688772 // circumradius of the bottom face
	height := size * 0.816496580927726
	p0 := base.Add(core.NewVec3(0, 0, -r))
	p1 := base.Add(core.NewVec3(-size/2, 0, r/2))
	p2 := base.Add(core.NewVec3(size/2, 0, r/2))
	apex := base.Add(core.NewVec3(0, height, 0))

	return []geometry.Hittable{
		geometry.NewTriangle(p0, p2, p1, mat),
		geometry.NewTriangle(p1, p2, apex, mat),
		geometry.NewTriangle(p2, p0, apex, mat),
		geometry.NewTriangle(p0, p1, apex, mat),
	}
}
