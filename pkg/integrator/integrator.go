package integrator

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Trace returns the unclamped color carried back along a camera ray
	Trace(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3
}
