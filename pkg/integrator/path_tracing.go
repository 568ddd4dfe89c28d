package integrator

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// shadowAcneEpsilon skips hits at the previous bounce point
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a sky gradient
type PathTracingIntegrator struct {
	MaxDepth    int       // Maximum number of bounces per path
	TopColor    core.Vec3 // Sky color straight up
	BottomColor core.Vec3 // Sky color at the horizon and below
}

// NewPathTracingIntegrator creates a path tracer with the default white to blue sky
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:    maxDepth,
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Trace implements Integrator starting from the configured depth
func (pt *PathTracingIntegrator) Trace(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	return pt.RayColor(ray, world, sampler, pt.MaxDepth)
}

// RayColor computes the color for a single ray. Each bounce decrements depth;
// paths that run out of depth contribute no light.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, shadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{}
	}

	return scatter.Attenuation.MultiplyVec(pt.RayColor(scatter.Scattered, world, sampler, depth-1))
}

// backgroundGradient returns a gradient color based on ray direction
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return pt.BottomColor.Multiply(1.0 - t).Add(pt.TopColor.Multiply(t))
}
