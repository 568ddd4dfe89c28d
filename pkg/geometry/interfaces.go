package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// Hittable is implemented by every object a ray can be tested against:
// Sphere, MovingSphere, Triangle, HittableList and BVH.
type Hittable interface {
	// Hit returns the nearest intersection with t in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}
