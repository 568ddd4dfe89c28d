package core

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/metrics"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// EmptyAABB returns the identity box for Union: it contains nothing and
// Union(EmptyAABB(), b) == b for every box b
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// NewAABBFromPoint creates a degenerate AABB containing a single point
func NewAABBFromPoint(p Vec3) AABB {
	return AABB{Min: p, Max: p}
}

// NewAABB creates an AABB spanning two corners given in any order
func NewAABB(p1, p2 Vec3) AABB {
	return AABB{
		Min: NewVec3(math.Min(p1.X, p2.X), math.Min(p1.Y, p2.Y), math.Min(p1.Z, p2.Z)),
		Max: NewVec3(math.Max(p1.X, p2.X), math.Max(p1.Y, p2.Y), math.Max(p1.Z, p2.Z)),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB()
	for _, point := range points {
		box = box.Union(NewAABBFromPoint(point))
	}
	return box
}

// Hit tests if a ray intersects with this AABB within [tMin, tMax] using the slab method.
//
// Zero direction components yield infinite inverse directions; these flow
// through the comparisons unchanged. A NaN entry or exit (0 * Inf) never
// narrows the window.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	metrics.Record(metrics.RayBox)

	for axis := 0; axis < 3; axis++ {
		invDirection := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (aabb.Min.Axis(axis) - origin) * invDirection
		t1 := (aabb.Max.Axis(axis) - origin) * invDirection

		// Ray travels towards -axis: entry is at the max face
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// HitRay tests the ray against the box over the window [0, +Inf)
func (aabb AABB) HitRay(ray Ray) bool {
	return aabb.Hit(ray, 0, math.Inf(1))
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: NewVec3(
			math.Min(aabb.Min.X, other.Min.X),
			math.Min(aabb.Min.Y, other.Min.Y),
			math.Min(aabb.Min.Z, other.Min.Z),
		),
		Max: NewVec3(
			math.Max(aabb.Max.X, other.Max.X),
			math.Max(aabb.Max.Y, other.Max.Y),
			math.Max(aabb.Max.Z, other.Max.Z),
		),
	}
}

// Intersect returns the common region of two boxes. The result is invalid
// (see IsValid) when the boxes do not overlap.
func (aabb AABB) Intersect(other AABB) AABB {
	return AABB{
		Min: NewVec3(
			math.Max(aabb.Min.X, other.Min.X),
			math.Max(aabb.Min.Y, other.Min.Y),
			math.Max(aabb.Min.Z, other.Min.Z),
		),
		Max: NewVec3(
			math.Min(aabb.Max.X, other.Max.X),
			math.Min(aabb.Max.Y, other.Max.Y),
			math.Min(aabb.Max.Z, other.Max.Z),
		),
	}
}

// Overlaps reports whether the boxes share at least one point on every axis
func (aabb AABB) Overlaps(other AABB) bool {
	return aabb.Max.X >= other.Min.X && aabb.Min.X <= other.Max.X &&
		aabb.Max.Y >= other.Min.Y && aabb.Min.Y <= other.Max.Y &&
		aabb.Max.Z >= other.Min.Z && aabb.Min.Z <= other.Max.Z
}

// Contains reports whether p lies inside or on the box
func (aabb AABB) Contains(p Vec3) bool {
	return aabb.Min.X <= p.X && p.X <= aabb.Max.X &&
		aabb.Min.Y <= p.Y && p.Y <= aabb.Max.Y &&
		aabb.Min.Z <= p.Z && p.Z <= aabb.Max.Z
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// Volume returns the volume enclosed by the AABB
func (aabb AABB) Volume() float64 {
	size := aabb.Size()
	return size.X * size.Y * size.Z
}

// Lerp maps a per-axis parameter in [0,1] to a point inside the box
func (aabb AABB) Lerp(t Vec3) Vec3 {
	return NewVec3(
		(1-t.X)*aabb.Min.X+t.X*aabb.Max.X,
		(1-t.Y)*aabb.Min.Y+t.Y*aabb.Max.Y,
		(1-t.Z)*aabb.Min.Z+t.Z*aabb.Max.Z,
	)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
// Ties resolve in the order X, Y, Z.
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X >= size.Y && size.X >= size.Z {
		return 0 // X axis
	}
	if size.Y >= size.Z {
		return 1 // Y axis
	}
	return 2 // Z axis
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
