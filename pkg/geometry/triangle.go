package geometry

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/metrics"
)

// parallelEpsilon is the smallest |N·D| accepted before a ray counts as parallel to the plane
const parallelEpsilon = 1e-8

// boxPadding is the minimum extent of a triangle's box on every axis. The slab
// test rejects a zero-width interval, so a flat box could never be entered.
const boxPadding = 1e-4

// Triangle represents a single triangle defined by three vertices.
// Counter-clockwise winding (seen from the front) gives the outward normal.
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached unit plane normal
	bbox       core.AABB         // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
		bbox:     padBox(core.NewAABBFromPoints(v0, v1, v2)),
	}
}

// Hit intersects the ray with the triangle's plane and then classifies the
// plane hit with one edge function per side
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	metrics.Record(metrics.RayTriangle)

	nDotD := t.normal.Dot(ray.Direction)
	if math.Abs(nDotD) < parallelEpsilon {
		return nil, false
	}

	tHit := t.normal.Dot(t.V0.Subtract(ray.Origin)) / nDotD
	if tHit < tMin || tHit > tMax {
		return nil, false
	}

	p := ray.At(tHit)
	if !t.inside(p) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        tHit,
		Point:    p,
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// inside reports whether a point on the plane lies within or on the triangle
func (t *Triangle) inside(p core.Vec3) bool {
	return t.normal.Dot(t.V1.Subtract(t.V0).Cross(p.Subtract(t.V0))) >= 0 &&
		t.normal.Dot(t.V2.Subtract(t.V1).Cross(p.Subtract(t.V1))) >= 0 &&
		t.normal.Dot(t.V0.Subtract(t.V2).Cross(p.Subtract(t.V2))) >= 0
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's plane normal. It is normalized once at
// construction because hit records pass it straight to materials, whose
// reflection, refraction and diffuse scattering all assume a unit normal.
// Zero-area triangles have a zero normal and are never hit.
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// padBox widens every axis thinner than boxPadding around its midpoint
func padBox(box core.AABB) core.AABB {
	pad := func(lo, hi float64) (float64, float64) {
		if hi-lo >= boxPadding {
			return lo, hi
		}
		mid := (lo + hi) / 2
		return mid - boxPadding/2, mid + boxPadding/2
	}

	box.Min.X, box.Max.X = pad(box.Min.X, box.Max.X)
	box.Min.Y, box.Max.Y = pad(box.Min.Y, box.Max.Y)
	box.Min.Z, box.Max.Z = pad(box.Min.Z, box.Max.Z)
	return box
}
