package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// HittableList tests a ray against every object in order and keeps the nearest hit
type HittableList struct {
	Objects []Hittable
	box     core.AABB
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{box: core.EmptyAABB()}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the cached bounding box
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
	l.box = l.box.Union(object.BoundingBox())
}

// Hit returns the nearest hit across all objects
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all object boxes; empty lists return EmptyAABB
func (l *HittableList) BoundingBox() core.AABB {
	return l.box
}
