package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/metrics"
)

// ErrDegenerateTimeInterval is returned when a moving sphere's keyframe times coincide
var ErrDegenerateTimeInterval = errors.New("moving sphere keyframe times must differ")

// MovingSphere is a sphere of constant radius whose center moves linearly
// from Center0 at Time0 to Center1 at Time1
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a new moving sphere. time0 and time1 must differ.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material material.Material) (*MovingSphere, error) {
	if time0 == time1 {
		return nil, fmt.Errorf("new moving sphere at %v with time %f: %w", center0, time0, ErrDegenerateTimeInterval)
	}
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}, nil
}

// Center returns the sphere's center at the given time. Times outside
// [Time0, Time1] extrapolate along the same line.
func (s *MovingSphere) Center(time float64) core.Vec3 {
	return s.Center0.Lerp(s.Center1, (time-s.Time0)/(s.Time1-s.Time0))
}

// Hit tests the ray against the sphere positioned at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	metrics.Record(metrics.RaySphere)
	return hitSphere(ray, tMin, tMax, s.Center(ray.Time), s.Radius, s.Material)
}

// BoundingBox bounds the sphere at both keyframes
func (s *MovingSphere) BoundingBox() core.AABB {
	return sphereBox(s.Center0, s.Radius).Union(sphereBox(s.Center1, s.Radius))
}
