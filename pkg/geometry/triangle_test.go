package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

func TestTriangle_Hit(t *testing.T) {
	// Create a triangle in the XY plane
	v0 := core.NewVec3(0, 0, 0)
	v1 := core.NewVec3(1, 0, 0)
	v2 := core.NewVec3(0, 1, 0)
	triangle := NewTriangle(v0, v1, v2, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	tests := []struct {
		name      string
		ray       core.Ray
		tMin      float64
		tMax      float64
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits triangle center",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits triangle edge",
			ray:       core.NewRay(core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits from the front",
			ray:       core.NewRay(core.NewVec3(0.2, 0.2, 3), core.NewVec3(0, 0, -1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 3.0,
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(core.NewVec3(1, 1, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			ray:       core.NewRay(core.NewVec3(-1, 0.25, 0), core.NewVec3(1, 0, 0)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Hit outside window",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      0.5,
			shouldHit: false,
		},
		{
			name:      "Triangle behind ray",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := triangle.Hit(tt.ray, tt.tMin, tt.tMax)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, isHit)
			}
			if !tt.shouldHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.Normal.Dot(tt.ray.Direction) >= 0 {
				t.Errorf("Stored normal %v must oppose the ray", hit.Normal)
			}
		})
	}
}

func TestTriangle_NormalIsPrecomputedPlaneNormal(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), nil)

	if triangle.Normal() != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected unit plane normal (0,0,1), got %v", triangle.Normal())
	}

	ray := core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, -1))
	hit, isHit := triangle.Hit(ray, 0.001, 10)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if !hit.FrontFace || hit.Normal != triangle.Normal() {
		t.Errorf("Expected front face with the plane normal, got front=%t normal=%v", hit.FrontFace, hit.Normal)
	}
}

func TestTriangle_NormalHasUnitLength(t *testing.T) {
	tests := []struct {
		name       string
		v0, v1, v2 core.Vec3
	}{
		{"right isosceles", core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0)},
		{"large skewed", core.NewVec3(-50, 3, 7), core.NewVec3(80, -20, 11), core.NewVec3(5, 60, -40)},
		{"tiny", core.NewVec3(1, 1, 1), core.NewVec3(1.001, 1, 1), core.NewVec3(1, 1.002, 1.001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewTriangle(tt.v0, tt.v1, tt.v2, nil).Normal()
			if math.Abs(n.Length()-1) > 1e-12 {
				t.Errorf("Expected unit normal, got %v with length %v", n, n.Length())
			}
			raw := tt.v1.Subtract(tt.v0).Cross(tt.v2.Subtract(tt.v0))
			if n.Dot(raw) <= 0 || n.Cross(raw).Length() > 1e-9*raw.Length() {
				t.Errorf("Expected normal along %v, got %v", raw, n)
			}
		})
	}
}

func TestTriangle_DegenerateNeverHits(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2), nil)
	ray := core.NewRay(core.NewVec3(1, 1, 5), core.NewVec3(0, 0, -1))

	if _, isHit := triangle.Hit(ray, 0.001, 100); isHit {
		t.Error("Expected zero-area triangle never to be hit")
	}
}

func TestTriangle_BoundingBox(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(1, -1, 2), core.NewVec3(3, 0, 0), core.NewVec3(0, 4, 1), nil)
	box := triangle.BoundingBox()

	if box.Min != core.NewVec3(0, -1, 0) || box.Max != core.NewVec3(3, 4, 2) {
		t.Errorf("Unexpected bounding box %v", box)
	}
}

func TestTriangle_AxisAlignedBoxIsPadded(t *testing.T) {
	// Lies in the y=2 plane
	triangle := NewTriangle(core.NewVec3(0, 2, 0), core.NewVec3(0, 2, 1), core.NewVec3(1, 2, 0), nil)
	box := triangle.BoundingBox()

	if !(box.Min.Y < 2 && box.Max.Y > 2) {
		t.Fatalf("Expected box padded around y=2, got %v", box)
	}
	if box.Min.X != 0 || box.Max.X != 1 || box.Min.Z != 0 || box.Max.Z != 1 {
		t.Errorf("Expected other axes untouched, got %v", box)
	}

	// A ray straight down enters the padded box and the BVH finds the triangle
	bvh, err := NewBVH([]Hittable{triangle, NewSphere(core.NewVec3(5, 0, 0), 0.5, nil)})
	if err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}
	ray := core.NewRay(core.NewVec3(0.25, 5, 0.25), core.NewVec3(0, -1, 0))
	hit, ok := bvh.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected the BVH to report the axis-aligned triangle")
	}
	if math.Abs(hit.T-3) > 1e-12 {
		t.Errorf("Expected hit at t=3, got %f", hit.T)
	}
}
