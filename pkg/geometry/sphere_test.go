package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	lambertian := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, lambertian)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		tMin           float64
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "outside ray takes the nearer root",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -1),
			tMin:           0.001,
			expectedT:      4.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -2),
			tMin:           0.001,
			expectedT:      2.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "window past the near root takes the far root",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -1),
			tMin:           4.5,
			expectedT:      6.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "ray from inside hits the back face",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			tMin:           0.001,
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, tt.tMin, 1000.0)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Normal.Dot(tt.rayDirection) > 0 {
				t.Errorf("Stored normal %v must oppose the ray", hit.Normal)
			}
			if hit.Material != lambertian {
				t.Error("Expected hit record to carry the sphere material")
			}
		})
	}
}

func TestSphere_Hit_WindowExcludesBothRoots(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	if _, isHit := sphere.Hit(ray, 0.001, 3.0); isHit {
		t.Error("Expected miss when window ends before the sphere")
	}
	if _, isHit := sphere.Hit(ray, 6.5, 100); isHit {
		t.Error("Expected miss when window starts after the sphere")
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected tangent ray to hit")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got %f", hit.T)
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, nil)
	box := sphere.BoundingBox()

	if box.Min != core.NewVec3(0.5, 1.5, 2.5) || box.Max != core.NewVec3(1.5, 2.5, 3.5) {
		t.Errorf("Unexpected bounding box %v", box)
	}
}

func TestMovingSphere_FollowsRayTime(t *testing.T) {
	sphere, err := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0, 1, 0.5, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	late := core.NewRayAtTime(core.NewVec3(0, 2, 5), core.NewVec3(0, 0, -1), 1)
	hit, isHit := sphere.Hit(late, 0.001, 100)
	if !isHit {
		t.Fatal("Expected hit at time 1 where the sphere has moved")
	}
	if math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("Expected t=4.5, got %f", hit.T)
	}

	early := core.NewRayAtTime(core.NewVec3(0, 2, 5), core.NewVec3(0, 0, -1), 0)
	if _, isHit := sphere.Hit(early, 0.001, 100); isHit {
		t.Error("Expected miss at time 0 before the sphere arrives")
	}

	if center := sphere.Center(0.5); center != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected midpoint center (0,1,0), got %v", center)
	}
}

func TestMovingSphere_BoundingBoxCoversBothKeyframes(t *testing.T) {
	sphere, err := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0, 1, 0.5, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	box := sphere.BoundingBox()
	expected := core.NewAABB(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 2.5, 0.5))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}

func TestMovingSphere_RejectsDegenerateInterval(t *testing.T) {
	_, err := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 0.5, 0.5, 1, nil)
	if !errors.Is(err, ErrDegenerateTimeInterval) {
		t.Errorf("Expected ErrDegenerateTimeInterval, got %v", err)
	}
}
