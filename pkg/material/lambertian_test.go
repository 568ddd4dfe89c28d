package material

import (
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// fixedSampler replays a fixed sequence of values
type fixedSampler struct {
	values []float64
	next   int
}

func (s *fixedSampler) Get1D() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.Get1D(), s.Get1D())
}

func (s *fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.Get1D(), s.Get1D(), s.Get1D())
}

func TestLambertian_ScattersIntoHemisphere(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{Point: core.NewVec3(1, 2, 3), Normal: normal, FrontFace: true}
	ray := core.NewRayAtTime(core.NewVec3(1, 2, 5), core.NewVec3(0, 0, -1), 0.25)

	for i := 0; i < 500; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Expected scattered ray to start at %v, got %v", hit.Point, scatter.Scattered.Origin)
		}
		if scatter.Scattered.Time != 0.25 {
			t.Fatalf("Expected scattered ray to keep time 0.25, got %f", scatter.Scattered.Time)
		}
		if scatter.Scattered.Direction.Dot(normal) < -1e-12 {
			t.Fatalf("Scattered direction %v below surface", scatter.Scattered.Direction)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))

	// Draws (0.5, 0.25, 0.5) map to (0, -0.5, 0), whose unit vector cancels the normal
	sampler := &fixedSampler{values: []float64{0.5, 0.25, 0.5}}

	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}
	if scatter.Scattered.Direction != normal {
		t.Errorf("Expected fallback direction %v, got %v", normal, scatter.Scattered.Direction)
	}
}

func TestHitRecord_SetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	var front HitRecord
	front.SetFaceNormal(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), outward)
	if !front.FrontFace || front.Normal != outward {
		t.Errorf("Expected front face with outward normal, got %+v", front)
	}

	var back HitRecord
	back.SetFaceNormal(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), outward)
	if back.FrontFace || back.Normal != outward.Negate() {
		t.Errorf("Expected back face with flipped normal, got %+v", back)
	}
}
