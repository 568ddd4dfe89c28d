package core

import (
	"math"
	"testing"
)

// scriptedSampler replays fixed values so tests can force specific draws
type scriptedSampler struct {
	values []float64
	next   int
}

func (s *scriptedSampler) Get1D() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *scriptedSampler) Get2D() Vec2 {
	return NewVec2(s.Get1D(), s.Get1D())
}

func (s *scriptedSampler) Get3D() Vec3 {
	return NewVec3(s.Get1D(), s.Get1D(), s.Get1D())
}

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point %v outside unit sphere", p)
		}
	}
}

func TestRandomInUnitSphere_RejectsCorners(t *testing.T) {
	// First draw maps to the cube corner (1,1,1) and must be rejected
	sampler := &scriptedSampler{values: []float64{0.9999, 0.9999, 0.9999, 0.5, 0.75, 0.5}}
	p := RandomInUnitSphere(sampler)
	if p != NewVec3(0, 0.5, 0) {
		t.Errorf("Expected second draw (0,0.5,0), got %v", p)
	}
}

func TestRandomUnitVector(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit length, got %f for %v", v.Length(), v)
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 || p.LengthSquared() >= 1 {
			t.Fatalf("Point %v outside unit disk", p)
		}
	}
}

func TestSeededSamplerIsDeterministic(t *testing.T) {
	a := NewSeededSampler(123)
	b := NewSeededSampler(123)
	for i := 0; i < 10; i++ {
		if a.Get3D() != b.Get3D() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}
