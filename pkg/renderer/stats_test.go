package renderer

import (
	"testing"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestPixelStats_Average(t *testing.T) {
	var ps PixelStats
	if ps.GetColor() != (core.Vec3{}) {
		t.Errorf("Expected black with no samples, got %v", ps.GetColor())
	}

	ps.AddSample(core.NewVec3(1, 0, 0.5))
	ps.AddSample(core.NewVec3(0, 1, 0.5))

	if ps.SampleCount != 2 {
		t.Errorf("Expected 2 samples, got %d", ps.SampleCount)
	}
	if got := ps.GetColor(); got != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Expected average (0.5,0.5,0.5), got %v", got)
	}
}

func TestRenderStats_SamplesPerSecond(t *testing.T) {
	stats := RenderStats{TotalSamples: 1000, Duration: 2 * time.Second}
	if got := stats.SamplesPerSecond(); got != 500 {
		t.Errorf("Expected 500 samples/s, got %f", got)
	}
	if got := (RenderStats{TotalSamples: 10}).SamplesPerSecond(); got != 0 {
		t.Errorf("Expected 0 for zero duration, got %f", got)
	}
}
