package renderer

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestToByte(t *testing.T) {
	tests := []struct {
		value    float64
		expected uint8
	}{
		{0, 0},
		{0.25, 128}, // sqrt gives 0.5
		{1, 255},
		{4, 255},
		{-1, 0},
	}

	for _, tt := range tests {
		if got := ToByte(tt.value); got != tt.expected {
			t.Errorf("ToByte(%f) = %d, expected %d", tt.value, got, tt.expected)
		}
	}
}

func TestFramebuffer_WritePPM(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(0, 0, core.NewVec3(1, 0, 0))
	fb.Set(1, 0, core.NewVec3(0, 1, 0))
	fb.Set(0, 1, core.NewVec3(0, 0, 1))
	fb.Set(1, 1, core.NewVec3(0.25, 0.25, 0.25))

	var buf bytes.Buffer
	if err := fb.WritePPM(&buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := strings.Join([]string{
		"P3",
		"2 2",
		"255",
		"255 0 0",
		"0 255 0",
		"0 0 255",
		"128 128 128",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Errorf("Unexpected PPM output:\n%s", buf.String())
	}
}

func TestFramebuffer_WritePNG(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Set(2, 1, core.NewVec3(1, 1, 1))

	var buf bytes.Buffer
	if err := fb.WritePNG(&buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Unexpected bounds %v", img.Bounds())
	}
	r, g, b, _ := img.At(2, 1).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("Expected white pixel, got %d %d %d", r>>8, g>>8, b>>8)
	}
	r, _, _, _ = img.At(0, 0).RGBA()
	if r != 0 {
		t.Errorf("Expected black pixel, got red %d", r>>8)
	}
}
