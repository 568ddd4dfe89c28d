package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material. Fuzzness is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: core.Clamp(fuzzness, 0.0, 1.0)}
}

// Scatter implements the Material interface for metal scattering. Metal always
// scatters, including fuzzed rays that leave below the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzzness))
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, reflected, rayIn.Time),
		Attenuation: m.Albedo,
	}, true
}
