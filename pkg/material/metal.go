package material

import (
	"math/rand"

	"github.com/dquist/go-mesh-raytracer/pkg/core"
)

// Metal represents a reflective material with optional fuzzy reflections
type Metal struct {
	albedo core.Vec3
	fuzz   float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{albedo: albedo, fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering. The
// incoming direction is mirrored about the face normal and perturbed by the
// fuzz factor. A reflection that ends up at or below the surface counts as
// absorption, not scatter.
func (m *Metal) Scatter(rayIn core.Ray, hit core.Hit, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := reflect(rayIn.Direction, hit.Normal)

	if m.fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(random).Multiply(m.fuzz))
	}

	scattered := core.NewRay(hit.Point, reflected)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Attenuation: m.albedo,
		Scattered:   scattered,
	}, true
}

// Albedo returns the material's base color
func (m *Metal) Albedo() core.Vec3 {
	return m.albedo
}

// reflect mirrors a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
