package material

import (
	"math/rand"

	"github.com/dquist/go-mesh-raytracer/pkg/core"
)

// Diffuse represents a matte, Lambertian-style material
type Diffuse struct {
	albedo core.Vec3
}

// NewDiffuse creates a new diffuse material with the given base color
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{albedo: albedo}
}

// Scatter implements the Material interface for diffuse scattering. The
// bounced ray leaves the hit point toward a random point on the unit sphere
// offset from the face normal. Diffuse surfaces always scatter.
func (d *Diffuse) Scatter(rayIn core.Ray, hit core.Hit, random *rand.Rand) (core.ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(random))

	return core.ScatterResult{
		Attenuation: d.albedo,
		Scattered:   core.NewRay(hit.Point, direction),
	}, true
}

// Albedo returns the material's base color
func (d *Diffuse) Albedo() core.Vec3 {
	return d.albedo
}
