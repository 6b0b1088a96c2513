package geometry

import (
	"github.com/dquist/go-mesh-raytracer/pkg/core"
)

// epsilon rejects near-parallel rays and intersections at or behind the ray origin
const epsilon = 1e-7

// Triangle represents a single triangle with a flat face normal and optional
// per-vertex normals for smooth shading. Vertices are wound consistently so
// the face normal points out of the intended front side.
type Triangle struct {
	Points  [3]core.Vec3 // The three vertices
	Normal  core.Vec3    // Flat face normal
	Normals [3]core.Vec3 // Per-vertex normals, only meaningful when Smooth
	Smooth  bool         // Whether vertex normals are authoritative for shading
}

// NewTriangle creates a flat-shaded triangle from three vertices and its
// outward face normal
func NewTriangle(p0, p1, p2, normal core.Vec3) Triangle {
	return Triangle{
		Points: [3]core.Vec3{p0, p1, p2},
		Normal: normal,
	}
}

// Hit tests if a ray intersects the triangle using the Möller–Trumbore
// algorithm. Rays parallel to the triangle plane and intersections at or
// behind the ray origin report no hit. The test is pure: identical inputs
// always produce identical results.
func (t Triangle) Hit(ray core.Ray) (core.Hit, bool) {
	// Calculate two edge vectors
	edge1 := t.Points[1].Subtract(t.Points[0])
	edge2 := t.Points[2].Subtract(t.Points[0])

	// Calculate determinant
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If the determinant is near zero, the ray lies in the triangle plane
	if a > -epsilon && a < epsilon {
		return core.Hit{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.Points[0])
	u := f * s.Dot(h)

	// Check if the intersection is outside the triangle
	if u < 0.0 || u > 1.0 {
		return core.Hit{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.Hit{}, false
	}

	// Calculate parametric distance along the ray
	tParam := f * edge2.Dot(q)
	if tParam <= epsilon {
		return core.Hit{}, false
	}

	// Material assignment is left to the owning mesh
	return core.Hit{
		T:       tParam,
		Point:   ray.At(tParam),
		Points:  t.Points,
		Normal:  t.Normal,
		Normals: t.Normals,
		Smooth:  t.Smooth,
	}, true
}
