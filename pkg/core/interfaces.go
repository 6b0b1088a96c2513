package core

import "math/rand"

// Hit contains information about a ray-triangle intersection. The triangle's
// shading data (vertex positions and normals) is copied onto the record so
// materials and the renderer never reach back into the owning mesh.
type Hit struct {
	T        float64  // Parameter t along the ray
	Point    Vec3     // Point of intersection
	Points   [3]Vec3  // Vertices of the hit triangle
	Normal   Vec3     // Flat face normal of the hit triangle
	Normals  [3]Vec3  // Per-vertex normals of the hit triangle
	Smooth   bool     // Whether vertex normals are authoritative for shading
	Material Material // Material of the hit mesh, stamped by the world
}

// ShadingNormal returns the normal to shade with at the hit point: the
// barycentric interpolation of the vertex normals for smooth shaded
// triangles, the flat face normal otherwise.
func (h Hit) ShadingNormal() Vec3 {
	if !h.Smooth {
		return h.Normal
	}

	weights := Barycentric(h.Point, h.Points[0], h.Points[1], h.Points[2])
	return h.Normals[0].Multiply(weights.X).
		Add(h.Normals[1].Multiply(weights.Y)).
		Add(h.Normals[2].Multiply(weights.Z)).
		Normalize()
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation Vec3 // Color attenuation applied to light carried by the bounce
	Scattered   Ray  // The outgoing bounced ray
}

// Material decides how an incoming ray interacts with a surface. Scatter
// proposes an outgoing ray and an attenuation, or returns false when the ray
// is absorbed. The random generator must be owned by the calling goroutine.
type Material interface {
	Scatter(rayIn Ray, hit Hit, random *rand.Rand) (ScatterResult, bool)
	Albedo() Vec3
}
