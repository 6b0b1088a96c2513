package geometry

import (
	"github.com/dquist/go-mesh-raytracer/pkg/core"
)

// World is the ordered collection of meshes queried during a render. Meshes
// are added before the first render call and never mutated afterwards, so a
// world is safe to share read-only across render workers.
type World struct {
	meshes []*Mesh
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// Add appends a mesh to the world. The world owns the mesh from here on.
func (w *World) Add(mesh *Mesh) {
	w.meshes = append(w.meshes, mesh)
}

// MeshCount returns the number of meshes in the world
func (w *World) MeshCount() int {
	return len(w.meshes)
}

// TriangleCount returns the total number of triangles across all meshes
func (w *World) TriangleCount() int {
	total := 0
	for _, mesh := range w.meshes {
		total += mesh.TriangleCount()
	}
	return total
}

// Hit queries every mesh and returns the winning hit, using the same
// z-coordinate comparison as Mesh.Hit. Cost is linear in the total triangle
// count; there is no acceleration structure.
func (w *World) Hit(ray core.Ray) (core.Hit, bool) {
	var closest core.Hit
	found := false

	for _, mesh := range w.meshes {
		hit, ok := mesh.Hit(ray)
		if !ok {
			continue
		}
		if !found || hit.Point.Z > closest.Point.Z {
			closest = hit
			found = true
		}
	}

	return closest, found
}
