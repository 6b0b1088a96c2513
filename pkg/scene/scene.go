// Package scene provides procedural meshes and the ready-made default scene
// so the renderer can run without model files on disk.
package scene

import (
	"github.com/dquist/go-mesh-raytracer/pkg/core"
	"github.com/dquist/go-mesh-raytracer/pkg/geometry"
	"github.com/dquist/go-mesh-raytracer/pkg/material"
)

// NewPlane returns a 2x2 ground plane in the XZ plane centered at the
// origin, facing up
func NewPlane() *geometry.Mesh {
	mesh := geometry.NewMesh()
	addQuad(mesh,
		core.NewVec3(-1, 0, 1),
		core.NewVec3(1, 0, 1),
		core.NewVec3(1, 0, -1),
		core.NewVec3(-1, 0, -1),
		core.NewVec3(0, 1, 0),
	)
	return mesh
}

// NewCube returns an axis-aligned 2x2x2 cube centered at the origin with
// outward face normals
func NewCube() *geometry.Mesh {
	mesh := geometry.NewMesh()

	// Front (+Z)
	addQuad(mesh,
		core.NewVec3(-1, -1, 1), core.NewVec3(1, -1, 1),
		core.NewVec3(1, 1, 1), core.NewVec3(-1, 1, 1),
		core.NewVec3(0, 0, 1))
	// Back (-Z)
	addQuad(mesh,
		core.NewVec3(1, -1, -1), core.NewVec3(-1, -1, -1),
		core.NewVec3(-1, 1, -1), core.NewVec3(1, 1, -1),
		core.NewVec3(0, 0, -1))
	// Right (+X)
	addQuad(mesh,
		core.NewVec3(1, -1, 1), core.NewVec3(1, -1, -1),
		core.NewVec3(1, 1, -1), core.NewVec3(1, 1, 1),
		core.NewVec3(1, 0, 0))
	// Left (-X)
	addQuad(mesh,
		core.NewVec3(-1, -1, -1), core.NewVec3(-1, -1, 1),
		core.NewVec3(-1, 1, 1), core.NewVec3(-1, 1, -1),
		core.NewVec3(-1, 0, 0))
	// Top (+Y)
	addQuad(mesh,
		core.NewVec3(-1, 1, 1), core.NewVec3(1, 1, 1),
		core.NewVec3(1, 1, -1), core.NewVec3(-1, 1, -1),
		core.NewVec3(0, 1, 0))
	// Bottom (-Y)
	addQuad(mesh,
		core.NewVec3(-1, -1, -1), core.NewVec3(1, -1, -1),
		core.NewVec3(1, -1, 1), core.NewVec3(-1, -1, 1),
		core.NewVec3(0, -1, 0))

	return mesh
}

// NewDefaultScene builds the default scene: a mirror-metal floor under a
// slightly rotated matte cube, both placed down -Z in front of the camera.
// The returned meshes are ready to hand to the render engine.
func NewDefaultScene() []*geometry.Mesh {
	floor := NewPlane()
	floor.Scale(4.0)
	floor.Translate(core.NewVec3(0, -1.4, -10))
	floor.Material = material.NewMetal(core.NewVec3(0.89, 0.4, 0.4), 0.0)

	cube := NewCube()
	cube.Rotate(core.NewVec3(0, 10, 0))
	cube.Translate(core.NewVec3(0, -0.4, -12))
	cube.Material = material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.4))

	return []*geometry.Mesh{floor, cube}
}

// addQuad appends a quad as two triangles wound to match the given normal
func addQuad(mesh *geometry.Mesh, p0, p1, p2, p3, normal core.Vec3) {
	mesh.Add(geometry.NewTriangle(p0, p1, p2, normal))
	mesh.Add(geometry.NewTriangle(p0, p2, p3, normal))
}
