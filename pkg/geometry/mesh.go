package geometry

import (
	"math"

	"github.com/dquist/go-mesh-raytracer/pkg/core"
	"github.com/dquist/go-mesh-raytracer/pkg/material"
)

// Mesh is an ordered collection of triangles sharing one material. All
// affine edits (Translate, Scale, Rotate) happen before the mesh is added to
// a world; the render path only ever reads it.
type Mesh struct {
	Triangles []Triangle
	Material  core.Material
}

// NewMesh creates an empty mesh with a white diffuse material
func NewMesh() *Mesh {
	return &Mesh{
		Material: material.NewDiffuse(core.NewVec3(1, 1, 1)),
	}
}

// NewMeshFromTriangles creates a mesh from an existing set of triangles with
// a gray diffuse material
func NewMeshFromTriangles(triangles []Triangle) *Mesh {
	return &Mesh{
		Triangles: triangles,
		Material:  material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)),
	}
}

// Add appends a single triangle to the mesh
func (m *Mesh) Add(triangle Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Translate moves every vertex of the mesh by d
func (m *Mesh) Translate(d core.Vec3) {
	for i := range m.Triangles {
		trig := &m.Triangles[i]
		for j := range trig.Points {
			trig.Points[j] = trig.Points[j].Add(d)
		}
	}
}

// Scale scales every vertex of the mesh uniformly about the origin
func (m *Mesh) Scale(c float64) {
	for i := range m.Triangles {
		trig := &m.Triangles[i]
		for j := range trig.Points {
			trig.Points[j] = trig.Points[j].Multiply(c)
		}
	}
}

// Rotate rotates the mesh about the origin by r degrees per axis, applied in
// X, Y, Z order. Normals are re-normalized after every axis so repeated
// rotations do not drift off unit length.
func (m *Mesh) Rotate(r core.Vec3) {
	sinX, cosX := math.Sincos(r.X * math.Pi / 180)
	sinY, cosY := math.Sincos(r.Y * math.Pi / 180)
	sinZ, cosZ := math.Sincos(r.Z * math.Pi / 180)

	for i := range m.Triangles {
		trig := &m.Triangles[i]

		trig.Normal = rotateX(trig.Normal, sinX, cosX).Normalize()
		for j := range trig.Normals {
			trig.Normals[j] = rotateX(trig.Normals[j], sinX, cosX).Normalize()
		}

		trig.Normal = rotateY(trig.Normal, sinY, cosY).Normalize()
		for j := range trig.Normals {
			trig.Normals[j] = rotateY(trig.Normals[j], sinY, cosY).Normalize()
		}

		trig.Normal = rotateZ(trig.Normal, sinZ, cosZ).Normalize()
		for j := range trig.Normals {
			trig.Normals[j] = rotateZ(trig.Normals[j], sinZ, cosZ).Normalize()
		}

		for j := range trig.Points {
			p := rotateX(trig.Points[j], sinX, cosX)
			p = rotateY(p, sinY, cosY)
			trig.Points[j] = rotateZ(p, sinZ, cosZ)
		}
	}
}

// Hit scans every triangle in the mesh and returns the winning hit with the
// mesh's material stamped on it.
//
// Closeness is compared on the z coordinate of the hit point (larger z wins),
// not on the parametric distance t. This is an inherited scene convention:
// the camera looks down -z with all geometry in front of it, so the
// least-negative z correlates with the nearest surface. It is only correct
// for scenes laid out that way and is kept for compatibility; see Known
// limitations in the README.
func (m *Mesh) Hit(ray core.Ray) (core.Hit, bool) {
	var closest core.Hit
	found := false

	for i := range m.Triangles {
		hit, ok := m.Triangles[i].Hit(ray)
		if !ok {
			continue
		}
		if !found || hit.Point.Z > closest.Point.Z {
			closest = hit
			found = true
		}
	}

	if found {
		closest.Material = m.Material
	}
	return closest, found
}

// rotateX rotates v around the X axis
func rotateX(v core.Vec3, sin, cos float64) core.Vec3 {
	return core.NewVec3(v.X, v.Y*cos-v.Z*sin, v.Y*sin+v.Z*cos)
}

// rotateY rotates v around the Y axis
func rotateY(v core.Vec3, sin, cos float64) core.Vec3 {
	return core.NewVec3(v.X*cos+v.Z*sin, v.Y, -v.X*sin+v.Z*cos)
}

// rotateZ rotates v around the Z axis
func rotateZ(v core.Vec3, sin, cos float64) core.Vec3 {
	return core.NewVec3(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos, v.Z)
}
