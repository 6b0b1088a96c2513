package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/dquist/go-mesh-raytracer/pkg/core"
	"github.com/dquist/go-mesh-raytracer/pkg/geometry"
)

// LoadGLB loads a glTF or binary glTF (.glb) file into a single mesh with a
// default material. All triangle primitives of all meshes in the document
// are flattened together. When smooth is true and the primitive carries
// per-vertex normals, those normals are kept for smooth shading.
func LoadGLB(path string, smooth bool) (*geometry.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	var triangles []geometry.Triangle
	for _, m := range doc.Meshes {
		trigs, err := gltfTriangles(doc, m, smooth)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
		triangles = append(triangles, trigs...)
	}

	return geometry.NewMeshFromTriangles(triangles), nil
}

// gltfTriangles extracts the triangles of every triangle primitive in m
func gltfTriangles(doc *gltf.Document, m *gltf.Mesh, smooth bool) ([]geometry.Triangle, error) {
	var triangles []geometry.Triangle

	for _, prim := range m.Primitives {
		// Lines and points cannot be ray traced
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("read positions: %w", err)
		}

		var normals [][3]float32
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("read normals: %w", err)
			}
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("read indices: %w", err)
			}
		} else {
			// Non-indexed geometry: sequential triangles
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
			if int(i0) >= len(positions) || int(i1) >= len(positions) || int(i2) >= len(positions) {
				return nil, fmt.Errorf("vertex index out of range")
			}

			p0 := toVec3(positions[i0])
			p1 := toVec3(positions[i1])
			p2 := toVec3(positions[i2])

			var n0, n1, n2 core.Vec3
			if len(normals) == len(positions) {
				n0 = toVec3(normals[i0])
				n1 = toVec3(normals[i1])
				n2 = toVec3(normals[i2])
			} else {
				// No normals in the file: flat normal from the winding
				n := p1.Subtract(p0).Cross(p2.Subtract(p0)).Normalize()
				n0, n1, n2 = n, n, n
			}

			trig := geometry.NewTriangle(p0, p1, p2, n0)
			if smooth {
				trig.Smooth = true
				trig.Normals = [3]core.Vec3{n0, n1, n2}
			}
			triangles = append(triangles, trig)
		}
	}

	return triangles, nil
}

// toVec3 converts a glTF float32 triple to a Vec3
func toVec3(v [3]float32) core.Vec3 {
	return core.NewVec3(float64(v[0]), float64(v[1]), float64(v[2]))
}
