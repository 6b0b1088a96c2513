package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dquist/go-mesh-raytracer/pkg/core"
	"github.com/dquist/go-mesh-raytracer/pkg/geometry"
)

// LoadOBJ loads a Wavefront OBJ file into a mesh with a default material.
// When smooth is true the three vertex normals of each face are kept for
// smooth shading; otherwise only the flat face normal is used.
func LoadOBJ(path string, smooth bool) (*geometry.Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh file: %w", err)
	}
	defer file.Close()

	mesh, err := ReadOBJ(file, smooth)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return mesh, nil
}

// ReadOBJ parses OBJ records from r. Supported records are v (vertex), vn
// (vertex normal) and f (triangular face with v/t/n or v//n references,
// 1-based); everything else is skipped.
func ReadOBJ(r io.Reader, smooth bool) (*geometry.Mesh, error) {
	var vertices []core.Vec3
	var normals []core.Vec3
	var triangles []geometry.Triangle

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}

		switch words[0] {
		case "v":
			vertex, err := parseVec3(words)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			vertices = append(vertices, vertex)

		case "vn":
			normal, err := parseVec3(words)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			normals = append(normals, normal)

		case "f":
			if len(words) < 4 {
				return nil, fmt.Errorf("line %d: face needs three vertex references", lineNum)
			}

			var points [3]core.Vec3
			var faceNormals [3]core.Vec3
			for i := 0; i < 3; i++ {
				p, n, err := parseFaceVertex(words[i+1])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				if p < 1 || p > len(vertices) {
					return nil, fmt.Errorf("line %d: vertex index %d out of range", lineNum, p)
				}
				if n < 1 || n > len(normals) {
					return nil, fmt.Errorf("line %d: normal index %d out of range", lineNum, n)
				}
				points[i] = vertices[p-1]
				faceNormals[i] = normals[n-1]
			}

			// The face normal is the normal referenced by the first vertex
			trig := geometry.NewTriangle(points[0], points[1], points[2], faceNormals[0])
			if smooth {
				trig.Smooth = true
				trig.Normals = faceNormals
			}
			triangles = append(triangles, trig)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read mesh data: %w", err)
	}

	return geometry.NewMeshFromTriangles(triangles), nil
}

// parseVec3 parses the three float components of a v or vn record
func parseVec3(words []string) (core.Vec3, error) {
	if len(words) < 4 {
		return core.Vec3{}, fmt.Errorf("%s record needs three components", words[0])
	}

	var components [3]float64
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseFloat(words[i+1], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("parse %s component: %w", words[0], err)
		}
		components[i] = value
	}

	return core.NewVec3(components[0], components[1], components[2]), nil
}

// parseFaceVertex parses one v/t/n or v//n face reference and returns the
// 1-based position and normal indices
func parseFaceVertex(word string) (int, int, error) {
	parts := strings.Split(word, "/")
	if len(parts) < 3 {
		return 0, 0, fmt.Errorf("face vertex %q has no normal reference", word)
	}

	p, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parse vertex index: %w", err)
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, fmt.Errorf("parse normal index: %w", err)
	}

	return p, n, nil
}
