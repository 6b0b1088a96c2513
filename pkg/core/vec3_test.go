package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); got != NewVec3(5, -3, 9) {
		t.Errorf("Add: expected (5,-3,9), got %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(-3, 7, -3) {
		t.Errorf("Subtract: expected (-3,7,-3), got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, -10, 18) {
		t.Errorf("MultiplyVec: expected (4,-10,18), got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: expected 12, got %v", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{
			name:     "X cross Y is Z",
			a:        NewVec3(1, 0, 0),
			b:        NewVec3(0, 1, 0),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "Y cross Z is X",
			a:        NewVec3(0, 1, 0),
			b:        NewVec3(0, 0, 1),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "Parallel vectors give zero",
			a:        NewVec3(2, 2, 2),
			b:        NewVec3(4, 4, 4),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit length, got %v", v.Length())
	}
	if v.Subtract(NewVec3(0.6, 0.8, 0)).Length() > 1e-9 {
		t.Errorf("Expected (0.6,0.8,0), got %v", v)
	}

	// Zero vector stays zero instead of producing NaN
	if got := NewVec3(0, 0, 0).Normalize(); got != NewVec3(0, 0, 0) {
		t.Errorf("Expected zero vector, got %v", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1))

	if got := ray.At(0); got != NewVec3(1, 2, 3) {
		t.Errorf("At(0): expected origin, got %v", got)
	}
	if got := ray.At(2.5); got != NewVec3(1, 2, 0.5) {
		t.Errorf("At(2.5): expected (1,2,0.5), got %v", got)
	}
}

func TestRandomUnitVector(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit length, got %v for %v", v.Length(), v)
		}
	}
}

func TestBarycentric(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(1, 0, 0)
	c := NewVec3(0, 1, 0)

	tests := []struct {
		name     string
		point    Vec3
		expected Vec3
	}{
		{
			name:     "First vertex",
			point:    a,
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "Second vertex",
			point:    b,
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "Third vertex",
			point:    c,
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "Centroid",
			point:    NewVec3(1.0/3.0, 1.0/3.0, 0),
			expected: NewVec3(1.0/3.0, 1.0/3.0, 1.0/3.0),
		},
		{
			name:     "Edge midpoint",
			point:    NewVec3(0.5, 0.5, 0),
			expected: NewVec3(0, 0.5, 0.5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Barycentric(tt.point, a, b, c)

			const tolerance = 1e-9
			if got.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestHit_ShadingNormal(t *testing.T) {
	flatNormal := NewVec3(0, 0, 1)
	hit := Hit{
		Point:   NewVec3(0.5, 0.5, 0),
		Points:  [3]Vec3{NewVec3(0, 0, 0), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		Normal:  flatNormal,
		Normals: [3]Vec3{NewVec3(1, 0, 0), NewVec3(0, 0, 1), NewVec3(0, 0, 1)},
	}

	// Flat shading returns the face normal untouched
	if got := hit.ShadingNormal(); got != flatNormal {
		t.Errorf("Expected face normal %v, got %v", flatNormal, got)
	}

	// Smooth shading interpolates vertex normals with barycentric weights.
	// The hit point is the midpoint of the edge between the second and third
	// vertices, which share the same normal.
	hit.Smooth = true
	expected := NewVec3(0, 0, 1)
	if got := hit.ShadingNormal(); got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	// At the first vertex the interpolation collapses to its normal
	hit.Point = hit.Points[0]
	expected = NewVec3(1, 0, 0)
	if got := hit.ShadingNormal(); got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
