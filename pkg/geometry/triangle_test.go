package geometry

import (
	"math"
	"testing"

	"github.com/dquist/go-mesh-raytracer/pkg/core"
)

func TestTriangle_Hit(t *testing.T) {
	// Triangle in the XY plane facing +Z
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
	)

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		expectedT float64
	}{
		{
			name: "Ray hits triangle interior",
			ray: core.NewRay(
				core.NewVec3(0.25, 0.25, -1),
				core.NewVec3(0, 0, 1),
			),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name: "Ray hits at an angle",
			ray: core.NewRay(
				core.NewVec3(0.25, 0.25, -3),
				core.NewVec3(0, 0, 0.5),
			),
			shouldHit: true,
			expectedT: 6.0,
		},
		{
			name: "Ray misses triangle",
			ray: core.NewRay(
				core.NewVec3(1, 1, -1),
				core.NewVec3(0, 0, 1),
			),
			shouldHit: false,
		},
		{
			name: "Ray parallel to triangle plane",
			ray: core.NewRay(
				core.NewVec3(0.25, 0.25, -1),
				core.NewVec3(1, 0, 0),
			),
			shouldHit: false,
		},
		{
			name: "Ray parallel within epsilon",
			ray: core.NewRay(
				core.NewVec3(0.25, 0.25, -1),
				core.NewVec3(1, 0, 1e-9),
			),
			shouldHit: false,
		},
		{
			name: "Intersection behind ray origin",
			ray: core.NewRay(
				core.NewVec3(0.25, 0.25, 1),
				core.NewVec3(0, 0, 1),
			),
			shouldHit: false,
		},
		{
			name: "Intersection at ray origin",
			ray: core.NewRay(
				core.NewVec3(0.25, 0.25, 0),
				core.NewVec3(0, 0, 1),
			),
			shouldHit: false,
		},
		{
			name: "Barycentric u out of range",
			ray: core.NewRay(
				core.NewVec3(1.1, 0.25, -1),
				core.NewVec3(0, 0, 1),
			),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := triangle.Hit(tt.ray)

			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, isHit)
			}
			if !tt.shouldHit {
				return
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-6 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			// Hit point must match ray.At(t)
			expectedPoint := tt.ray.At(hit.T)
			if expectedPoint.Subtract(hit.Point).Length() > 1e-6 {
				t.Errorf("Hit point mismatch: expected %v, got %v", expectedPoint, hit.Point)
			}
		})
	}
}

func TestTriangle_HitCarriesShadingData(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
	)
	triangle.Smooth = true
	triangle.Normals = [3]core.Vec3{
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 1, 0),
		core.NewVec3(1, 0, 0),
	}

	ray := core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1))
	hit, isHit := triangle.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit")
	}

	if hit.Points != triangle.Points {
		t.Errorf("Expected points %v, got %v", triangle.Points, hit.Points)
	}
	if hit.Normal != triangle.Normal {
		t.Errorf("Expected normal %v, got %v", triangle.Normal, hit.Normal)
	}
	if hit.Normals != triangle.Normals {
		t.Errorf("Expected normals %v, got %v", triangle.Normals, hit.Normals)
	}
	if !hit.Smooth {
		t.Error("Expected smooth flag to carry over")
	}
	if hit.Material != nil {
		t.Error("Material assignment belongs to the owning mesh")
	}
}

func TestTriangle_HitIsDeterministic(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(-1, -1, -5),
		core.NewVec3(1, -1, -5),
		core.NewVec3(0, 1, -5),
		core.NewVec3(0, 0, 1),
	)
	ray := core.NewRay(core.NewVec3(0.1, 0.2, 0), core.NewVec3(-0.02, 0.01, -1))

	first, firstHit := triangle.Hit(ray)
	for i := 0; i < 10; i++ {
		hit, isHit := triangle.Hit(ray)
		if isHit != firstHit || hit != first {
			t.Fatal("Identical inputs must produce identical hits")
		}
	}
}
