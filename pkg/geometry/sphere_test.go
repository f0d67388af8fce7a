package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestSphere_Intersect(t *testing.T) {
	sphere := DefaultSphere()

	tests := []struct {
		name     string
		ray      core.Ray
		expected []float64
	}{
		{
			name:     "two points",
			ray:      core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1)),
			expected: []float64{4, 6},
		},
		{
			name:     "tangent",
			ray:      core.NewRay(core.NewPoint(0, 1, -5), core.NewVector(0, 0, 1)),
			expected: []float64{5, 5},
		},
		{
			name:     "miss",
			ray:      core.NewRay(core.NewPoint(0, 2, -5), core.NewVector(0, 0, 1)),
			expected: nil,
		},
		{
			name:     "origin inside",
			ray:      core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1)),
			expected: []float64{-1, 1},
		},
		{
			name:     "sphere behind ray",
			ray:      core.NewRay(core.NewPoint(0, 0, 5), core.NewVector(0, 0, 1)),
			expected: []float64{-6, -4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := sphere.Intersect(tt.ray)
			if len(xs) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expected), len(xs))
			}
			for i := range xs {
				if math.Abs(xs[i]-tt.expected[i]) > 1e-9 {
					t.Errorf("Intersection %d: expected t=%f, got t=%f", i, tt.expected[i], xs[i])
				}
			}
		})
	}
}

func TestSphere_IntersectTransformed(t *testing.T) {
	scaled, err := NewSphere(core.Scaling(2, 2, 2), material.DefaultMaterial())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	xs := scaled.Intersect(ray)
	if len(xs) != 2 || math.Abs(xs[0]-3) > 1e-9 || math.Abs(xs[1]-7) > 1e-9 {
		t.Errorf("Expected [3 7], got %v", xs)
	}

	translated, err := NewSphere(core.Translation(5, 0, 0), material.DefaultMaterial())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if xs := translated.Intersect(ray); len(xs) != 0 {
		t.Errorf("Expected miss, got %v", xs)
	}
}

func TestSphere_NormalAt(t *testing.T) {
	s3 := math.Sqrt(3) / 3

	translated, _ := NewSphere(core.Translation(0, 1, 0), material.DefaultMaterial())
	transformed, _ := NewSphere(core.Scaling(1, 0.5, 1).Multiply(core.RotationZ(math.Pi/5)), material.DefaultMaterial())

	tests := []struct {
		name     string
		shape    Shape
		point    core.Tuple
		expected core.Tuple
	}{
		{"x axis", DefaultSphere(), core.NewPoint(1, 0, 0), core.NewVector(1, 0, 0)},
		{"y axis", DefaultSphere(), core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0)},
		{"nonaxial", DefaultSphere(), core.NewPoint(s3, s3, s3), core.NewVector(s3, s3, s3)},
		{"translated", translated, core.NewPoint(0, 1.70711, -0.70711), core.NewVector(0, 0.70711, -0.70711)},
		{"scaled and rotated", transformed, core.NewPoint(0, math.Sqrt2/2, -math.Sqrt2/2), core.NewVector(0, 0.97014, -0.24254)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.shape.NormalAt(tt.point)
			if !n.ApproxEqual(tt.expected) {
				t.Errorf("Expected normal %v, got %v", tt.expected, n)
			}
			if !n.IsVector() {
				t.Errorf("Expected a vector, got w=%f", n.W)
			}
		})
	}
}

func TestNewShape_SingularTransform(t *testing.T) {
	_, err := NewSphere(core.Scaling(1, 0, 1), material.DefaultMaterial())
	if !errors.Is(err, ErrSingularTransform) {
		t.Errorf("Expected ErrSingularTransform, got %v", err)
	}

	mirrored, err := NewSphere(core.Scaling(-1, 1, 1), material.DefaultMaterial())
	if err != nil {
		t.Fatalf("Expected mirror transform to be accepted, got %v", err)
	}
	if mirrored.Kind.String() != "sphere" {
		t.Errorf("Unexpected kind %s", mirrored.Kind)
	}
}

func TestGlassSphere(t *testing.T) {
	s := GlassSphere()
	if s.Transform() != core.Identity() {
		t.Error("Expected identity transform")
	}
	if s.Material.Transparency != 1.0 || s.Material.RefractiveIndex != 1.5 {
		t.Errorf("Unexpected glass material %+v", s.Material)
	}
}
