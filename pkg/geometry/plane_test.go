package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestPlane_NormalIsConstant(t *testing.T) {
	plane := DefaultPlane()
	for _, p := range []core.Tuple{
		core.NewPoint(0, 0, 0),
		core.NewPoint(10, 0, -10),
		core.NewPoint(-5, 0, 150),
	} {
		if n := plane.NormalAt(p); !n.ApproxEqual(core.NewVector(0, 1, 0)) {
			t.Errorf("Expected (0,1,0) at %v, got %v", p, n)
		}
	}
}

func TestPlane_Intersect(t *testing.T) {
	plane := DefaultPlane()

	tests := []struct {
		name     string
		ray      core.Ray
		expected []float64
	}{
		{"parallel", core.NewRay(core.NewPoint(0, 10, 0), core.NewVector(0, 0, 1)), nil},
		{"coplanar", core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1)), nil},
		{"from above", core.NewRay(core.NewPoint(0, 1, 0), core.NewVector(0, -1, 0)), []float64{1}},
		{"from below", core.NewRay(core.NewPoint(0, -1, 0), core.NewVector(0, 1, 0)), []float64{1}},
		{"behind origin", core.NewRay(core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0)), []float64{-1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := plane.Intersect(tt.ray)
			if len(xs) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %v", len(tt.expected), xs)
			}
			for i := range xs {
				if math.Abs(xs[i]-tt.expected[i]) > 1e-9 {
					t.Errorf("Expected t=%f, got t=%f", tt.expected[i], xs[i])
				}
			}
		})
	}
}

func TestPlane_Transformed(t *testing.T) {
	floor, err := NewPlane(core.Translation(0, -1, 0), material.DefaultMaterial())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := core.NewRay(core.NewPoint(0, 0, -3), core.NewVector(0, -math.Sqrt2/2, math.Sqrt2/2))
	xs := floor.Intersect(ray)
	if len(xs) != 1 || math.Abs(xs[0]-math.Sqrt2) > 1e-9 {
		t.Errorf("Expected single hit at sqrt(2), got %v", xs)
	}

	wall, _ := NewPlane(core.RotationX(math.Pi/2), material.DefaultMaterial())
	if n := wall.NormalAt(core.NewPoint(0, 0, 0)); !n.ApproxEqual(core.NewVector(0, 0, 1)) {
		t.Errorf("Expected rotated normal (0,0,1), got %v", n)
	}
	if wall.Kind.String() != "plane" {
		t.Errorf("Unexpected kind %s", wall.Kind)
	}
}
