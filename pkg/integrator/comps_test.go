package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func mustSphere(t *testing.T, transform core.Matrix4, mat material.Material) geometry.Shape {
	t.Helper()
	s, err := geometry.NewSphere(transform, mat)
	if err != nil {
		t.Fatalf("Unexpected error creating sphere: %v", err)
	}
	return s
}

func mustPlane(t *testing.T, transform core.Matrix4, mat material.Material) geometry.Shape {
	t.Helper()
	p, err := geometry.NewPlane(transform, mat)
	if err != nil {
		t.Fatalf("Unexpected error creating plane: %v", err)
	}
	return p
}

func TestPrepareComputations_Outside(t *testing.T) {
	s := scene.New()
	id := s.AddObject(geometry.DefaultSphere())
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	hit := NewIntersection(s, id, ray, 4)

	comps := PrepareComputations(s, hit, ray, []Intersection{hit})

	if comps.T != 4 || comps.Object != id {
		t.Errorf("Expected t=4 on object %d, got t=%f on %d", id, comps.T, comps.Object)
	}
	if !comps.Point.ApproxEqual(core.NewPoint(0, 0, -1)) {
		t.Errorf("Unexpected point %v", comps.Point)
	}
	if !comps.EyeVector.ApproxEqual(core.NewVector(0, 0, -1)) {
		t.Errorf("Unexpected eye vector %v", comps.EyeVector)
	}
	if !comps.NormalVector.ApproxEqual(core.NewVector(0, 0, -1)) {
		t.Errorf("Unexpected normal %v", comps.NormalVector)
	}
	if comps.Inside {
		t.Error("Expected hit from outside")
	}
}

func TestPrepareComputations_Inside(t *testing.T) {
	s := scene.New()
	id := s.AddObject(geometry.DefaultSphere())
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	hit := NewIntersection(s, id, ray, 1)

	comps := PrepareComputations(s, hit, ray, []Intersection{hit})

	if !comps.Point.ApproxEqual(core.NewPoint(0, 0, 1)) {
		t.Errorf("Unexpected point %v", comps.Point)
	}
	if !comps.EyeVector.ApproxEqual(core.NewVector(0, 0, -1)) {
		t.Errorf("Unexpected eye vector %v", comps.EyeVector)
	}
	if !comps.Inside {
		t.Error("Expected hit from inside")
	}
	// Normal would have been (0, 0, 1) but is inverted to face the eye
	if !comps.NormalVector.ApproxEqual(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected flipped normal, got %v", comps.NormalVector)
	}
}

func TestPrepareComputations_ReflectVector(t *testing.T) {
	s := scene.New()
	id := s.AddObject(geometry.DefaultPlane())
	ray := core.NewRay(core.NewPoint(0, 1, -1), core.NewVector(0, -math.Sqrt2/2, math.Sqrt2/2))
	hit := NewIntersection(s, id, ray, math.Sqrt2)

	comps := PrepareComputations(s, hit, ray, []Intersection{hit})

	expected := core.NewVector(0, math.Sqrt2/2, math.Sqrt2/2)
	if !comps.ReflectVector.ApproxEqual(expected) {
		t.Errorf("Expected reflect vector %v, got %v", expected, comps.ReflectVector)
	}
}

func TestPrepareComputations_OverPoint(t *testing.T) {
	s := scene.New()
	id := s.AddObject(mustSphere(t, core.Translation(0, 0, 1), material.DefaultMaterial()))
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	hit := NewIntersection(s, id, ray, 5)

	comps := PrepareComputations(s, hit, ray, []Intersection{hit})

	if comps.OverPoint.Z >= -core.Epsilon/2 {
		t.Errorf("Expected over point above the surface, got z=%g", comps.OverPoint.Z)
	}
	if comps.Point.Z <= comps.OverPoint.Z {
		t.Errorf("Expected point z %g > over point z %g", comps.Point.Z, comps.OverPoint.Z)
	}
	if comps.OverPoint.X != comps.Point.X || comps.OverPoint.Y != comps.Point.Y {
		t.Errorf("Over point should only move along the normal: %v vs %v", comps.OverPoint, comps.Point)
	}
}

func TestPrepareComputations_UnderPoint(t *testing.T) {
	s := scene.New()
	id := s.AddObject(mustSphere(t, core.Translation(0, 0, 1), material.Glass()))
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	hit := NewIntersection(s, id, ray, 5)

	comps := PrepareComputations(s, hit, ray, []Intersection{hit})

	if comps.UnderPoint.Z <= core.Epsilon/2 {
		t.Errorf("Expected under point below the surface, got z=%g", comps.UnderPoint.Z)
	}
	if comps.Point.Z >= comps.UnderPoint.Z {
		t.Errorf("Expected point z %g < under point z %g", comps.Point.Z, comps.UnderPoint.Z)
	}
	overOffset := comps.OverPoint.Subtract(comps.Point)
	underOffset := comps.UnderPoint.Subtract(comps.Point)
	if !overOffset.ApproxEqual(underOffset.Negate()) {
		t.Errorf("Over and under offsets should be opposite: %v vs %v", overOffset, underOffset)
	}
}

func TestPrepareComputations_RefractiveIndices(t *testing.T) {
	a := material.Glass()
	a.RefractiveIndex = 1.5
	b := material.Glass()
	b.RefractiveIndex = 2.0
	c := material.Glass()
	c.RefractiveIndex = 2.5

	s := scene.New()
	s.AddObject(mustSphere(t, core.Scaling(2, 2, 2), a))
	s.AddObject(mustSphere(t, core.Translation(0, 0, -0.25), b))
	s.AddObject(mustSphere(t, core.Translation(0, 0, 0.25), c))

	ray := core.NewRay(core.NewPoint(0, 0, -4), core.NewVector(0, 0, 1))
	xs := IntersectScene(s, ray)

	expected := []struct {
		t      float64
		n1, n2 float64
	}{
		{2, 1.0, 1.5},
		{2.75, 1.5, 2.0},
		{3.25, 2.0, 2.5},
		{4.75, 2.5, 2.5},
		{5.25, 2.5, 1.5},
		{6, 1.5, 1.0},
	}
	if len(xs) != len(expected) {
		t.Fatalf("Expected %d intersections, got %d", len(expected), len(xs))
	}

	for i, want := range expected {
		if math.Abs(xs[i].T-want.t) > 1e-9 {
			t.Fatalf("Intersection %d: expected t=%f, got %f", i, want.t, xs[i].T)
		}

		comps := PrepareComputationsAt(s, i, ray, xs)
		if comps.N1 != want.n1 || comps.N2 != want.n2 {
			t.Errorf("Intersection %d: expected (n1,n2)=(%.1f,%.1f), got (%.1f,%.1f)", i, want.n1, want.n2, comps.N1, comps.N2)
		}

		byValue := PrepareComputations(s, xs[i], ray, xs)
		if byValue != comps {
			t.Errorf("Intersection %d: PrepareComputations and PrepareComputationsAt disagree", i)
		}
	}
}

func TestPrepareComputations_VacuumWhenAlone(t *testing.T) {
	s := scene.New()
	id := s.AddObject(geometry.DefaultSphere())
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	xs := IntersectScene(s, ray)

	entry := PrepareComputationsAt(s, 0, ray, xs)
	if entry.Object != id || entry.N1 != 1.0 || entry.N2 != 1.0 {
		t.Errorf("Expected vacuum indices for default material, got (%f,%f)", entry.N1, entry.N2)
	}
}
