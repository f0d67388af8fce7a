package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewSphere creates a unit sphere placed in the world by transform
func NewSphere(transform core.Matrix4, mat material.Material) (Shape, error) {
	return newShape(KindSphere, transform, mat)
}

// DefaultSphere returns an untransformed unit sphere with the default material
func DefaultSphere() Shape {
	s, _ := NewSphere(core.Identity(), material.DefaultMaterial())
	return s
}

// GlassSphere returns an untransformed unit sphere made of glass
func GlassSphere() Shape {
	s, _ := NewSphere(core.Identity(), material.Glass())
	return s
}

// intersectUnitSphere solves the ray/unit-sphere quadratic in object space
func intersectUnitSphere(ray core.Ray) []float64 {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - 1

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{
		(-halfB - sqrtD) / a,
		(-halfB + sqrtD) / a,
	}
}

// sphereNormal is the outward normal of the unit sphere
func sphereNormal(localPoint core.Tuple) core.Tuple {
	return localPoint.Subtract(core.NewPoint(0, 0, 0))
}
