package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewPlane creates an infinite xz plane placed in the world by transform
func NewPlane(transform core.Matrix4, mat material.Material) (Shape, error) {
	return newShape(KindPlane, transform, mat)
}

// DefaultPlane returns the untransformed plane y=0 with the default material
func DefaultPlane() Shape {
	p, _ := NewPlane(core.Identity(), material.DefaultMaterial())
	return p
}

// intersectXZPlane intersects an object-space ray with y=0
func intersectXZPlane(ray core.Ray) []float64 {
	// Parallel or coplanar rays never register a hit
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// planeNormal is constant over the whole plane
func planeNormal(core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
