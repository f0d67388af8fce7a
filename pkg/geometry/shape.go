package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ErrSingularTransform is returned when a shape transform cannot be inverted
var ErrSingularTransform = errors.New("shape transform is not invertible")

// Kind identifies the surface equation of a Shape
type Kind int

const (
	KindSphere Kind = iota // unit sphere at the origin
	KindPlane              // xz plane through the origin
)

// String returns the shape kind name
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Shape is a transformed primitive with a material. Shapes are values and are
// only read during rendering.
type Shape struct {
	Kind     Kind
	Material material.Material

	transform core.Matrix4
	inverse   core.Matrix4
	// inverse transpose, maps object normals to world space
	normalMatrix core.Matrix4
}

func newShape(kind Kind, transform core.Matrix4, mat material.Material) (Shape, error) {
	inv, ok := transform.Inverse()
	if !ok {
		return Shape{}, fmt.Errorf("%s: %w", kind, ErrSingularTransform)
	}
	return Shape{
		Kind:         kind,
		Material:     mat,
		transform:    transform,
		inverse:      inv,
		normalMatrix: inv.Transpose(),
	}, nil
}

// Transform returns the object-to-world transform
func (s Shape) Transform() core.Matrix4 {
	return s.transform
}

// Inverse returns the cached world-to-object transform
func (s Shape) Inverse() core.Matrix4 {
	return s.inverse
}

// Intersect returns the ray parameters at which a world-space ray crosses
// the shape, in no particular order. Negative values are included.
func (s Shape) Intersect(ray core.Ray) []float64 {
	local := ray.Transform(s.inverse)
	switch s.Kind {
	case KindSphere:
		return intersectUnitSphere(local)
	case KindPlane:
		return intersectXZPlane(local)
	default:
		return nil
	}
}

// NormalAt returns the unit world-space surface normal at a world point
func (s Shape) NormalAt(worldPoint core.Tuple) core.Tuple {
	localPoint := s.inverse.MultiplyTuple(worldPoint)

	var localNormal core.Tuple
	switch s.Kind {
	case KindSphere:
		localNormal = sphereNormal(localPoint)
	case KindPlane:
		localNormal = planeNormal(localPoint)
	}

	worldNormal := s.normalMatrix.MultiplyTuple(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}

// SurfaceColor returns the material or pattern color at a world point
func (s Shape) SurfaceColor(worldPoint core.Tuple) core.Color {
	return s.Material.SurfaceColor(s.inverse, worldPoint)
}
