package integrator

import (
	"slices"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Comps is the shading state of one intersection
type Comps struct {
	T      float64
	Object scene.ObjectID

	Point      core.Tuple
	OverPoint  core.Tuple // Point moved off the surface along the normal; origin of shadow and reflection rays
	UnderPoint core.Tuple // Point moved below the surface; origin of refraction rays

	EyeVector     core.Tuple
	NormalVector  core.Tuple // faces the eye
	ReflectVector core.Tuple
	Inside        bool

	N1 float64 // refractive index of the medium being left
	N2 float64 // refractive index of the medium being entered
}

// PrepareComputations builds the shading state for hit. xs must be the full
// intersection list of ray, sorted by T, and contain hit.
func PrepareComputations(s *scene.Scene, hit Intersection, ray core.Ray, xs []Intersection) Comps {
	index := slices.Index(xs, hit)
	return prepare(s, hit, index, ray, xs)
}

// PrepareComputationsAt builds the shading state for xs[index]
func PrepareComputationsAt(s *scene.Scene, index int, ray core.Ray, xs []Intersection) Comps {
	return prepare(s, xs[index], index, ray, xs)
}

func prepare(s *scene.Scene, hit Intersection, index int, ray core.Ray, xs []Intersection) Comps {
	comps := Comps{
		T:         hit.T,
		Object:    hit.Object,
		Point:     ray.At(hit.T),
		EyeVector: ray.Direction.Negate().Normalize(),
	}

	normal := hit.Normal
	if normal.Dot(comps.EyeVector) < 0 {
		comps.Inside = true
		normal = normal.Negate()
	}
	comps.NormalVector = normal
	comps.ReflectVector = ray.Direction.Reflect(normal)

	offset := normal.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	comps.N1, comps.N2 = refractiveIndices(s, index, xs)
	return comps
}

// refractiveIndices walks the sorted list up to xs[index], tracking which
// objects the ray is currently inside. An object seen once has been entered,
// seen twice has been left.
func refractiveIndices(s *scene.Scene, index int, xs []Intersection) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	if index < 0 {
		return n1, n2
	}

	var containers []scene.ObjectID
	top := func() float64 {
		if len(containers) == 0 {
			return 1.0
		}
		return s.Object(containers[len(containers)-1]).Material.RefractiveIndex
	}

	for i, x := range xs[:index+1] {
		if i == index {
			n1 = top()
		}

		if j := slices.Index(containers, x.Object); j >= 0 {
			containers = slices.Delete(containers, j, j+1)
		} else {
			containers = append(containers, x.Object)
		}

		if i == index {
			n2 = top()
		}
	}
	return n1, n2
}
