package integrator

import (
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Intersection records where a ray crosses an object
type Intersection struct {
	T      float64
	Object scene.ObjectID
	Point  core.Tuple // world-space point at T
	Normal core.Tuple // outward surface normal at Point
}

// NewIntersection builds an intersection, evaluating the point and normal at t
func NewIntersection(s *scene.Scene, id scene.ObjectID, ray core.Ray, t float64) Intersection {
	point := ray.At(t)
	return Intersection{
		T:      t,
		Object: id,
		Point:  point,
		Normal: s.Object(id).NormalAt(point),
	}
}

// IntersectScene intersects the ray with every object and returns all
// crossings sorted by ascending T, including those behind the origin.
// Equal T values keep object order.
func IntersectScene(s *scene.Scene, ray core.Ray) []Intersection {
	var xs []Intersection
	for i, shape := range s.Objects() {
		for _, t := range shape.Intersect(ray) {
			xs = append(xs, NewIntersection(s, scene.ObjectID(i), ray, t))
		}
	}

	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
	return xs
}

// HitIndex returns the index of the first intersection with T > 0 in a
// sorted list, or -1 when the ray misses
func HitIndex(xs []Intersection) int {
	for i, x := range xs {
		if x.T > 0 {
			return i
		}
	}
	return -1
}

// Hit returns the visible intersection in a sorted list
func Hit(xs []Intersection) (Intersection, bool) {
	i := HitIndex(xs)
	if i < 0 {
		return Intersection{}, false
	}
	return xs[i], true
}
