package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// IsShadowed reports whether a shadow-casting object lies strictly between
// point and lightPosition. Callers pass an over point so the originating
// surface is not counted.
func IsShadowed(s *scene.Scene, lightPosition, point core.Tuple) bool {
	toLight := lightPosition.Subtract(point)
	distance := toLight.Length()
	ray := core.NewRay(point, toLight.Normalize())

	for _, shape := range s.Objects() {
		if !shape.Material.CastsShadows {
			continue
		}
		for _, t := range shape.Intersect(ray) {
			if t > 0 && t < distance {
				return true
			}
		}
	}
	return false
}
