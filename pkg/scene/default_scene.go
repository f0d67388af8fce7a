package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates the reference scene: a white point light at
// (-10, 10, -10), a unit sphere with a green-yellow material and a
// half-size default sphere inside it
func NewDefaultScene() *Scene {
	s := New()
	s.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	outer := material.DefaultMaterial()
	outer.Color = core.NewColor(0.8, 1.0, 0.6)
	outer.SetDiffuse(0.7)
	outer.SetSpecular(0.2)

	s.AddObject(mustShape(geometry.NewSphere(core.Identity(), outer)))
	s.AddObject(mustShape(geometry.NewSphere(core.Scaling(0.5, 0.5, 0.5), material.DefaultMaterial())))

	return s
}

// mustShape unwraps shape constructors for transforms known to be invertible
func mustShape(shape geometry.Shape, err error) geometry.Shape {
	if err != nil {
		panic(err)
	}
	return shape
}

func mustAreaLight(light lights.Light, err error) lights.Light {
	if err != nil {
		panic(err)
	}
	return light
}
