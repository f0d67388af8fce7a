package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func newWhitePointLight(x, y, z float64) lights.Light {
	return lights.NewPointLight(core.NewPoint(x, y, z), core.White)
}

// NewPatternScene shows every pattern kind on a floor and three spheres
func NewPatternScene() *Scene {
	s := New()
	s.AddLight(newWhitePointLight(-10, 10, -10))

	floor := material.DefaultMaterial()
	floor.Pattern = material.NewBlendPattern(
		material.NewStripePattern(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.2, 0.3, 0.2)),
		material.NewStripePattern(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.2, 0.3, 0.2)).
			WithTransform(core.RotationY(math.Pi/2)),
	)
	floor.SetSpecular(0)
	s.AddObject(mustShape(geometry.NewPlane(core.Identity(), floor)))

	middle := material.DefaultMaterial()
	middle.Pattern = material.NewRingPattern(core.NewColor(0.1, 1, 0.5), core.NewColor(0.1, 0.4, 0.2)).
		WithTransform(core.Chain(core.Scaling(0.2, 0.2, 0.2), core.RotationX(math.Pi/3)))
	middle.SetDiffuse(0.7)
	middle.SetSpecular(0.3)
	s.AddObject(mustShape(geometry.NewSphere(core.Translation(-0.5, 1, 0.5), middle)))

	right := material.DefaultMaterial()
	right.Pattern = material.NewGradientPattern(core.NewColor(1, 0.2, 0.2), core.NewColor(0.2, 0.2, 1)).
		WithTransform(core.Chain(core.Scaling(2, 1, 1), core.Translation(-1, 0, 0)))
	s.AddObject(mustShape(geometry.NewSphere(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5)), right)))

	left := material.DefaultMaterial()
	left.Pattern = material.NewCheckerPattern(core.NewColor(1, 0.8, 0.1), core.NewColor(0.3, 0.2, 0)).
		WithTransform(core.Scaling(0.25, 0.25, 0.25))
	s.AddObject(mustShape(geometry.NewSphere(core.Chain(core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33, -0.75)), left)))

	return s
}

// NewSoftShadowScene lights a sphere on a floor with a jittered area light
func NewSoftShadowScene() *Scene {
	s := New()

	light := mustAreaLight(lights.NewAreaLight(
		core.NewPoint(-1, 2, 4),
		core.NewVector(2, 0, 0), 8,
		core.NewVector(0, 2, 0), 8,
		core.NewColor(1.5, 1.5, 1.5),
	))
	s.AddLight(light.WithJitter(core.NewSequence(0.7, 0.3, 0.9, 0.1, 0.5)))

	floor := material.DefaultMaterial()
	floor.Color = core.White
	floor.SetAmbient(0.025)
	floor.SetDiffuse(0.67)
	floor.SetSpecular(0)
	s.AddObject(mustShape(geometry.NewPlane(core.Identity(), floor)))

	ball := material.DefaultMaterial()
	ball.Color = core.NewColor(1, 0, 0)
	ball.SetAmbient(0.1)
	ball.SetSpecular(0)
	ball.SetDiffuse(0.6)
	ball.Reflectivity = 0.3
	s.AddObject(mustShape(geometry.NewSphere(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(0.5, 0.5, 0)), ball)))

	s.View = View{
		From:        core.NewPoint(-3, 1, 2.5),
		To:          core.NewPoint(0, 0.5, 0),
		Up:          core.NewVector(0, 1, 0),
		FieldOfView: 0.7854,
	}
	return s
}

// NewMirrorScene places two facing mirrors around a sphere so that
// reflections recurse until the depth budget runs out
func NewMirrorScene() *Scene {
	s := New()
	s.AddLight(newWhitePointLight(0, 5, -5))

	mirror := material.DefaultMaterial()
	mirror.Color = core.NewColor(0.1, 0.1, 0.1)
	mirror.Reflectivity = 0.9
	mirror.SetSpecular(1)
	s.AddObject(mustShape(geometry.NewPlane(core.Chain(core.RotationZ(math.Pi/2), core.Translation(-3, 0, 0)), mirror)))
	s.AddObject(mustShape(geometry.NewPlane(core.Chain(core.RotationZ(math.Pi/2), core.Translation(3, 0, 0)), mirror)))

	floor := material.DefaultMaterial()
	floor.Pattern = material.NewCheckerPattern(core.White, core.NewColor(0.2, 0.2, 0.2))
	s.AddObject(mustShape(geometry.NewPlane(core.Translation(0, -1, 0), floor)))

	ball := material.DefaultMaterial()
	ball.Color = core.NewColor(0.2, 0.4, 1)
	ball.SetDiffuse(0.7)
	ball.SetSpecular(0.5)
	s.AddObject(mustShape(geometry.NewSphere(core.Identity(), ball)))

	s.View = View{
		From:        core.NewPoint(-1, 1.5, -6),
		To:          core.NewPoint(0.5, 0, 0),
		Up:          core.NewVector(0, 1, 0),
		FieldOfView: math.Pi / 3,
	}
	return s
}
