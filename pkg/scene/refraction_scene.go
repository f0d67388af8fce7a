package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewRefractionScene extends the default scene with a half-transparent floor
// at y=-1 and a red ball below it, seen through the floor
func NewRefractionScene() *Scene {
	s := NewDefaultScene()

	floorMaterial := material.DefaultMaterial()
	floorMaterial.Transparency = 0.5
	floorMaterial.RefractiveIndex = 1.5
	s.AddObject(mustShape(geometry.NewPlane(core.Translation(0, -1, 0), floorMaterial)))

	ballMaterial := material.DefaultMaterial()
	ballMaterial.Color = core.NewColor(1, 0, 0)
	ballMaterial.SetAmbient(0.5)
	s.AddObject(mustShape(geometry.NewSphere(core.Translation(0, -3.5, -0.5), ballMaterial)))

	s.View = View{
		From:        core.NewPoint(0, 0, -3),
		To:          core.NewPoint(0, -1, -2),
		Up:          core.NewVector(0, 1, 0),
		FieldOfView: 1.2,
	}
	return s
}

// NewGlassScene renders a hollow glass sphere (glass shell around an air
// bubble) in front of a checkered wall, above a reflective floor
func NewGlassScene() *Scene {
	s := New()
	s.AddLight(newWhitePointLight(-4.9, 4.9, -1))

	wall := material.DefaultMaterial()
	wall.Pattern = material.NewCheckerPattern(core.NewColor(0.15, 0.15, 0.15), core.NewColor(0.85, 0.85, 0.85)).
		WithTransform(core.Scaling(0.5, 0.5, 0.5))
	wall.SetAmbient(0.8)
	wall.SetDiffuse(0.2)
	wall.SetSpecular(0)
	s.AddObject(mustShape(geometry.NewPlane(core.Chain(core.RotationX(1.5707963267948966), core.Translation(0, 0, 10)), wall)))

	floor := material.DefaultMaterial()
	floor.Color = core.NewColor(0.4, 0.4, 0.45)
	floor.Reflectivity = 0.3
	s.AddObject(mustShape(geometry.NewPlane(core.Translation(0, -1, 0), floor)))

	shell := material.Glass()
	shell.Color = core.White
	shell.SetAmbient(0)
	shell.SetDiffuse(0)
	shell.SetSpecular(0.9)
	shell.SetShininess(300)
	shell.Reflectivity = 0.9
	shell.CastsShadows = false
	s.AddObject(mustShape(geometry.NewSphere(core.Identity(), shell)))

	bubble := shell
	bubble.RefractiveIndex = 1.0000034
	s.AddObject(mustShape(geometry.NewSphere(core.Scaling(0.5, 0.5, 0.5), bubble)))

	s.View = View{
		From:        core.NewPoint(0, 0.5, -5),
		To:          core.NewPoint(0, 0, 0),
		Up:          core.NewVector(0, 1, 0),
		FieldOfView: 0.6,
	}
	return s
}
