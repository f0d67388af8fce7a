package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// SceneLighting returns the local Phong color at comps: ambient and
// environment terms once, plus the direct contribution of every light
func SceneLighting(s *scene.Scene, comps Comps) core.Color {
	object := s.Object(comps.Object)
	mat := object.Material
	surface := object.SurfaceColor(comps.Point)

	color := AmbientColor(mat, surface)
	for _, light := range s.Lights() {
		color = color.Add(DirectLighting(s, light, mat, surface, comps))
	}
	return color
}

// AmbientColor is the fill light of a surface. It ignores lights and shadows.
func AmbientColor(mat material.Material, surface core.Color) core.Color {
	return surface.Multiply(mat.Ambient).Add(surface.Multiply(mat.EnvironmentLighting))
}

// DirectLighting averages the diffuse and specular contribution of every
// sample point of light. Samples that are shadowed contribute nothing, so a
// partly occluded area light gives a partial result.
func DirectLighting(s *scene.Scene, light lights.Light, mat material.Material, surface core.Color, comps Comps) core.Color {
	samples := light.SamplePoints()

	sum := core.Black
	for _, position := range samples {
		if IsShadowed(s, position, comps.OverPoint) {
			continue
		}
		sum = sum.Add(Phong(mat, surface, light.Intensity, position, comps.Point, comps.EyeVector, comps.NormalVector))
	}
	return sum.Multiply(1.0 / float64(len(samples)))
}

// Phong returns the diffuse plus specular term for one light position
func Phong(mat material.Material, surface, intensity core.Color, lightPosition, point, eye, normal core.Tuple) core.Color {
	lightVector := lightPosition.Subtract(point).Normalize()
	lightDotNormal := lightVector.Dot(normal)
	if lightDotNormal < 0 {
		// Light is behind the surface
		return core.Black
	}

	diffuse := surface.Hadamard(intensity).Multiply(mat.Diffuse * lightDotNormal)

	reflectDotEye := lightVector.Negate().Reflect(normal).Dot(eye)
	if reflectDotEye <= 0 {
		return diffuse
	}
	factor := math.Pow(reflectDotEye, mat.Shininess)
	specular := intensity.Multiply(mat.Specular * factor)

	return diffuse.Add(specular)
}
