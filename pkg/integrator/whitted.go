package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config contains integrator configuration
type Config struct {
	MaxDepth int // Reflection/refraction recursion budget
}

// DefaultConfig returns the default recursion budget of 5
func DefaultConfig() Config {
	return Config{MaxDepth: 5}
}

// WhittedIntegrator shades rays with Phong lighting, hard or soft shadows and
// recursive mirror reflection and refraction
type WhittedIntegrator struct {
	config Config
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(config Config) *WhittedIntegrator {
	return &WhittedIntegrator{config: config}
}

// RayColor implements Integrator
func (w *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene) core.Color {
	return ColorAt(s, ray, w.config.MaxDepth)
}

// ColorAt returns the color seen along ray, or the scene background on a miss
func ColorAt(s *scene.Scene, ray core.Ray, remaining int) core.Color {
	xs := IntersectScene(s, ray)
	index := HitIndex(xs)
	if index < 0 {
		return s.Background
	}

	comps := PrepareComputationsAt(s, index, ray, xs)
	return ShadeHit(s, comps, remaining)
}

// ShadeHit combines local lighting with reflected and refracted light.
// remaining is the number of further bounces allowed.
func ShadeHit(s *scene.Scene, comps Comps, remaining int) core.Color {
	surface := SceneLighting(s, comps)
	if remaining <= 0 {
		return surface
	}

	reflected := ReflectedColor(s, comps, remaining)
	refracted := RefractedColor(s, comps, remaining)

	mat := s.Object(comps.Object).Material
	if mat.Reflectivity != 0 && mat.Transparency != 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the mirror reflection at comps
func ReflectedColor(s *scene.Scene, comps Comps, remaining int) core.Color {
	reflectivity := s.Object(comps.Object).Material.Reflectivity
	if reflectivity == 0 || remaining <= 0 {
		return core.Black
	}

	ray := core.NewRay(comps.OverPoint, comps.ReflectVector)
	return ColorAt(s, ray, remaining-1).Multiply(reflectivity)
}

// RefractedColor traces the transmitted ray at comps. Total internal
// reflection yields black.
func RefractedColor(s *scene.Scene, comps Comps, remaining int) core.Color {
	transparency := s.Object(comps.Object).Material.Transparency
	if transparency == 0 || remaining <= 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeVector.Dot(comps.NormalVector)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalVector.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeVector.Multiply(nRatio))

	ray := core.NewRay(comps.UnderPoint, direction)
	return ColorAt(s, ray, remaining-1).Multiply(transparency)
}

// Schlick approximates the Fresnel reflectance at comps
func Schlick(comps Comps) float64 {
	cos := comps.EyeVector.Dot(comps.NormalVector)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1.0
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := math.Pow((comps.N1-comps.N2)/(comps.N1+comps.N2), 2)
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
