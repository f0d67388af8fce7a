package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material holds the Phong surface properties of an object plus its
// reflective and refractive behavior.
type Material struct {
	Color     core.Color
	Ambient   float64 // [0,1]
	Diffuse   float64 // [0,1]
	Specular  float64 // [0,1]
	Shininess float64 // [1,200]

	// Not clamped
	Reflectivity    float64
	Transparency    float64
	RefractiveIndex float64

	EnvironmentLighting float64 // extra unshadowed fill light
	CastsShadows        bool
	Pattern             *Pattern // nil means Color is used
}

// NewMaterial creates a material, clamping the Phong coefficients
func NewMaterial(
	color core.Color,
	ambient, diffuse, specular, shininess float64,
	reflectivity, transparency, refractiveIndex float64,
	environmentLighting float64,
	castsShadows bool,
	pattern *Pattern,
) Material {
	return Material{
		Color:               color,
		Ambient:             clamp(ambient, 0, 1),
		Diffuse:             clamp(diffuse, 0, 1),
		Specular:            clamp(specular, 0, 1),
		Shininess:           clamp(shininess, 1, 200),
		Reflectivity:        reflectivity,
		Transparency:        transparency,
		RefractiveIndex:     refractiveIndex,
		EnvironmentLighting: environmentLighting,
		CastsShadows:        castsShadows,
		Pattern:             pattern,
	}
}

// DefaultMaterial returns a white, opaque, shadow-casting material
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		RefractiveIndex: 1.0,
		CastsShadows:    true,
	}
}

// Glass returns the default material made fully transparent with index 1.5
func Glass() Material {
	m := DefaultMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	return m
}

// Set replaces the surface properties, clamping the Phong coefficients.
// Transparency, refractive index and shadow flags are left untouched.
func (m *Material) Set(color core.Color, ambient, diffuse, specular, shininess, reflectivity float64, pattern *Pattern) {
	m.Color = color
	m.SetAmbient(ambient)
	m.SetDiffuse(diffuse)
	m.SetSpecular(specular)
	m.SetShininess(shininess)
	m.Reflectivity = reflectivity
	m.Pattern = pattern
}

// SetAmbient sets the ambient coefficient clamped to [0,1]
func (m *Material) SetAmbient(v float64) {
	m.Ambient = clamp(v, 0, 1)
}

// SetDiffuse sets the diffuse coefficient clamped to [0,1]
func (m *Material) SetDiffuse(v float64) {
	m.Diffuse = clamp(v, 0, 1)
}

// SetSpecular sets the specular coefficient clamped to [0,1]
func (m *Material) SetSpecular(v float64) {
	m.Specular = clamp(v, 0, 1)
}

// SetShininess sets the shininess clamped to [1,200]
func (m *Material) SetShininess(v float64) {
	m.Shininess = clamp(v, 1, 200)
}

// SurfaceColor returns the pattern color at a world point, or the base color
// when the material has no pattern. objectInverse is the inverse transform of
// the object owning the material.
func (m Material) SurfaceColor(objectInverse core.Matrix4, worldPoint core.Tuple) core.Color {
	if m.Pattern == nil {
		return m.Color
	}
	return m.Pattern.ColorAtObject(objectInverse, worldPoint)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
