package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// NewPointLight creates a light emitting intensity from a single position
func NewPointLight(position core.Tuple, intensity core.Color) Light {
	return Light{
		Type:      LightTypePoint,
		Intensity: intensity,
		Position:  position,
	}
}
