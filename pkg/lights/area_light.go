package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewAreaLight creates a rectangular light spanned by fullU and fullV from
// corner, subdivided into usteps x vsteps sample cells
func NewAreaLight(corner, fullU core.Tuple, usteps int, fullV core.Tuple, vsteps int, intensity core.Color) (Light, error) {
	if usteps <= 0 || vsteps <= 0 {
		return Light{}, fmt.Errorf("%w: got %dx%d", ErrInvalidSteps, usteps, vsteps)
	}
	return Light{
		Type:      LightTypeArea,
		Intensity: intensity,
		Corner:    corner,
		UVec:      fullU.Divide(float64(usteps)),
		USteps:    usteps,
		VVec:      fullV.Divide(float64(vsteps)),
		VSteps:    vsteps,
		Samples:   usteps * vsteps,
	}, nil
}

// WithJitter returns a copy of the light that offsets samples inside their
// cells using values from seq
func (l Light) WithJitter(seq core.Sequence) Light {
	l.Jitter = seq
	return l
}

// PointOnLight returns the sample point for cell (u, v). Jitter values are
// taken two per cell, in the same row-by-row order as SamplePoints.
func (l Light) PointOnLight(u, v int) core.Tuple {
	cell := v*l.USteps + u
	du := l.Jitter.At(2 * cell)
	dv := l.Jitter.At(2*cell + 1)
	return l.Corner.
		Add(l.UVec.Multiply(float64(u) + du)).
		Add(l.VVec.Multiply(float64(v) + dv))
}
