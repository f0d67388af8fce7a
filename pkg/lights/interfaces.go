package lights

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

type LightType string

const (
	LightTypePoint LightType = "point"
	LightTypeArea  LightType = "area"
)

// ErrInvalidSteps is returned when an area light has a non-positive grid size
var ErrInvalidSteps = errors.New("area light steps must be positive")

// Light is either a point light or a rectangular area light, selected by Type.
// Lights are immutable once built and safe to share between renders.
type Light struct {
	Type      LightType
	Intensity core.Color

	// Point light
	Position core.Tuple

	// Area light: the rectangle corner..corner+UVec*USteps+VVec*VSteps,
	// split into USteps x VSteps cells
	Corner  core.Tuple
	UVec    core.Tuple // one cell along u
	USteps  int
	VVec    core.Tuple // one cell along v
	VSteps  int
	Samples int
	Jitter  core.Sequence // offsets within a cell; empty means cell centers
}

// SampleCount returns the number of shadow/lighting samples for this light
func (l Light) SampleCount() int {
	if l.Type == LightTypeArea {
		return l.Samples
	}
	return 1
}

// SamplePoints returns the world positions sampled when lighting a point:
// the position of a point light, or one point per cell of an area light
// ordered row by row along v.
func (l Light) SamplePoints() []core.Tuple {
	if l.Type != LightTypeArea {
		return []core.Tuple{l.Position}
	}
	points := make([]core.Tuple, 0, l.Samples)
	for v := 0; v < l.VSteps; v++ {
		for u := 0; u < l.USteps; u++ {
			points = append(points, l.PointOnLight(u, v))
		}
	}
	return points
}

// Center returns the point light position or the middle of an area light
func (l Light) Center() core.Tuple {
	if l.Type != LightTypeArea {
		return l.Position
	}
	return l.Corner.
		Add(l.UVec.Multiply(float64(l.USteps) / 2)).
		Add(l.VVec.Multiply(float64(l.VSteps) / 2))
}
