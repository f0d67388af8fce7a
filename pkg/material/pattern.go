package material

import (
	"errors"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrSingularPatternTransform is returned when a pattern transform cannot be inverted
var ErrSingularPatternTransform = errors.New("pattern transform is not invertible")

// PatternKind selects the color rule of a Pattern
type PatternKind int

const (
	PatternSolid PatternKind = iota
	PatternStripe
	PatternGradient
	PatternRing
	PatternChecker
	PatternTest  // colors a point by its own coordinates
	PatternBlend // averages two nested patterns
)

// String returns the pattern kind name
func (k PatternKind) String() string {
	switch k {
	case PatternSolid:
		return "solid"
	case PatternStripe:
		return "stripe"
	case PatternGradient:
		return "gradient"
	case PatternRing:
		return "ring"
	case PatternChecker:
		return "checker"
	case PatternTest:
		return "test"
	case PatternBlend:
		return "blend"
	default:
		return "unknown"
	}
}

// Pattern is a spatially varying surface color. The set of kinds is closed;
// ColorAt switches on Kind.
type Pattern struct {
	Kind PatternKind
	A, B core.Color

	// Nested patterns for PatternBlend
	First, Second *Pattern

	transform core.Matrix4
	inverse   core.Matrix4
}

func newPattern(kind PatternKind, a, b core.Color) *Pattern {
	return &Pattern{
		Kind:      kind,
		A:         a,
		B:         b,
		transform: core.Identity(),
		inverse:   core.Identity(),
	}
}

// NewSolidPattern returns a pattern with a single color
func NewSolidPattern(c core.Color) *Pattern {
	return newPattern(PatternSolid, c, c)
}

// NewStripePattern alternates a and b along x
func NewStripePattern(a, b core.Color) *Pattern {
	return newPattern(PatternStripe, a, b)
}

// NewGradientPattern blends linearly from a to b along x, repeating every unit
func NewGradientPattern(a, b core.Color) *Pattern {
	return newPattern(PatternGradient, a, b)
}

// NewRingPattern alternates a and b in concentric rings in the xz plane
func NewRingPattern(a, b core.Color) *Pattern {
	return newPattern(PatternRing, a, b)
}

// NewCheckerPattern alternates a and b in unit cubes
func NewCheckerPattern(a, b core.Color) *Pattern {
	return newPattern(PatternChecker, a, b)
}

// NewTestPattern returns the pattern-space point as a color. Used to verify
// the transform pipeline.
func NewTestPattern() *Pattern {
	return newPattern(PatternTest, core.Black, core.Black)
}

// NewBlendPattern averages first and second at every point
func NewBlendPattern(first, second *Pattern) *Pattern {
	p := newPattern(PatternBlend, core.Black, core.Black)
	p.First = first
	p.Second = second
	return p
}

// Transform returns the pattern transform
func (p *Pattern) Transform() core.Matrix4 {
	return p.transform
}

// SetTransform replaces the pattern transform and caches its inverse
func (p *Pattern) SetTransform(m core.Matrix4) error {
	inv, ok := m.Inverse()
	if !ok {
		return ErrSingularPatternTransform
	}
	p.transform = m
	p.inverse = inv
	return nil
}

// WithTransform sets the transform and returns the pattern; it panics on a
// singular matrix and is meant for scene literals.
func (p *Pattern) WithTransform(m core.Matrix4) *Pattern {
	if err := p.SetTransform(m); err != nil {
		panic(err)
	}
	return p
}

// ColorAtObject evaluates the pattern for a world-space point on an object
// whose inverse transform is objectInverse.
func (p *Pattern) ColorAtObject(objectInverse core.Matrix4, worldPoint core.Tuple) core.Color {
	objectPoint := objectInverse.MultiplyTuple(worldPoint)
	return p.colorAtObjectPoint(objectPoint)
}

func (p *Pattern) colorAtObjectPoint(objectPoint core.Tuple) core.Color {
	patternPoint := p.inverse.MultiplyTuple(objectPoint)
	if p.Kind == PatternBlend {
		return p.blend(patternPoint)
	}
	return p.ColorAt(patternPoint)
}

// blend evaluates both children in this pattern's space
func (p *Pattern) blend(point core.Tuple) core.Color {
	var first, second core.Color
	if p.First != nil {
		first = p.First.colorAtObjectPoint(point)
	}
	if p.Second != nil {
		second = p.Second.colorAtObjectPoint(point)
	}
	return first.Add(second).Multiply(0.5)
}

// ColorAt applies the color rule to a point already in pattern space
func (p *Pattern) ColorAt(point core.Tuple) core.Color {
	switch p.Kind {
	case PatternSolid:
		return p.A
	case PatternStripe:
		if mod2(math.Floor(point.X)) == 0 {
			return p.A
		}
		return p.B
	case PatternGradient:
		fraction := point.X - math.Floor(point.X)
		return p.A.Add(p.B.Subtract(p.A).Multiply(fraction))
	case PatternRing:
		if mod2(math.Floor(math.Hypot(point.X, point.Z))) == 0 {
			return p.A
		}
		return p.B
	case PatternChecker:
		sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
		if mod2(sum) == 0 {
			return p.A
		}
		return p.B
	case PatternTest:
		return core.NewColor(point.X, point.Y, point.Z)
	case PatternBlend:
		return p.blend(point)
	default:
		return p.A
	}
}

// mod2 returns 0 or 1 for an integral float, including negatives
func mod2(v float64) float64 {
	return math.Abs(math.Mod(v, 2))
}
