package material

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPattern_ColorAt(t *testing.T) {
	white := core.White
	black := core.Black

	tests := []struct {
		name     string
		pattern  *Pattern
		point    core.Tuple
		expected core.Color
	}{
		{"solid", NewSolidPattern(core.NewColor(0.1, 0.2, 0.3)), core.NewPoint(4, 5, 6), core.NewColor(0.1, 0.2, 0.3)},

		{"stripe constant in y", NewStripePattern(white, black), core.NewPoint(0, 2, 0), white},
		{"stripe constant in z", NewStripePattern(white, black), core.NewPoint(0, 0, 2), white},
		{"stripe at 0.9", NewStripePattern(white, black), core.NewPoint(0.9, 0, 0), white},
		{"stripe at 1", NewStripePattern(white, black), core.NewPoint(1, 0, 0), black},
		{"stripe at -0.1", NewStripePattern(white, black), core.NewPoint(-0.1, 0, 0), black},
		{"stripe at -1", NewStripePattern(white, black), core.NewPoint(-1, 0, 0), black},
		{"stripe at -1.1", NewStripePattern(white, black), core.NewPoint(-1.1, 0, 0), white},

		{"gradient at 0", NewGradientPattern(white, black), core.NewPoint(0, 0, 0), white},
		{"gradient at 0.25", NewGradientPattern(white, black), core.NewPoint(0.25, 0, 0), core.NewColor(0.75, 0.75, 0.75)},
		{"gradient at 0.75", NewGradientPattern(white, black), core.NewPoint(0.75, 0, 0), core.NewColor(0.25, 0.25, 0.25)},

		{"ring at origin", NewRingPattern(white, black), core.NewPoint(0, 0, 0), white},
		{"ring along x", NewRingPattern(white, black), core.NewPoint(1, 0, 0), black},
		{"ring along z", NewRingPattern(white, black), core.NewPoint(0, 0, 1), black},
		{"ring diagonal", NewRingPattern(white, black), core.NewPoint(0.708, 0, 0.708), black},

		{"checker repeats in x", NewCheckerPattern(white, black), core.NewPoint(0.99, 0, 0), white},
		{"checker next x", NewCheckerPattern(white, black), core.NewPoint(1.01, 0, 0), black},
		{"checker next y", NewCheckerPattern(white, black), core.NewPoint(0, 1.01, 0), black},
		{"checker next z", NewCheckerPattern(white, black), core.NewPoint(0, 0, 1.01), black},

		{"test pattern", NewTestPattern(), core.NewPoint(1, 2, 3), core.NewColor(1, 2, 3)},

		{"blend", NewBlendPattern(NewSolidPattern(white), NewSolidPattern(black)), core.NewPoint(0, 0, 0), core.NewColor(0.5, 0.5, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.pattern.ColorAt(tt.point)
			if !result.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestPattern_ColorAtObject_Transforms(t *testing.T) {
	tests := []struct {
		name             string
		objectTransform  core.Matrix4
		patternTransform core.Matrix4
		point            core.Tuple
		expected         core.Color
	}{
		{
			name:             "object transform",
			objectTransform:  core.Scaling(2, 2, 2),
			patternTransform: core.Identity(),
			point:            core.NewPoint(2, 3, 4),
			expected:         core.NewColor(1, 1.5, 2),
		},
		{
			name:             "pattern transform",
			objectTransform:  core.Identity(),
			patternTransform: core.Scaling(2, 2, 2),
			point:            core.NewPoint(2, 3, 4),
			expected:         core.NewColor(1, 1.5, 2),
		},
		{
			name:             "object and pattern transform",
			objectTransform:  core.Scaling(2, 2, 2),
			patternTransform: core.Translation(0.5, 1, 1.5),
			point:            core.NewPoint(2.5, 3, 3.5),
			expected:         core.NewColor(0.75, 0.5, 0.25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern := NewTestPattern().WithTransform(tt.patternTransform)
			objectInverse, ok := tt.objectTransform.Inverse()
			if !ok {
				t.Fatal("Object transform should be invertible")
			}

			result := pattern.ColorAtObject(objectInverse, tt.point)
			if !result.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestPattern_SetTransformSingular(t *testing.T) {
	p := NewStripePattern(core.White, core.Black)
	if err := p.SetTransform(core.Scaling(0, 1, 1)); err != ErrSingularPatternTransform {
		t.Errorf("Expected ErrSingularPatternTransform, got %v", err)
	}
	if p.Transform() != core.Identity() {
		t.Error("Failed SetTransform should keep the previous transform")
	}
}

func TestPattern_BlendUsesNestedTransforms(t *testing.T) {
	horizontal := NewStripePattern(core.White, core.Black)
	vertical := NewStripePattern(core.White, core.Black).WithTransform(core.RotationY(1.5707963267948966))
	blend := NewBlendPattern(horizontal, vertical)

	// x=1.5 is black for the unrotated stripes; rotated stripes vary along z, z=-0.5 is white
	result := blend.ColorAtObject(core.Identity(), core.NewPoint(1.5, 0, -0.5))
	if !result.ApproxEqual(core.NewColor(0.5, 0.5, 0.5)) {
		t.Errorf("Expected average of black and white, got %v", result)
	}

	if PatternBlend.String() != "blend" || PatternKind(99).String() != "unknown" {
		t.Error("Unexpected pattern kind names")
	}
}
