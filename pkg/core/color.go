package core

import (
	"math"
)

// Color is a linear RGB triple. Components are not clamped; values above 1
// are valid until the image is written.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the component-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply scales the color by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the component-wise product of two colors
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns the color with components clamped to [minVal, maxVal]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// Round rounds each component to the given number of decimal places
func (c Color) Round(places int) Color {
	scale := math.Pow(10, float64(places))
	return Color{
		R: math.Round(c.R*scale) / scale,
		G: math.Round(c.G*scale) / scale,
		B: math.Round(c.B*scale) / scale,
	}
}

// ApproxEqual compares two colors component-wise within Epsilon
func (c Color) ApproxEqual(other Color) bool {
	return ApproxEqual(c.R, other.R) &&
		ApproxEqual(c.G, other.G) &&
		ApproxEqual(c.B, other.B)
}
