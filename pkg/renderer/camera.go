package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrSingularCameraTransform is returned when the view transform cannot be inverted
var ErrSingularCameraTransform = errors.New("camera transform is not invertible")

// Camera maps pixels of a width x height canvas onto rays. The canvas sits
// one unit in front of the eye; the transform orients the world relative to it.
type Camera struct {
	width, height int
	fieldOfView   float64

	transform core.Matrix4
	inverse   core.Matrix4

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with the given view transform
func NewCamera(width, height int, fieldOfView float64, transform core.Matrix4) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	inv, ok := transform.Inverse()
	if !ok {
		return nil, ErrSingularCameraTransform
	}

	c := &Camera{
		width:       width,
		height:      height,
		fieldOfView: fieldOfView,
		transform:   transform,
		inverse:     inv,
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(width) / float64(height)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(width)

	return c, nil
}

// NewCameraFromView creates a camera looking along a scene view
func NewCameraFromView(width, height int, view scene.View) (*Camera, error) {
	transform := core.ViewTransform(view.From, view.To, view.Up)
	return NewCamera(width, height, view.FieldOfView, transform)
}

// Width returns the canvas width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Camera) Height() int { return c.height }

// PixelSize returns the world size of one pixel on the canvas
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// RayForPixel returns the ray from the eye through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// Camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
