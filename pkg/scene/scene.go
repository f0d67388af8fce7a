package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// ObjectID is a stable handle to an object owned by a Scene. Intersections
// and shading state carry the handle instead of a copy of the shape.
type ObjectID int

// View describes where a scene is meant to be looked at from
type View struct {
	From        core.Tuple
	To          core.Tuple
	Up          core.Tuple
	FieldOfView float64 // radians
}

// DefaultView looks at the origin from (0, 1.5, -5)
func DefaultView() View {
	return View{
		From:        core.NewPoint(0, 1.5, -5),
		To:          core.NewPoint(0, 0, 0),
		Up:          core.NewVector(0, 1, 0),
		FieldOfView: 1.0471975511965976, // pi/3
	}
}

// Scene contains the objects and lights to render. It is mutated while
// being built and only read while rendering.
type Scene struct {
	objects []geometry.Shape
	lights  []lights.Light

	Background core.Color // color of rays that hit nothing
	View       View
}

// New creates an empty scene with a black background
func New() *Scene {
	return &Scene{
		objects:    make([]geometry.Shape, 0),
		lights:     make([]lights.Light, 0),
		Background: core.Black,
		View:       DefaultView(),
	}
}

// AddObject stores a shape and returns its handle
func (s *Scene) AddObject(shape geometry.Shape) ObjectID {
	s.objects = append(s.objects, shape)
	return ObjectID(len(s.objects) - 1)
}

// Object returns the shape for a handle. The shape must not be modified.
func (s *Scene) Object(id ObjectID) *geometry.Shape {
	return &s.objects[id]
}

// Objects returns all shapes in insertion order; index i has ObjectID(i)
func (s *Scene) Objects() []geometry.Shape {
	return s.objects
}

// ObjectCount returns the number of shapes in the scene
func (s *Scene) ObjectCount() int {
	return len(s.objects)
}

// ClearObjects removes every shape; previously returned handles become invalid
func (s *Scene) ClearObjects() {
	s.objects = s.objects[:0]
}

// AddLight appends a light source
func (s *Scene) AddLight(light lights.Light) {
	s.lights = append(s.lights, light)
}

// Lights returns the light sources
func (s *Scene) Lights() []lights.Light {
	return s.lights
}

// ClearLights removes every light source
func (s *Scene) ClearLights() {
	s.lights = s.lights[:0]
}
