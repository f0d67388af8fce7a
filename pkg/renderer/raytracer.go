package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrInvalidDimensions is returned for a non-positive image size
var ErrInvalidDimensions = errors.New("image dimensions must be positive")

// Config contains rendering configuration
type Config struct {
	Width       int
	Height      int
	FieldOfView float64 // radians; 0 uses the scene view
	MaxDepth    int     // Reflection/refraction recursion budget
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:    400,
		Height:   225,
		MaxDepth: integrator.DefaultConfig().MaxDepth,
	}
}

// Raytracer renders a scene one pixel at a time
type Raytracer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a raytracer for a scene, looking along the scene view.
// A nil integrator uses the Whitted integrator with config.MaxDepth.
func NewRaytracer(s *scene.Scene, config Config, integ integrator.Integrator, logger core.Logger) (*Raytracer, error) {
	view := s.View
	if config.FieldOfView > 0 {
		view.FieldOfView = config.FieldOfView
	}

	camera, err := NewCameraFromView(config.Width, config.Height, view)
	if err != nil {
		return nil, fmt.Errorf("creating camera: %w", err)
	}

	if integ == nil {
		integ = integrator.NewWhittedIntegrator(integrator.Config{MaxDepth: config.MaxDepth})
	}
	if logger == nil {
		logger = NopLogger{}
	}

	return &Raytracer{
		scene:      s,
		camera:     camera,
		integrator: integ,
		config:     config,
		logger:     logger,
	}, nil
}

// Camera returns the camera used for primary rays
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render traces one ray per pixel and returns the clamped image
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	width, height := rt.camera.Width(), rt.camera.Height()
	rt.logger.Printf("Rendering %dx%d (%d objects, %d lights, depth %d)...\n",
		width, height, rt.scene.ObjectCount(), len(rt.scene.Lights()), rt.config.MaxDepth)

	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stats := RenderStats{TotalPixels: width * height, MaxDepth: rt.config.MaxDepth}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ray := rt.camera.RayForPixel(x, y)
			c := rt.integrator.RayColor(ray, rt.scene)
			if c.R > 1 || c.G > 1 || c.B > 1 {
				stats.ClampedPixels++
			}
			img.SetRGBA(x, y, colorToRGBA(c))
		}
	}

	stats.Duration = time.Since(start)
	stats.AverageLuminance = CalculateAverageLuminance(img)
	rt.logger.Printf("Render completed in %v (%d of %d pixels clamped)\n",
		stats.Duration, stats.ClampedPixels, stats.TotalPixels)

	return img, stats
}

// colorToRGBA clamps a linear color to [0,1] and scales it to 8 bits
func colorToRGBA(c core.Color) color.RGBA {
	c = c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(math.Round(255 * c.R)),
		G: uint8(math.Round(255 * c.G)),
		B: uint8(math.Round(255 * c.B)),
		A: 255,
	}
}
