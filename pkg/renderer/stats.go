package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about a finished render
type RenderStats struct {
	TotalPixels      int           // Pixels rendered
	ClampedPixels    int           // Pixels with a channel above 1 before clamping
	AverageLuminance float64       // Mean luminance of the output image
	MaxDepth         int           // Recursion budget used for every pixel
	Duration         time.Duration // Wall time spent rendering
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image,
// with channels scaled to [0,1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			r := float64(c.R) / 255
			g := float64(c.G) / 255
			b := float64(c.B) / 255
			total += 0.2126*r + 0.7152*g + 0.0722*b
		}
	}
	return total / float64(pixels)
}
