package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	defaults := renderer.DefaultConfig()

	// Parse command line flags
	sceneType := flag.String("scene", "default", "Built-in scene to render (see -help)")
	width := flag.Int("width", defaults.Width, "Image width in pixels")
	height := flag.Int("height", defaults.Height, "Image height in pixels")
	depth := flag.Int("depth", defaults.MaxDepth, "Reflection/refraction recursion budget")
	out := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	logger := renderer.NewDefaultLogger()
	config := renderer.Config{Width: *width, Height: *height, MaxDepth: *depth}

	if err := run(*sceneType, config, *out, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-13s - %s\n", info.ID, info.Description)
	}
}

// run renders one scene and writes it as a PNG
func run(sceneType string, config renderer.Config, out string, logger core.Logger) error {
	selectedScene, err := createScene(sceneType)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene...\n", sceneType)

	raytracer, err := renderer.NewRaytracer(selectedScene, config, nil, logger)
	if err != nil {
		return fmt.Errorf("creating raytracer: %w", err)
	}

	img, stats := raytracer.Render()
	logger.Printf("Average luminance: %.3f\n", stats.AverageLuminance)

	if out == "" {
		timestamp := time.Now().Format("20060102_150405")
		out = filepath.Join("output", sceneType, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := savePNG(out, img); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", out)
	return nil
}

// createScene returns the built-in scene with the given name
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name is empty")
	}
	return scene.Create(sceneType)
}

// savePNG writes img to path, creating parent directories
func savePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}
	return nil
}
