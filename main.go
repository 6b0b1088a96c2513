package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dquist/go-mesh-raytracer/pkg/core"
	"github.com/dquist/go-mesh-raytracer/pkg/geometry"
	"github.com/dquist/go-mesh-raytracer/pkg/loaders"
	"github.com/dquist/go-mesh-raytracer/pkg/renderer"
	"github.com/dquist/go-mesh-raytracer/pkg/scene"
)

func main() {
	width := flag.Int("width", 480, "Image width in pixels")
	height := flag.Int("height", 270, "Image height in pixels")
	mode := flag.String("mode", "samples", "Drawing mode: 'colors', 'normals' or 'samples'")
	samples := flag.Int("samples", 3, "Rays per pixel in samples mode")
	depth := flag.Int("depth", 5, "Maximum ray bounce depth")
	output := flag.String("output", "output.ppm", "Output PPM file")
	sequential := flag.Bool("sequential", false, "Render on a single goroutine instead of the worker pool")
	model := flag.String("model", "", "Optional OBJ or GLB model rendered in place of the default cube")
	smooth := flag.Bool("smooth", false, "Smooth-shade the loaded model with its vertex normals")
	flag.Parse()

	config := renderer.Config{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
	}

	if err := run(config, *mode, *model, *smooth, *sequential, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(config renderer.Config, mode, modelPath string, smooth, sequential bool, outputPath string) error {
	var err error
	config.Mode, err = parseMode(mode)
	if err != nil {
		return err
	}
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", config.Width, config.Height)
	}
	if config.Mode == renderer.ModeSamples && config.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", config.SamplesPerPixel)
	}
	if config.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", config.MaxDepth)
	}

	rayTracer := renderer.NewRayTracer(config)

	meshes := scene.NewDefaultScene()
	if modelPath != "" {
		mesh, err := loadModel(modelPath, smooth)
		if err != nil {
			return err
		}
		mesh.Translate(core.NewVec3(0, -0.4, -12))
		// Keep the floor, swap the cube for the loaded model
		meshes = []*geometry.Mesh{meshes[0], mesh}
	}
	for _, mesh := range meshes {
		rayTracer.AddMesh(mesh)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	fmt.Printf("Rendering %dx%d, %d triangles...\n",
		config.Width, config.Height, rayTracer.World().TriangleCount())
	startTime := time.Now()

	writer := bufio.NewWriter(file)
	if sequential {
		err = rayTracer.RenderSequential(writer)
	} else {
		err = rayTracer.RenderParallel(writer)
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	fmt.Printf("Render completed in %v, saved to %s\n", time.Since(startTime), outputPath)
	return nil
}

// parseMode maps the -mode flag to a drawing mode
func parseMode(mode string) (renderer.DrawingMode, error) {
	switch strings.ToLower(mode) {
	case "colors":
		return renderer.ModeColors, nil
	case "normals":
		return renderer.ModeNormals, nil
	case "samples":
		return renderer.ModeSamples, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (use 'colors', 'normals' or 'samples')", mode)
	}
}

// loadModel picks a loader from the file extension
func loadModel(path string, smooth bool) (*geometry.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return loaders.LoadOBJ(path, smooth)
	case ".glb", ".gltf":
		return loaders.LoadGLB(path, smooth)
	default:
		return nil, fmt.Errorf("unsupported model format %q (use .obj or .glb)", path)
	}
}
