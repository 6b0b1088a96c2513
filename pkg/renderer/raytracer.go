package renderer

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/dquist/go-mesh-raytracer/pkg/core"
	"github.com/dquist/go-mesh-raytracer/pkg/geometry"
)

// RayTracer orchestrates per-pixel ray generation, scene intersection,
// recursive shading and pixel encoding. The camera, config and world are
// established before the first render call and never mutated afterwards, so
// one RayTracer can safely back many concurrent pixel evaluations.
type RayTracer struct {
	camera *Camera
	config Config
	world  *geometry.World
}

// NewRayTracer creates a raytracer for the given configuration. The camera
// aspect ratio is derived from the configured image dimensions.
func NewRayTracer(config Config) *RayTracer {
	aspectRatio := float64(config.Width) / float64(config.Height)

	return &RayTracer{
		camera: NewCamera(aspectRatio),
		config: config,
		world:  geometry.NewWorld(),
	}
}

// AddMesh adds a mesh to the scene. All meshes must be added before the
// first render call.
func (rt *RayTracer) AddMesh(mesh *geometry.Mesh) {
	rt.world.Add(mesh)
}

// World returns the scene the raytracer renders
func (rt *RayTracer) World() *geometry.World {
	return rt.world
}

// RenderSequential renders the image on the calling goroutine, writing each
// pixel to output as it is computed. Scanlines run from the top row down,
// left to right within a row.
func (rt *RayTracer) RenderSequential(output io.Writer) error {
	if err := rt.writeHeader(output); err != nil {
		return err
	}

	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	for y := rt.config.Height - 1; y >= 0; y-- {
		for x := 0; x < rt.config.Width; x++ {
			if err := rt.writeColor(output, rt.generatePixel(x, y, random)); err != nil {
				return err
			}
		}
	}

	return nil
}

// RenderParallel renders the image with a fixed-size worker pool. Pixel
// computation order is unspecified, but rows are reassembled before writing,
// so the output byte stream has the same structure as RenderSequential.
func (rt *RayTracer) RenderParallel(output io.Writer) error {
	if err := rt.writeHeader(output); err != nil {
		return err
	}

	rows := make([][]core.Vec3, rt.config.Height)

	pool := newWorkerPool(rt, 0)
	pool.start(time.Now().UnixNano())
	for y := rt.config.Height - 1; y >= 0; y-- {
		rows[y] = make([]core.Vec3, rt.config.Width)
		pool.submit(rowTask{y: y, pixels: rows[y]})
	}
	pool.wait()

	// Single-threaded gather: top scanline first, left to right
	for y := rt.config.Height - 1; y >= 0; y-- {
		for x := 0; x < rt.config.Width; x++ {
			if err := rt.writeColor(output, rows[y][x]); err != nil {
				return err
			}
		}
	}

	return nil
}

// generatePixel computes the color accumulated for the pixel at (x, y). In
// ModeSamples the result is the un-averaged sum over all samples; averaging
// happens at encoding time.
func (rt *RayTracer) generatePixel(x, y int, random *rand.Rand) core.Vec3 {
	switch rt.config.Mode {
	case ModeColors, ModeNormals:
		// One ray through the exact pixel center
		u := float64(x) / float64(rt.config.Width-1)
		v := float64(y) / float64(rt.config.Height-1)

		return rt.rayColor(rt.camera.GetRay(u, v), rt.config.MaxDepth, random)

	case ModeSamples:
		color := core.NewVec3(0, 0, 0)

		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			// Jitter the sub-pixel offset before normalizing to camera UV
			u := (float64(x) + random.Float64()) / float64(rt.config.Width-1)
			v := (float64(y) + random.Float64()) / float64(rt.config.Height-1)

			color = color.Add(rt.rayColor(rt.camera.GetRay(u, v), rt.config.MaxDepth, random))
		}

		return color

	default:
		panic(fmt.Sprintf("unknown drawing mode %d", rt.config.Mode))
	}
}

// rayColor evaluates one ray against the world according to the drawing
// mode. In ModeSamples it recurses through the material scattering protocol,
// multiplying attenuations along the bounce chain; the recursion is bounded
// by depth, which strictly decreases.
func (rt *RayTracer) rayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	switch rt.config.Mode {
	case ModeColors:
		if hit, ok := rt.world.Hit(r); ok {
			return hit.Material.Albedo()
		}

	case ModeNormals:
		if hit, ok := rt.world.Hit(r); ok {
			n := hit.ShadingNormal()
			return core.NewVec3(n.X+1.0, n.Y+1.0, n.Z+1.0).Multiply(0.5)
		}

	case ModeSamples:
		// Energy is exhausted once the bounce limit runs out
		if depth == 0 {
			return core.NewVec3(0, 0, 0)
		}

		if hit, ok := rt.world.Hit(r); ok {
			scatter, scattered := hit.Material.Scatter(r, hit, random)
			if !scattered {
				// Absorbed
				return core.NewVec3(0, 0, 0)
			}

			return scatter.Attenuation.MultiplyVec(
				rt.rayColor(scatter.Scattered, depth-1, random))
		}
	}

	// Sky gradient background: lerp from white to light blue keyed on the
	// ray direction's vertical component
	t := (r.Direction.Y + 1.0) * 0.5
	return core.NewVec3(1, 1, 1).Multiply(1.0 - t).
		Add(core.NewVec3(0.5, 0.7, 1.0).Multiply(t))
}

// writeHeader writes the PPM header
func (rt *RayTracer) writeHeader(output io.Writer) error {
	if _, err := fmt.Fprintf(output, "P3\n%d %d\n255\n", rt.config.Width, rt.config.Height); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

// writeColor encodes one accumulated pixel color as a PPM text line. In
// ModeColors and ModeNormals the 0-1 channels scale straight to 0-255; in
// ModeSamples the sample sum is averaged and gamma-2 corrected first.
// Conversion truncates toward zero. A channel outside [0,255] means the
// encoding math is broken, which panics rather than producing a bad stream.
func (rt *RayTracer) writeColor(output io.Writer, color core.Vec3) error {
	var r, g, b int

	switch rt.config.Mode {
	case ModeColors, ModeNormals:
		r = int(color.X * 255.0)
		g = int(color.Y * 255.0)
		b = int(color.Z * 255.0)

	case ModeSamples:
		scale := 1.0 / float64(rt.config.SamplesPerPixel)
		r = int(encodeChannel(color.X*scale) * 255.0)
		g = int(encodeChannel(color.Y*scale) * 255.0)
		b = int(encodeChannel(color.Z*scale) * 255.0)

	default:
		panic(fmt.Sprintf("unknown drawing mode %d", rt.config.Mode))
	}

	// NaN channels convert to the minimum int, so the low bound matters as
	// much as the high one
	if r < 0 || g < 0 || b < 0 || r > 255 || g > 255 || b > 255 {
		panic(fmt.Sprintf("color value out of range: %d %d %d", r, g, b))
	}

	if _, err := fmt.Fprintf(output, "%d %d %d\n", r, g, b); err != nil {
		return fmt.Errorf("write pixel: %w", err)
	}
	return nil
}

// encodeChannel gamma-2 corrects an averaged channel and clamps it just
// below 1 so the final scale can never reach 256
func encodeChannel(c float64) float64 {
	return math.Min(math.Max(math.Sqrt(c), 0.0), 0.999)
}
