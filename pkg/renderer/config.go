package renderer

// DrawingMode selects what the engine computes per pixel. Modes are fixed
// for the lifetime of a render.
type DrawingMode int

const (
	// ModeColors draws the base albedo of whatever each pixel-center ray
	// hits, with no recursion
	ModeColors DrawingMode = iota
	// ModeNormals visualizes the shading normal at each pixel-center hit,
	// remapped from [-1,1] to [0,1] per channel
	ModeNormals
	// ModeSamples is the full path-traced mode with jittered sub-pixel
	// sampling and gamma-corrected output
	ModeSamples
)

// Config contains the rendering configuration
type Config struct {
	Width           int         // Image width in pixels, > 0
	Height          int         // Image height in pixels, > 0
	Mode            DrawingMode // Drawing mode
	SamplesPerPixel int         // Rays per pixel in ModeSamples, > 0
	MaxDepth        int         // Maximum ray bounce depth
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           480,
		Height:          270,
		Mode:            ModeSamples,
		SamplesPerPixel: 3,
		MaxDepth:        5,
	}
}
