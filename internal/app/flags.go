package app

import (
	"flag"
	"strconv"

	"sparse-life/internal/view"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Source  string
	Width   int
	Height  int
	Density float64
	Path    string
	Seed    int64

	Zoom    float64
	TPS     int
	Drag    string
	ZoomDir string
	CanvasW int
	CanvasH int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Source:  "random",
		Density: 0.05,
		Seed:    42,
		Zoom:    1,
		TPS:     view.DefaultTargetFPS,
		Drag:    string(view.Normal),
		ZoomDir: string(view.Normal),
		CanvasW: 600,
		CanvasH: 600,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Source, "source", c.Source, "seed source (random, noise, file or a pattern name)")
	fs.IntVar(&c.Width, "w", c.Width, "seed area width (0 uses the source default)")
	fs.IntVar(&c.Height, "h", c.Height, "seed area height (0 uses the source default)")
	fs.Float64Var(&c.Density, "density", c.Density, "live probability for the random source")
	fs.StringVar(&c.Path, "pattern", c.Path, "pattern file (.cells or .rle) for the file source")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random and noise sources")
	fs.Float64Var(&c.Zoom, "zoom", c.Zoom, "initial zoom level")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.StringVar(&c.Drag, "drag", c.Drag, "drag direction: normal or reverse")
	fs.StringVar(&c.ZoomDir, "zoom-dir", c.ZoomDir, "zoom direction: normal or reverse")
	fs.IntVar(&c.CanvasW, "canvas-w", c.CanvasW, "window width in pixels")
	fs.IntVar(&c.CanvasH, "canvas-h", c.CanvasH, "window height in pixels")
}

// SeedOptions converts the seed flags into the key/value form seed sources
// accept. Unset sizes are omitted so patterns keep their own bounding box.
func (c *Config) SeedOptions(seed int64) map[string]string {
	opts := map[string]string{
		"seed":    strconv.FormatInt(seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
	}
	if c.Width > 0 {
		opts["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		opts["h"] = strconv.Itoa(c.Height)
	}
	if c.Path != "" {
		opts["path"] = c.Path
	}
	return opts
}

// Directions parses the drag and zoom direction flags.
func (c *Config) Directions() (drag, zoom view.Direction, err error) {
	if drag, err = view.ParseDirection(c.Drag); err != nil {
		return "", "", err
	}
	if zoom, err = view.ParseDirection(c.ZoomDir); err != nil {
		return "", "", err
	}
	return drag, zoom, nil
}
