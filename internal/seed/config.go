package seed

import "strconv"

// Config controls how a seed grid is generated.
type Config struct {
	Width  int
	Height int
	Seed   int64

	// Density is the live probability per cell for the random source.
	Density float64
	// Scale is the noise sampling step per cell for the noise source.
	Scale float64
	// Threshold is the noise value above which a cell is alive.
	Threshold float64

	// Path names a pattern file for the file source.
	Path string
}

// DefaultConfig returns the standard configuration: a 600x600 area seeded at
// 5% density.
func DefaultConfig() Config {
	return Config{
		Width:     600,
		Height:    600,
		Seed:      42,
		Density:   0.05,
		Scale:     0.08,
		Threshold: 0.15,
	}
}

// FromMap populates a Config from a string map. Invalid values keep their
// defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Threshold = parsed
		}
	}
	if v, ok := cfg["path"]; ok {
		c.Path = v
	}
	return c
}

// dims returns the requested canvas size for patterns, which otherwise use
// their own bounding box.
func dims(cfg map[string]string) (w, h int, ok bool) {
	_, hasW := cfg["w"]
	_, hasH := cfg["h"]
	if !hasW && !hasH {
		return 0, 0, false
	}
	c := FromMap(cfg)
	return c.Width, c.Height, true
}
