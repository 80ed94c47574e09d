// Package seed provides the initial configurations an engine can start from:
// random fields, Perlin noise fields, built-in patterns and pattern files.
package seed

import (
	"errors"

	"sparse-life/internal/core"
	pcore "sparse-life/pkg/core"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters matching the usual go-perlin defaults.
const (
	noiseAlpha = 2.0
	noiseBeta  = 2.0
	noiseOct   = 3
)

// ErrNoPath is returned by the file source when no path is configured.
var ErrNoPath = errors.New("seed: file source needs a path")

// Random fills a Width x Height grid with live cells at the configured density.
func Random(c Config) (*core.Grid, error) {
	g, err := core.NewGrid(c.Width, c.Height)
	if err != nil {
		return nil, err
	}
	rng := pcore.NewRNG(c.Seed).Source()
	pcore.FillDensity(rng, g.Cells(), c.Density)
	return g, nil
}

// Noise thresholds a Perlin noise field, giving clustered islands rather than
// uniform static.
func Noise(c Config) (*core.Grid, error) {
	g, err := core.NewGrid(c.Width, c.Height)
	if err != nil {
		return nil, err
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOct, c.Seed)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if p.Noise2D(float64(x)*c.Scale, float64(y)*c.Scale) > c.Threshold {
				g.Set(x, y, true)
			}
		}
	}
	return g, nil
}

// File loads the pattern at c.Path.
func File(c Config) (*core.Grid, error) {
	if c.Path == "" {
		return nil, ErrNoPath
	}
	return Load(c.Path)
}

// Place centres pattern on a w x h canvas. Cells that do not fit are clipped.
func Place(pattern *core.Grid, w, h int) (*core.Grid, error) {
	g, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	g.Blit(pattern, (w-pattern.W)/2, (h-pattern.H)/2)
	return g, nil
}

func patternFactory(name string) core.Factory {
	return func(cfg map[string]string) (*core.Grid, error) {
		g, err := Pattern(name)
		if err != nil {
			return nil, err
		}
		if w, h, ok := dims(cfg); ok {
			return Place(g, w, h)
		}
		return g, nil
	}
}

func init() {
	core.Register("random", func(cfg map[string]string) (*core.Grid, error) {
		return Random(FromMap(cfg))
	})
	core.Register("noise", func(cfg map[string]string) (*core.Grid, error) {
		return Noise(FromMap(cfg))
	})
	core.Register("file", func(cfg map[string]string) (*core.Grid, error) {
		c := FromMap(cfg)
		g, err := File(c)
		if err != nil {
			return nil, err
		}
		if w, h, ok := dims(cfg); ok {
			return Place(g, w, h)
		}
		return g, nil
	})
	for _, name := range PatternNames() {
		core.Register(name, patternFactory(name))
	}
}
