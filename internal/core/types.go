package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a seed grid or drawing surface.
type Size struct {
	W int
	H int
}

// Factory builds an initial configuration from an optional key/value map.
type Factory func(cfg map[string]string) (*Grid, error)

var sources = map[string]Factory{}

// Register adds a seed source under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// SourceNames returns the registered source names in sorted order.
func SourceNames() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up name and runs its factory.
func Build(name string, cfg map[string]string) (*Grid, error) {
	f, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown seed source %q (have %v)", name, SourceNames())
	}
	return f(cfg)
}
