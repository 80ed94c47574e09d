package seed

import (
	"fmt"
	"sort"
	"strings"

	"sparse-life/internal/core"
)

// Built-in patterns in plaintext form.
var patterns = map[string]string{
	"block": `
OO
OO`,
	"blinker": `
.O.
.O.
.O.`,
	"glider": `
.O.
..O
OOO`,
	"rpentomino": `
.OO
OO.
.O.`,
	"acorn": `
.O.....
...O...
OO..OOO`,
	"gosper": `
........................O...........
......................O.O...........
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO..............
OO........O...O.OO....O.O...........
..........O.....O.......O...........
...........O...O....................
............OO......................`,
}

// PatternNames lists the built-in pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pattern returns a fresh grid for the named built-in pattern.
func Pattern(name string) (*core.Grid, error) {
	src, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("seed: unknown pattern %q", name)
	}
	return ParsePlaintext(strings.NewReader(strings.TrimPrefix(src, "\n")))
}
