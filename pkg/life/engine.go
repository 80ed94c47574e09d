package life

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSize is returned when a seed grid has a negative dimension.
	ErrNegativeSize = errors.New("negative grid dimension")
	// ErrRagged is returned when a seed grid is not rectangular.
	ErrRagged = errors.New("grid is not rectangular")
)

// State is a read view of the engine after the most recent Update.
type State struct {
	Live       LiveSet
	Generation uint64
}

// Engine implements Conway's Game of Life on an unbounded grid. Only live
// cells and their neighbours are stored or evaluated.
//
// Engine is not safe for concurrent use; wrap it in Shared when readers and
// the updating loop run on different goroutines.
type Engine struct {
	live       LiveSet
	generation uint64
}

// New seeds an engine from a width x height grid indexed cells[x][y]: the
// first index is the column, and cells[x][y] != 0 marks Coord{x, y} alive.
// The grid is not retained.
func New(width, height int, cells [][]uint8) (*Engine, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("life: %dx%d: %w", width, height, ErrNegativeSize)
	}
	if len(cells) != width {
		return nil, fmt.Errorf("life: got %d columns, want %d: %w", len(cells), width, ErrRagged)
	}
	var coords []Coord
	for x, col := range cells {
		if len(col) != height {
			return nil, fmt.Errorf("life: column %d has %d cells, want %d: %w", x, len(col), height, ErrRagged)
		}
		for y, v := range col {
			if v != 0 {
				coords = append(coords, Coord{X: x, Y: y})
			}
		}
	}
	return &Engine{live: NewLiveSet(coords...)}, nil
}

// FromCoords seeds an engine directly from live coordinates.
func FromCoords(coords ...Coord) *Engine {
	return &Engine{live: NewLiveSet(coords...)}
}

// WithGeneration sets the starting generation counter, for patterns resumed
// mid-run. It must be called before the first Update.
func (e *Engine) WithGeneration(gen uint64) *Engine {
	e.generation = gen
	return e
}

// State returns the live set and generation published by the last Update.
func (e *Engine) State() State {
	return State{Live: e.live, Generation: e.generation}
}

// Generation returns the number of completed updates plus the start offset.
func (e *Engine) Generation() uint64 { return e.generation }

// Len returns the current live population.
func (e *Engine) Len() int { return e.live.Len() }

// Update advances the simulation by one generation. The next set is built in
// full before it replaces the current one.
func (e *Engine) Update() {
	e.live = step(e.live)
	e.generation++
}

// Next applies B3/S23 to a single cell.
func Next(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

func step(cur LiveSet) LiveSet {
	cands := candidates(cur)
	next := make(map[Coord]struct{}, cur.Len())
	for c := range cands {
		if Next(cur.Contains(c), countNeighbors(cur, c)) {
			next[c] = struct{}{}
		}
	}
	return LiveSet{m: next}
}

// candidates returns every live cell plus its Moore neighbours. Any cell
// outside this set has no live neighbour and stays dead.
func candidates(cur LiveSet) map[Coord]struct{} {
	out := make(map[Coord]struct{}, cur.Len()*9)
	for c := range cur.m {
		out[c] = struct{}{}
		for _, d := range moore {
			out[c.Add(d)] = struct{}{}
		}
	}
	return out
}

func countNeighbors(cur LiveSet, c Coord) int {
	n := 0
	for _, d := range moore {
		if cur.Contains(c.Add(d)) {
			n++
		}
	}
	return n
}
