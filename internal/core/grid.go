package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSize reports a grid constructed with a negative dimension.
	ErrNegativeSize = errors.New("negative grid dimension")
	// ErrRaggedRows reports a grid whose rows differ in length.
	ErrRaggedRows = errors.New("grid rows are not rectangular")
	// ErrTooLarge reports a grid with more than MaxCells cells.
	ErrTooLarge = errors.New("grid too large")
)

// MaxCells caps the area of a seed grid.
const MaxCells = 1 << 26

// Grid stores a rectangular 0/1 seed configuration in row-major order.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", w, h, ErrNegativeSize)
	}
	if w > 0 && h > MaxCells/w {
		return nil, fmt.Errorf("grid %dx%d exceeds %d cells: %w", w, h, MaxCells, ErrTooLarge)
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// GridFromRows copies rows into a new grid. Every row must have the same
// length; non-zero values are stored as 1.
func GridFromRows(rows [][]uint8) (*Grid, error) {
	w := 0
	if len(rows) > 0 {
		w = len(rows[0])
	}
	g, err := NewGrid(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("grid row %d has %d cells, want %d: %w", y, len(row), w, ErrRaggedRows)
		}
		for x, v := range row {
			if v != 0 {
				g.data[g.Index(x, y)] = 1
			}
		}
	}
	return g, nil
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool { return x >= 0 && y >= 0 && x < g.W && y < g.H }

// At reports whether (x, y) is alive. Out-of-range coordinates are dead.
func (g *Grid) At(x, y int) bool {
	return g.In(x, y) && g.data[g.Index(x, y)] != 0
}

// Set marks (x, y) alive or dead. Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.In(x, y) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(x, y)] = v
}

// Columns copies the grid out as cols[x][y], the layout life.New takes.
func (g *Grid) Columns() [][]uint8 {
	cols := make([][]uint8, g.W)
	for x := range cols {
		col := make([]uint8, g.H)
		for y := range col {
			col[y] = g.data[g.Index(x, y)]
		}
		cols[x] = col
	}
	return cols
}

// Count returns the number of live cells.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Blit copies src into g with its top-left corner at (ox, oy), clipping
// anything that falls outside g.
func (g *Grid) Blit(src *Grid, ox, oy int) {
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			if src.At(x, y) {
				g.Set(ox+x, oy+y, true)
			}
		}
	}
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
