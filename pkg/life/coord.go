package life

// Coord identifies one cell on the unbounded grid. Negative values are valid.
type Coord struct {
	X, Y int
}

// moore lists the eight offsets of the Moore neighbourhood.
var moore = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Add returns the coordinate translated by d.
func (c Coord) Add(d Coord) Coord { return Coord{X: c.X + d.X, Y: c.Y + d.Y} }

// Neighbors returns the eight Moore neighbours of c.
func (c Coord) Neighbors() [8]Coord {
	var out [8]Coord
	for i, d := range moore {
		out[i] = c.Add(d)
	}
	return out
}
