package life

import "iter"

// LiveSet is the set of coordinates alive in one generation. A LiveSet handed
// out by the engine is never modified afterwards, so it may be read while the
// engine computes the next generation.
type LiveSet struct {
	m map[Coord]struct{}
}

// NewLiveSet builds a set from coords. Duplicates collapse.
func NewLiveSet(coords ...Coord) LiveSet {
	m := make(map[Coord]struct{}, len(coords))
	for _, c := range coords {
		m[c] = struct{}{}
	}
	return LiveSet{m: m}
}

// Contains reports whether c is alive.
func (s LiveSet) Contains(c Coord) bool {
	_, ok := s.m[c]
	return ok
}

// Len returns the live population.
func (s LiveSet) Len() int { return len(s.m) }

// All yields every live coordinate in unspecified order.
func (s LiveSet) All() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for c := range s.m {
			if !yield(c) {
				return
			}
		}
	}
}

// Coords returns a fresh slice holding every live coordinate.
func (s LiveSet) Coords() []Coord {
	out := make([]Coord, 0, len(s.m))
	for c := range s.m {
		out = append(out, c)
	}
	return out
}

// Bounds returns the inclusive bounding box of the population. ok is false for
// an empty set.
func (s LiveSet) Bounds() (lo, hi Coord, ok bool) {
	for c := range s.m {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		lo.X = min(lo.X, c.X)
		lo.Y = min(lo.Y, c.Y)
		hi.X = max(hi.X, c.X)
		hi.Y = max(hi.Y, c.Y)
	}
	return lo, hi, ok
}

// Equal reports whether both sets hold the same coordinates.
func (s LiveSet) Equal(o LiveSet) bool {
	if len(s.m) != len(o.m) {
		return false
	}
	for c := range s.m {
		if _, ok := o.m[c]; !ok {
			return false
		}
	}
	return true
}

// Translate returns a copy of the set shifted by d.
func (s LiveSet) Translate(d Coord) LiveSet {
	m := make(map[Coord]struct{}, len(s.m))
	for c := range s.m {
		m[c.Add(d)] = struct{}{}
	}
	return LiveSet{m: m}
}
