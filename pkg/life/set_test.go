package life

import "testing"

func TestLiveSetCollapsesDuplicates(t *testing.T) {
	s := NewLiveSet(Coord{1, 2}, Coord{1, 2}, Coord{-1, 2})
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	if !s.Contains(Coord{-1, 2}) || s.Contains(Coord{2, 1}) {
		t.Fatal("membership mismatch")
	}
}

func TestLiveSetAll(t *testing.T) {
	s := NewLiveSet(Coord{0, 0}, Coord{5, -5}, Coord{-7, 3})
	seen := map[Coord]int{}
	for c := range s.All() {
		seen[c]++
	}
	if len(seen) != 3 {
		t.Fatalf("iterated %d distinct coords, want 3", len(seen))
	}
	for c, n := range seen {
		if n != 1 || !s.Contains(c) {
			t.Fatalf("coord %v seen %d times", c, n)
		}
	}

	// Re-invokable and stoppable.
	count := 0
	for range s.All() {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("early break yielded %d", count)
	}
	count = 0
	for range s.All() {
		count++
	}
	if count != 3 {
		t.Fatalf("second iteration yielded %d, want 3", count)
	}
}

func TestLiveSetBounds(t *testing.T) {
	if _, _, ok := NewLiveSet().Bounds(); ok {
		t.Fatal("empty set reported bounds")
	}
	lo, hi, ok := NewLiveSet(Coord{2, -3}, Coord{-4, 1}, Coord{0, 9}).Bounds()
	if !ok {
		t.Fatal("bounds missing")
	}
	if lo != (Coord{-4, -3}) || hi != (Coord{2, 9}) {
		t.Fatalf("bounds = %v..%v", lo, hi)
	}
}

func TestLiveSetTranslate(t *testing.T) {
	s := NewLiveSet(Coord{0, 0}, Coord{1, 1})
	moved := s.Translate(Coord{-3, 2})
	if !moved.Equal(NewLiveSet(Coord{-3, 2}, Coord{-2, 3})) {
		t.Fatalf("translated set = %v", sorted(moved))
	}
	if !s.Contains(Coord{0, 0}) {
		t.Fatal("translate modified the receiver")
	}
}

func TestCoordNeighbors(t *testing.T) {
	got := Coord{-1, 4}.Neighbors()
	set := NewLiveSet(got[:]...)
	if set.Len() != 8 || set.Contains(Coord{-1, 4}) {
		t.Fatalf("neighbours = %v", got)
	}
	for c := range set.All() {
		if abs(c.X+1) > 1 || abs(c.Y-4) > 1 {
			t.Fatalf("%v is not adjacent", c)
		}
	}
}
