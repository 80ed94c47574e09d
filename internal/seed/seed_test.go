package seed

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"sparse-life/internal/core"
	"sparse-life/pkg/life"
)

func TestRandomDeterministic(t *testing.T) {
	cfg := map[string]string{"w": "40", "h": "30", "seed": "9", "density": "0.25"}
	a, err := core.Build("random", cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, _ := core.Build("random", cfg)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different grids")
	}
	if a.W != 40 || a.H != 30 {
		t.Fatalf("size = %dx%d", a.W, a.H)
	}
	if n := a.Count(); n == 0 || n == 40*30 {
		t.Fatalf("density 0.25 produced %d live cells", n)
	}

	cfg["seed"] = "10"
	c, _ := core.Build("random", cfg)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds produced identical grids")
	}
}

func TestNoiseDeterministic(t *testing.T) {
	cfg := map[string]string{"w": "64", "h": "64", "seed": "3", "threshold": "0"}
	a, err := core.Build("noise", cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, _ := core.Build("noise", cfg)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("noise source is not deterministic")
	}
	if n := a.Count(); n == 0 || n == 64*64 {
		t.Fatalf("threshold 0 produced %d live cells", n)
	}
}

func TestFromMapKeepsDefaultsOnBadInput(t *testing.T) {
	c := FromMap(map[string]string{"w": "-4", "density": "3", "scale": "0", "seed": "x"})
	d := DefaultConfig()
	if c.Width != d.Width || c.Density != d.Density || c.Scale != d.Scale || c.Seed != d.Seed {
		t.Fatalf("bad input overrode defaults: %+v", c)
	}
}

func TestBuiltinPatternsRegistered(t *testing.T) {
	names := core.SourceNames()
	for _, want := range append([]string{"random", "noise", "file"}, PatternNames()...) {
		if !slices.Contains(names, want) {
			t.Errorf("source %q not registered", want)
		}
	}
}

func TestPatternSeedsEngine(t *testing.T) {
	g, err := core.Build("blinker", nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	eng, err := life.New(g.W, g.H, g.Columns())
	if err != nil {
		t.Fatalf("life.New: %v", err)
	}
	want := life.NewLiveSet(life.Coord{X: 1, Y: 0}, life.Coord{X: 1, Y: 1}, life.Coord{X: 1, Y: 2})
	if !eng.State().Live.Equal(want) {
		t.Fatalf("blinker seeded as %v", eng.State().Live.Coords())
	}
}

func TestPatternPlacedOnCanvas(t *testing.T) {
	g, err := core.Build("block", map[string]string{"w": "6", "h": "6"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.W != 6 || g.H != 6 || g.Count() != 4 {
		t.Fatalf("got %dx%d with %d cells", g.W, g.H, g.Count())
	}
	for _, p := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		if !g.At(p[0], p[1]) {
			t.Fatalf("block not centred: missing %v", p)
		}
	}
}

func TestGosperDimensions(t *testing.T) {
	g, err := Pattern("gosper")
	if err != nil {
		t.Fatalf("Pattern: %v", err)
	}
	if g.W != 36 || g.H != 9 || g.Count() != 36 {
		t.Fatalf("gosper = %dx%d with %d cells", g.W, g.H, g.Count())
	}
}

func TestParsePlaintext(t *testing.T) {
	src := "!Name: Glider\n!\n.O\n..O\nOOO\n"
	g, err := ParsePlaintext(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParsePlaintext: %v", err)
	}
	if g.W != 3 || g.H != 3 {
		t.Fatalf("size = %dx%d", g.W, g.H)
	}
	for _, p := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		if !g.At(p[0], p[1]) {
			t.Fatalf("missing %v", p)
		}
	}
	if _, err := ParsePlaintext(strings.NewReader("O#O\n")); !errors.Is(err, ErrSyntax) {
		t.Fatalf("err = %v, want ErrSyntax", err)
	}
}

func TestParseRLE(t *testing.T) {
	src := `#N Glider
#C comment
x = 3, y = 3, rule = B3/S23
bob$2bo$3o!`
	g, err := ParseRLE(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseRLE: %v", err)
	}
	want, _ := Pattern("glider")
	if !slices.Equal(g.Cells(), want.Cells()) {
		t.Fatalf("cells = %v, want %v", g.Cells(), want.Cells())
	}
}

func TestParseRLEMultilineAndBlankRows(t *testing.T) {
	src := "x = 2, y = 4\no\n$2$\n2o!\n"
	g, err := ParseRLE(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseRLE: %v", err)
	}
	if !g.At(0, 0) || !g.At(0, 3) || !g.At(1, 3) || g.Count() != 3 {
		t.Fatalf("cells = %v", g.Cells())
	}
}

func TestParseRLEErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"no header", "", ErrSyntax},
		{"bad header", "x = 3\nooo!", ErrSyntax},
		{"rule", "x = 1, y = 1, rule = B36/S23\no!", ErrRule},
		{"overflow", "x = 2, y = 1\n3o!", ErrSyntax},
		{"unterminated", "x = 2, y = 1\n2o", ErrSyntax},
		{"bad tag", "x = 2, y = 1\nox!", ErrSyntax},
		{"huge header", "x = 4000000000, y = 4000000000\no!", core.ErrTooLarge},
		{"huge run", "x = 3, y = 1\nb9223372036854775807o!", ErrSyntax},
		{"wrapping run", "x = 3, y = 1\nbo9223372036854775807o!", ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRLE(strings.NewReader(tt.src)); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOversizedCanvasRejected(t *testing.T) {
	for _, name := range []string{"random", "noise", "glider"} {
		_, err := core.Build(name, map[string]string{"w": "100000", "h": "100000"})
		if !errors.Is(err, core.ErrTooLarge) {
			t.Errorf("%s: err = %v, want ErrTooLarge", name, err)
		}
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blinker.rle")
	if err := os.WriteFile(path, []byte("x = 3, y = 1\n3o!\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := core.Build("file", map[string]string{"path": path})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.W != 3 || g.H != 1 || g.Count() != 3 {
		t.Fatalf("got %dx%d with %d cells", g.W, g.H, g.Count())
	}

	if _, err := core.Build("file", nil); !errors.Is(err, ErrNoPath) {
		t.Fatalf("err = %v, want ErrNoPath", err)
	}
}
