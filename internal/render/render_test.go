package render

import (
	"image/color"
	"testing"

	"sparse-life/internal/core"
	"sparse-life/internal/view"
	"sparse-life/pkg/life"

	"github.com/gdamore/tcell/v2"
)

type rect struct{ x, y, w, h float64 }

type recorder struct {
	w, h    int
	cleared int
	rects   []rect
	texts   map[int]string
}

func (r *recorder) DrawRect(x, y, w, h float64, _ color.Color) {
	r.rects = append(r.rects, rect{x, y, w, h})
}

func (r *recorder) DrawText(_, y int, text string, _ color.Color) {
	if r.texts == nil {
		r.texts = map[int]string{}
	}
	r.texts[y] = text
}

func (r *recorder) Clear()      { r.cleared++ }
func (r *recorder) Width() int  { return r.w }
func (r *recorder) Height() int { return r.h }

func TestPainterCullsOffscreenCells(t *testing.T) {
	cam := view.NewSettings(core.Size{W: 20, H: 20}, view.Normal, view.Normal)
	cam.SetZoom(2)
	st := life.FromCoords(
		life.Coord{X: 0, Y: 0},
		life.Coord{X: 3, Y: 4},
		life.Coord{X: -1, Y: 0},
		life.Coord{X: 10, Y: 0},
	).State()

	rec := &recorder{w: 20, h: 20}
	p := NewPainter()
	visible := p.Draw(rec, st, cam)
	if visible != 2 || len(rec.rects) != 2 {
		t.Fatalf("visible = %d, rects = %v", visible, rec.rects)
	}
	if rec.cleared != 1 {
		t.Fatalf("cleared %d times", rec.cleared)
	}
	for _, r := range rec.rects {
		if r.w != 2 || r.h != 2 {
			t.Fatalf("rect size %v, want zoom-sized squares", r)
		}
		if r != (rect{0, 0, 2, 2}) && r != (rect{6, 8, 2, 2}) {
			t.Fatalf("unexpected rect %v", r)
		}
	}
}

func TestDrawStats(t *testing.T) {
	cam := view.NewSettings(core.Size{W: 600, H: 400}, view.Reverse, view.Normal)
	st := life.FromCoords(life.Coord{X: 1, Y: 1}).WithGeneration(7).State()

	rec := &recorder{}
	p := NewPainter()
	p.DrawStats(rec, Stats(st, cam, 1, nil))

	want := map[int]string{
		14:  "Frame: 7",
		28:  "Total points: 1",
		42:  "Points on screen: 1",
		56:  "Zoom: 1",
		70:  "Drag direction: reverse",
		84:  "Zoom direction: normal",
		98:  "Render area: (0.0, 0.0)",
		112: "Canvas size: 600x400",
	}
	if len(rec.texts) != len(want) {
		t.Fatalf("drew %d lines: %v", len(rec.texts), rec.texts)
	}
	for y, line := range want {
		if rec.texts[y] != line {
			t.Errorf("line at %d = %q, want %q", y, rec.texts[y], line)
		}
	}
}

func TestStatsIncludesTiming(t *testing.T) {
	cam := view.NewSettings(core.Size{W: 10, H: 10}, view.Normal, view.Normal)
	snap := Stats(life.FromCoords().State(), cam, 0, core.NewFrameClock())
	if len(snap.Groups) != 3 || snap.Groups[2].Name != "Timing" {
		t.Fatalf("groups = %+v", snap.Groups)
	}
}

func TestColorFallback(t *testing.T) {
	if Color("red") != (color.RGBA{R: 255, A: 255}) {
		t.Fatal("red mismatch")
	}
	if Color("chartreuse") != Color("white") {
		t.Fatal("unknown colour should fall back to white")
	}
}

func TestTerminalRenderer(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(8, 4)

	term := NewTerminal(screen)
	if term.Width() != 8 || term.Height() != 4 {
		t.Fatalf("size = %dx%d", term.Width(), term.Height())
	}
	term.Clear()
	term.DrawRect(-1, 1, 2.5, 1, Color("red"))
	term.DrawText(6, 0, "abc", Color("white"))
	term.Show()

	cells, w, _ := screen.GetContents()
	at := func(x, y int) tcell.SimCell { return cells[y*w+x] }

	red := tcell.NewRGBColor(255, 0, 0)
	for _, x := range []int{0, 1} {
		_, bg, _ := at(x, 1).Style.Decompose()
		if bg != red {
			t.Fatalf("cell (%d,1) background = %v, want red", x, bg)
		}
	}
	if _, bg, _ := at(2, 1).Style.Decompose(); bg == red {
		t.Fatal("rect overflowed to column 2")
	}
	if got := string(at(6, 0).Runes) + string(at(7, 0).Runes); got != "ab" {
		t.Fatalf("text = %q, want clipped %q", got, "ab")
	}
}
