package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Terminal draws onto a tcell screen, one character cell per surface unit.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal wraps an initialised tcell screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// DrawRect fills every character cell the rectangle touches.
func (t *Terminal) DrawRect(x, y, w, h float64, c color.Color) {
	sw, sh := t.screen.Size()
	x0 := max(int(math.Floor(x)), 0)
	y0 := max(int(math.Floor(y)), 0)
	x1 := min(int(math.Ceil(x+w)), sw)
	y1 := min(int(math.Ceil(y+h)), sh)
	style := tcell.StyleDefault.Background(termColor(c))
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			t.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

// DrawText writes text starting at (x, y), clipped to the screen.
func (t *Terminal) DrawText(x, y int, text string, c color.Color) {
	sw, sh := t.screen.Size()
	if y < 0 || y >= sh {
		return
	}
	style := tcell.StyleDefault.Foreground(termColor(c))
	for i, r := range []rune(text) {
		if cx := x + i; cx >= 0 && cx < sw {
			t.screen.SetContent(cx, y, r, nil, style)
		}
	}
}

// Clear blanks the screen buffer.
func (t *Terminal) Clear() { t.screen.Clear() }

// Width returns the screen width in columns.
func (t *Terminal) Width() int {
	w, _ := t.screen.Size()
	return w
}

// Height returns the screen height in rows.
func (t *Terminal) Height() int {
	_, h := t.screen.Size()
	return h
}

// Show flushes the buffer to the terminal.
func (t *Terminal) Show() { t.screen.Show() }

func termColor(c color.Color) tcell.Color {
	r, g, b, _ := rgba8(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
