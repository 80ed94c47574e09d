// Package render draws engine snapshots onto any surface that offers the
// Renderer capability set.
package render

import (
	"image/color"

	"sparse-life/internal/core"
	"sparse-life/internal/view"
	"sparse-life/pkg/life"
)

// Renderer is the minimal drawing surface. Coordinates are in surface units:
// pixels for windows, character cells for terminals.
type Renderer interface {
	DrawRect(x, y, w, h float64, c color.Color)
	DrawText(x, y int, text string, c color.Color)
	Clear()
	Width() int
	Height() int
}

// Painter draws live cells through a camera and a stats overlay on top.
type Painter struct {
	Cell color.Color
	Text color.Color
	// LineHeight is the vertical spacing between overlay lines.
	LineHeight int
	// Margin is the overlay offset from the top-left corner.
	Margin int
}

// NewPainter returns a painter with red cells and white text on 14px lines,
// sized for the 7x13 overlay font.
func NewPainter() *Painter {
	return &Painter{Cell: Color("red"), Text: Color("white"), LineHeight: 14, Margin: 14}
}

// Draw clears r and paints every visible live cell. It returns how many cells
// were on screen.
func (p *Painter) Draw(r Renderer, st life.State, cam *view.Settings) int {
	r.Clear()
	visible := 0
	for c := range st.Live.All() {
		if !cam.Visible(c) {
			continue
		}
		x, y, size := cam.Project(c)
		r.DrawRect(x, y, size, size, p.Cell)
		visible++
	}
	return visible
}

// DrawStats writes one overlay line per parameter.
func (p *Painter) DrawStats(r Renderer, snap core.ParameterSnapshot) {
	for i, line := range snap.Lines() {
		r.DrawText(p.Margin, p.Margin+i*p.LineHeight, line, p.Text)
	}
}
