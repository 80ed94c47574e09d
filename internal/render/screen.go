//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Screen draws onto an ebiten image, usually the frame passed to Draw.
type Screen struct {
	dst *ebiten.Image
}

// NewScreen wraps dst.
func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{dst: dst}
}

// Reset points the renderer at a new frame image.
func (s *Screen) Reset(dst *ebiten.Image) { s.dst = dst }

// DrawRect fills an axis-aligned rectangle.
func (s *Screen) DrawRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawText draws text with its baseline at y.
func (s *Screen) DrawText(x, y int, msg string, c color.Color) {
	text.Draw(s.dst, msg, basicfont.Face7x13, x, y, c)
}

// Clear wipes the frame.
func (s *Screen) Clear() { s.dst.Clear() }

// Width returns the frame width in pixels.
func (s *Screen) Width() int { return s.dst.Bounds().Dx() }

// Height returns the frame height in pixels.
func (s *Screen) Height() int { return s.dst.Bounds().Dy() }
