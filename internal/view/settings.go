// Package view holds the display-only camera: pan offset, zoom and the
// surface size. The engine never sees any of it.
package view

import (
	"fmt"

	"sparse-life/internal/core"
	"sparse-life/pkg/life"

	"golang.org/x/exp/constraints"
)

// Direction selects how pointer movement maps onto the camera.
type Direction string

const (
	// Normal drags the world against the pointer and zooms in on positive
	// scroll.
	Normal Direction = "normal"
	// Reverse inverts Normal.
	Reverse Direction = "reverse"
)

// ParseDirection validates s as a Direction.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Normal, Reverse:
		return d, nil
	}
	return "", fmt.Errorf("view: direction %q is neither %q nor %q", s, Normal, Reverse)
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Reverse {
		return Normal
	}
	return Reverse
}

const (
	// DefaultMinZoom and DefaultMaxZoom bound the pixels-per-cell factor.
	DefaultMinZoom = 1
	DefaultMaxZoom = 100
	// DefaultTargetFPS is the frame rate drivers aim for.
	DefaultTargetFPS = 60
)

// Point is a position in cell units.
type Point struct {
	X, Y float64
}

// Settings is the camera state. The render area is the offset added to every
// cell coordinate before scaling by zoom.
type Settings struct {
	renderArea Point
	drag       Direction
	zoomDir    Direction
	zoom       float64
	minZoom    float64
	maxZoom    float64
	targetFPS  int
	canvas     core.Size
}

// NewSettings returns a camera at the origin with zoom 1.
func NewSettings(canvas core.Size, drag, zoom Direction) *Settings {
	return &Settings{
		drag:      drag,
		zoomDir:   zoom,
		zoom:      DefaultMinZoom,
		minZoom:   DefaultMinZoom,
		maxZoom:   DefaultMaxZoom,
		targetFPS: DefaultTargetFPS,
		canvas:    canvas,
	}
}

// RenderArea returns the pan offset in cells.
func (s *Settings) RenderArea() Point { return s.renderArea }

// SetRenderArea replaces the pan offset.
func (s *Settings) SetRenderArea(p Point) { s.renderArea = p }

// DragDirection reports how pointer drags pan the view.
func (s *Settings) DragDirection() Direction { return s.drag }

// SetDragDirection changes how pointer drags pan the view.
func (s *Settings) SetDragDirection(d Direction) { s.drag = d }

// ZoomDirection reports which scroll direction zooms in.
func (s *Settings) ZoomDirection() Direction { return s.zoomDir }

// SetZoomDirection changes which scroll direction zooms in.
func (s *Settings) SetZoomDirection(d Direction) { s.zoomDir = d }

// Zoom returns the current pixels-per-cell factor.
func (s *Settings) Zoom() float64 { return s.zoom }

// MinZoom returns the lower zoom bound.
func (s *Settings) MinZoom() float64 { return s.minZoom }

// MaxZoom returns the upper zoom bound.
func (s *Settings) MaxZoom() float64 { return s.maxZoom }

// TargetFPS returns the frame rate drivers aim for.
func (s *Settings) TargetFPS() int { return s.targetFPS }

// CanvasSize returns the drawing surface size in pixels (or terminal cells).
func (s *Settings) CanvasSize() core.Size { return s.canvas }

// SetCanvasSize records a resized drawing surface.
func (s *Settings) SetCanvasSize(c core.Size) { s.canvas = c }

// SetZoom sets the zoom level, clamped to [MinZoom, MaxZoom].
func (s *Settings) SetZoom(z float64) {
	s.zoom = clamp(z, s.minZoom, s.maxZoom)
}

// SetTargetFPS sets the target frame rate; non-positive values are ignored.
func (s *Settings) SetTargetFPS(fps int) {
	if fps > 0 {
		s.targetFPS = fps
	}
}

// Drag pans by a pointer movement of (dx, dy) pixels.
func (s *Settings) Drag(dx, dy float64) {
	sign := -1.0
	if s.drag == Reverse {
		sign = 1
	}
	s.renderArea.X += sign * dx / s.zoom
	s.renderArea.Y += sign * dy / s.zoom
}

// Pan moves the render area by whole cells, independent of drag direction.
func (s *Settings) Pan(dx, dy int) {
	s.renderArea.X += float64(dx)
	s.renderArea.Y += float64(dy)
}

// Scroll changes zoom by notches wheel steps.
func (s *Settings) Scroll(notches float64) {
	sign := 1.0
	if s.zoomDir == Reverse {
		sign = -1
	}
	s.SetZoom(s.zoom + sign*notches)
}

// CenterOn moves the render area so c sits in the middle of the canvas.
func (s *Settings) CenterOn(c life.Coord) {
	s.renderArea.X = float64(s.canvas.W)/(2*s.zoom) - float64(c.X)
	s.renderArea.Y = float64(s.canvas.H)/(2*s.zoom) - float64(c.Y)
}

// Project maps c to the top-left corner of its on-screen square and the
// square's side length.
func (s *Settings) Project(c life.Coord) (x, y, size float64) {
	return (float64(c.X) + s.renderArea.X) * s.zoom,
		(float64(c.Y) + s.renderArea.Y) * s.zoom,
		s.zoom
}

// Visible reports whether any part of c's square falls on the canvas.
func (s *Settings) Visible(c life.Coord) bool {
	x, y, size := s.Project(c)
	return x < float64(s.canvas.W) && y < float64(s.canvas.H) && x+size > 0 && y+size > 0
}

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
