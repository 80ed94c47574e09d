//go:build ebiten

package app

import (
	"time"

	"sparse-life/internal/core"
	"sparse-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	screen  *render.Screen

	dragging     bool
	lastX, lastY int
}

// New constructs a Game for the provided session.
func New(s *Session) *Game {
	return &Game{session: s, screen: render.NewScreen(nil)}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Reset(g.session.Seed()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.session.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	cam := g.session.Camera()
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		cam.SetDragDirection(cam.DragDirection().Toggle())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		cam.SetZoomDirection(cam.ZoomDirection().Toggle())
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		cam.Scroll(wy)
	}
	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			cam.Drag(float64(mx-g.lastX), float64(my-g.lastY))
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastX, g.lastY = mx, my

	g.session.Tick()
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Reset(screen)
	g.session.Render(g.screen)
}

// Layout tracks the window size so the camera culls against the real canvas.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.session.Camera().SetCanvasSize(core.Size{W: outsideWidth, H: outsideHeight})
	return outsideWidth, outsideHeight
}
