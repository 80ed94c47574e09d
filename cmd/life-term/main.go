// Command life-term runs the simulation in a terminal.
package main

import (
	"flag"
	"log"
	"time"

	"sparse-life/internal/app"
	"sparse-life/internal/core"
	"sparse-life/internal/render"
	_ "sparse-life/internal/seed"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	w, h := screen.Size()
	session, err := app.NewSession(cfg, core.Size{W: w, H: h})
	if err != nil {
		return err
	}
	painter := session.Painter()
	painter.LineHeight = 1
	painter.Margin = 0
	term := render.NewTerminal(screen)

	done := make(chan struct{})
	defer close(done)
	events := pumpEvents(screen, done)

	step := core.NewFixedStep(cfg.TPS)
	frame := time.NewTicker(time.Second / time.Duration(session.Camera().TargetFPS()))
	defer frame.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := handle(session, screen, ev)
			if err != nil || quit {
				return err
			}
		case <-frame.C:
			if step.ShouldStep() {
				session.Tick()
			}
			session.Render(term)
			term.Show()
		}
	}
}

// pumpEvents forwards screen events until the screen is finalised or done is
// closed. The returned channel is closed when the goroutine exits.
func pumpEvents(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

func handle(s *app.Session, screen tcell.Screen, ev tcell.Event) (quit bool, err error) {
	cam := s.Camera()
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		cam.SetCanvasSize(core.Size{W: w, H: h})
		screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyEnter:
			s.Resume()
		case tcell.KeyUp:
			cam.Pan(0, 1)
		case tcell.KeyDown:
			cam.Pan(0, -1)
		case tcell.KeyLeft:
			cam.Pan(1, 0)
		case tcell.KeyRight:
			cam.Pan(-1, 0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true, nil
			case ' ':
				s.TogglePause()
			case 'n':
				s.StepOnce()
			case 'r':
				return false, s.Reset(s.Seed())
			case 's':
				return false, s.Reset(time.Now().UnixNano())
			case 'd':
				cam.SetDragDirection(cam.DragDirection().Toggle())
			case 'z':
				cam.SetZoomDirection(cam.ZoomDirection().Toggle())
			case '+', '=':
				cam.Scroll(1)
			case '-':
				cam.Scroll(-1)
			}
		}
	}
	return false, nil
}
