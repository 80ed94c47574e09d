package app

import (
	"fmt"

	"sparse-life/internal/core"
	"sparse-life/internal/render"
	"sparse-life/internal/view"
	"sparse-life/pkg/life"
)

// Session is the host-side state shared by every driver: the engine, the
// camera and the pause controls. Drivers own the loop and call Tick and
// Render at whatever cadence they like.
type Session struct {
	cfg     *Config
	engine  *life.Shared
	cam     *view.Settings
	clock   *core.FrameClock
	painter *render.Painter

	paused   bool
	tickOnce bool
	seed     int64
}

// NewSession seeds an engine from cfg and sets up a camera for a canvas of
// the given size.
func NewSession(cfg *Config, canvas core.Size) (*Session, error) {
	drag, zoom, err := cfg.Directions()
	if err != nil {
		return nil, err
	}
	cam := view.NewSettings(canvas, drag, zoom)
	cam.SetZoom(cfg.Zoom)
	cam.SetTargetFPS(cfg.TPS)

	s := &Session{
		cfg:     cfg,
		cam:     cam,
		clock:   core.NewFrameClock(),
		painter: render.NewPainter(),
	}
	eng, err := s.seedEngine(cfg.Seed)
	if err != nil {
		return nil, err
	}
	s.engine = life.NewShared(eng)
	s.seed = cfg.Seed
	s.center(eng.State())
	return s, nil
}

// Reset reseeds the engine from the configured source.
func (s *Session) Reset(seed int64) error {
	eng, err := s.seedEngine(seed)
	if err != nil {
		return err
	}
	s.engine.Replace(eng)
	s.seed = seed
	s.tickOnce = false
	s.center(eng.State())
	return nil
}

func (s *Session) seedEngine(seed int64) (*life.Engine, error) {
	g, err := core.Build(s.cfg.Source, s.cfg.SeedOptions(seed))
	if err != nil {
		return nil, err
	}
	eng, err := life.New(g.W, g.H, g.Columns())
	if err != nil {
		return nil, fmt.Errorf("seed %q: %w", s.cfg.Source, err)
	}
	return eng, nil
}

func (s *Session) center(st life.State) {
	lo, hi, ok := st.Live.Bounds()
	if !ok {
		return
	}
	s.cam.CenterOn(life.Coord{X: (lo.X + hi.X) / 2, Y: (lo.Y + hi.Y) / 2})
}

// Tick advances one generation unless paused. A pending single step runs even
// while paused.
func (s *Session) Tick() bool {
	if s.paused && !s.tickOnce {
		return false
	}
	s.clock.Measure(s.engine.Update)
	s.tickOnce = false
	return true
}

// TogglePause flips the paused flag.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Resume clears the paused flag.
func (s *Session) Resume() { s.paused = false }

// StepOnce requests a single generation on the next Tick.
func (s *Session) StepOnce() { s.tickOnce = true }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Seed returns the seed of the current run.
func (s *Session) Seed() int64 { return s.seed }

// Camera exposes the display settings for input handling.
func (s *Session) Camera() *view.Settings { return s.cam }

// Painter exposes the painter so drivers can adjust overlay spacing.
func (s *Session) Painter() *render.Painter { return s.painter }

// State returns the latest published engine snapshot.
func (s *Session) State() life.State { return s.engine.State() }

// Engine exposes the guarded engine for drivers that sample it from other
// goroutines.
func (s *Session) Engine() *life.Shared { return s.engine }

// Render draws the current generation and the stats overlay onto r.
func (s *Session) Render(r render.Renderer) {
	st := s.engine.State()
	visible := s.painter.Draw(r, st, s.cam)
	s.painter.DrawStats(r, render.Stats(st, s.cam, visible, s.clock))
}
