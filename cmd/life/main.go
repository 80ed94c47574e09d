//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sparse-life/internal/app"
	"sparse-life/internal/core"
	_ "sparse-life/internal/seed"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg, core.Size{W: cfg.CanvasW, H: cfg.CanvasH})
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	game := app.New(session)

	ebiten.SetWindowTitle("sparse-life: " + cfg.Source)
	ebiten.SetTPS(session.Camera().TargetFPS())
	ebiten.SetWindowSize(cfg.CanvasW, cfg.CanvasH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
