// Command life-run advances a seeded population without a display and logs
// population statistics.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"sparse-life/internal/app"
	"sparse-life/internal/core"
	_ "sparse-life/internal/seed"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	gens := flag.Int("gens", 1000, "number of generations to run")
	report := flag.Duration("report", time.Second, "interval between progress lines (0 disables)")
	throttle := flag.Bool("throttle", false, "pace generations at -tps instead of running flat out")
	flag.Parse()

	logger := log.New(os.Stderr, "life-run: ", log.LstdFlags)

	session, err := app.NewSession(cfg, core.Size{W: cfg.CanvasW, H: cfg.CanvasH})
	if err != nil {
		logger.Fatalf("start: %v", err)
	}
	eng := session.Engine()
	start := eng.State()
	logger.Printf("seeded %q: %d live cells", cfg.Source, start.Live.Len())

	done := make(chan struct{})
	var wg sync.WaitGroup
	if *report > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticker := time.NewTicker(*report)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					st := eng.State()
					logger.Printf("generation %d: %d live cells", st.Generation, st.Live.Len())
				}
			}
		}()
	}

	step := core.NewFixedStep(cfg.TPS)
	began := time.Now()
	for i := 0; i < *gens; i++ {
		if *throttle {
			for !step.ShouldStep() {
				time.Sleep(step.Step() / 4)
			}
		}
		session.Tick()
	}
	elapsed := time.Since(began)
	close(done)
	wg.Wait()

	st := eng.State()
	fmt.Printf("generations: %d\n", st.Generation)
	fmt.Printf("population: %d (start %d)\n", st.Live.Len(), start.Live.Len())
	if lo, hi, ok := st.Live.Bounds(); ok {
		fmt.Printf("bounds: (%d,%d)..(%d,%d)\n", lo.X, lo.Y, hi.X, hi.Y)
	}
	if st.Generation > 0 {
		fmt.Printf("time per generation: %s\n", elapsed/time.Duration(*gens))
	}
}
