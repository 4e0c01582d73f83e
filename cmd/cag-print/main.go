// Command cag-print runs the simulation without a display. By default it
// prints the grid as text every few generations; with -census it runs many
// random soups in parallel and reports how they settle.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"cag-life/internal/bus"
	"cag-life/internal/config"
	internalcore "cag-life/internal/core"
	"cag-life/internal/render"
	"cag-life/internal/sim"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 20, "generations to simulate")
	every := flag.Int("every", 1, "print every n-th generation")
	census := flag.Int("census", 0, "run this many random soups instead of printing")
	workers := flag.Int("workers", runtime.NumCPU(), "number of census worker goroutines")
	flag.Parse()
	cfg.Validate()

	if *census > 0 {
		runCensus(cfg, *census, *workers, *steps)
		return
	}
	if err := printRun(cfg, *steps, *every); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printRun drives a controller on a manual clock, one interval per
// generation.
func printRun(cfg *config.Config, steps, every int) error {
	if every < 1 {
		every = 1
	}
	clock := internalcore.NewManualClock(time.Unix(0, 0))
	hub := bus.NewWiredHub(cfg.EditQueueCap)
	ctrl := sim.New(cfg, hub, sim.WithClock(clock))
	ctrl.Start()

	border := 0
	if cfg.Border {
		border = 1
	}
	frame := &render.Frame{}
	show := func() {
		snap := ctrl.Snapshot()
		frame.Draw(snap, 1, border)
		fmt.Printf("generation %d  population %d\n%s\n", snap.Generation, snap.Population, frame)
	}

	show()
	for i := 1; i <= steps; i++ {
		clock.Advance(cfg.Interval)
		ctrl.Iterate()
		if i%every == 0 {
			show()
		}
	}
	return nil
}
