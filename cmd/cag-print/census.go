package main

import (
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"cag-life/internal/config"
	"cag-life/pkg/core"
	"cag-life/pkg/life"
)

type soupResult struct {
	seed       int64
	initialPop int
	finalPop   int
	peakPop    int
	settledAt  int // generation the soup became periodic, -1 if it never did
	period     int
}

func (r soupResult) String() string {
	settled := "running"
	if r.settledAt >= 0 {
		settled = fmt.Sprintf("settled at %d (period %d)", r.settledAt, r.period)
	}
	return fmt.Sprintf("seed=%d pop %d -> %d (peak %d) %s", r.seed, r.initialPop, r.finalPop, r.peakPop, settled)
}

// maxPeriod is the longest cycle runSoup detects.
const maxPeriod = 2

// runSoup steps a random grid until it repeats one of its last maxPeriod
// states or the step budget runs out.
func runSoup(w, h int, density float64, seed int64, steps int) soupResult {
	g := core.NewGrid(w, h)
	life.Randomize(g, core.NewRNG(seed), density)
	return runGrid(g, seed, steps)
}

func runGrid(g *core.Grid, seed int64, steps int) soupResult {
	counts := life.NewCounts(g.W, g.H)
	res := soupResult{seed: seed, initialPop: life.Population(g), settledAt: -1}
	res.peakPop = res.initialPop

	history := make([][]uint8, 0, maxPeriod)
	for step := 1; step <= steps; step++ {
		history = append(history, g.CopyCells(nil))
		if len(history) > maxPeriod {
			history = history[1:]
		}
		life.Advance(g, counts)
		pop := life.Population(g)
		if pop > res.peakPop {
			res.peakPop = pop
		}
		for back := 1; back <= len(history); back++ {
			if slices.Equal(g.Cells(), history[len(history)-back]) {
				res.settledAt = step - back
				res.period = back
				res.finalPop = pop
				return res
			}
		}
	}
	res.finalPop = life.Population(g)
	return res
}

func runCensus(cfg *config.Config, soups, workers, steps int) {
	if workers < 1 {
		workers = 1
	}
	fmt.Printf("Running %d soups on %dx%d at density %.2f (%d workers, %d steps)\n",
		soups, cfg.Width, cfg.Height, cfg.Density, workers, steps)

	jobs := make(chan int64)
	results := make(chan soupResult)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSoup(cfg.Width, cfg.Height, cfg.Density, seed, steps)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		for i := 0; i < soups; i++ {
			jobs <- cfg.Seed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []soupResult
	unsettled := 0
	for res := range results {
		all = append(all, res)
		if res.settledAt < 0 {
			unsettled++
		}
	}
	sort.Slice(all, func(i, j int) bool { return lifetime(all[i], steps) > lifetime(all[j], steps) })

	fmt.Printf("\nLongest lived (elapsed %s, %d still running after %d steps):\n",
		time.Since(start).Round(time.Millisecond), unsettled, steps)
	for i := 0; i < len(all) && i < 5; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}
}

func lifetime(r soupResult, steps int) int {
	if r.settledAt < 0 {
		return steps + 1
	}
	return r.settledAt
}
