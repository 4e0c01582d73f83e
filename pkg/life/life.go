// Package life implements Conway's Game of Life on a bounded grid. Cells
// beyond the edges are always dead; the board never wraps around.
package life

import (
	"cag-life/pkg/core"
)

// Counts holds the number of live Moore neighbours (0..8) of every cell of a
// grid, in the same row-major layout.
type Counts struct {
	W, H int
	data []uint8
}

// NewCounts allocates a zeroed count matrix.
func NewCounts(w, h int) *Counts {
	return &Counts{W: w, H: h, data: make([]uint8, w*h)}
}

// At returns the neighbour count for (x, y).
func (c *Counts) At(x, y int) int { return int(c.data[y*c.W+x]) }

// Values exposes the backing slice.
func (c *Counts) Values() []uint8 { return c.data }

// Clear kills every cell of g.
func Clear(g *core.Grid) { g.Clear() }

// NeighborCount returns a freshly computed neighbour matrix for g.
func NeighborCount(g *core.Grid) *Counts {
	c := NewCounts(g.W, g.H)
	NeighborCountInto(g, c)
	return c
}

// NeighborCountInto recomputes every entry of counts from g. The matrix is
// resized when its shape does not match the grid.
func NeighborCountInto(g *core.Grid, counts *Counts) {
	w, h := g.W, g.H
	if counts.W != w || counts.H != h || len(counts.data) != w*h {
		counts.W, counts.H = w, h
		counts.data = make([]uint8, w*h)
	}
	cells := g.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := x + dx
					if nx < 0 || nx >= w {
						continue
					}
					n += int(cells[ny*w+nx])
				}
			}
			counts.data[y*w+x] = uint8(n)
		}
	}
}

// Step returns the next generation of g given its neighbour counts. Neither
// argument is modified.
func Step(g *core.Grid, counts *Counts) *core.Grid {
	next := g.Clone()
	StepInPlace(next, counts)
	return next
}

// StepInPlace applies the rule to g using counts computed from the same
// generation: a live cell with fewer than two or more than three neighbours
// dies, a dead cell with exactly three is born, every other cell keeps its
// state.
func StepInPlace(g *core.Grid, counts *Counts) {
	cells := g.Cells()
	for i, alive := range cells {
		n := counts.data[i]
		switch {
		case alive != 0 && (n < 2 || n > 3):
			cells[i] = 0
		case alive == 0 && n == 3:
			cells[i] = 1
		}
	}
}

// Advance computes the neighbour counts into counts and steps g in place.
func Advance(g *core.Grid, counts *Counts) {
	NeighborCountInto(g, counts)
	StepInPlace(g, counts)
}

// SetCell writes a single cell; out-of-bounds coordinates are a no-op.
func SetCell(g *core.Grid, x, y int, alive bool) { g.Set(x, y, alive) }

// Population returns the number of live cells.
func Population(g *core.Grid) int {
	n := 0
	for _, c := range g.Cells() {
		n += int(c)
	}
	return n
}

// Randomize fills g with a random soup where each cell is alive with
// probability density.
func Randomize(g *core.Grid, rng *core.RNG, density float64) {
	core.FillBinary(rng, g.Cells(), density)
}
