package life

import (
	"slices"
	"testing"

	"cag-life/pkg/core"
)

func gridWith(w, h int, pts ...[2]int) *core.Grid {
	g := core.NewGrid(w, h)
	for _, p := range pts {
		g.Set(p[0], p[1], true)
	}
	return g
}

func expectCells(t *testing.T, g *core.Grid, want map[[2]int]bool, stage string) {
	t.Helper()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			alive := g.Alive(x, y)
			if want[[2]int{x, y}] != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, x, y, alive, want[[2]int{x, y}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := gridWith(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	g = Step(g, NeighborCount(g))
	expectCells(t, g, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "after first step")

	g = Step(g, NeighborCount(g))
	expectCells(t, g, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, "after second step")
}

func TestNeighborCountEmptyGridIsZero(t *testing.T) {
	g := core.NewGrid(64, 16)
	for i, n := range NeighborCount(g).Values() {
		if n != 0 {
			t.Fatalf("cell %d has %d neighbours on an empty grid", i, n)
		}
	}
}

func TestNeighborCountDoesNotWrap(t *testing.T) {
	w, h := 8, 6
	g := core.NewGrid(w, h)
	for i := range g.Cells() {
		g.Cells()[i] = 1
	}
	c := NeighborCount(g)

	cases := []struct {
		x, y, want int
	}{
		{0, 0, 3},
		{w - 1, 0, 3},
		{0, h - 1, 3},
		{w - 1, h - 1, 3},
		{3, 0, 5},
		{0, 2, 5},
		{w - 1, 3, 5},
		{4, h - 1, 5},
		{3, 3, 8},
	}
	for _, tc := range cases {
		if got := c.At(tc.x, tc.y); got != tc.want {
			t.Errorf("count at (%d,%d) = %d, expected %d", tc.x, tc.y, got, tc.want)
		}
	}

	// A single live cell in the corner must not be seen from the opposite edge.
	g = gridWith(w, h, [2]int{0, 0})
	c = NeighborCount(g)
	if c.At(w-1, 0) != 0 || c.At(0, h-1) != 0 || c.At(w-1, h-1) != 0 {
		t.Fatal("neighbour counting wrapped around the grid edge")
	}
}

func TestNeighborCountIntoOverwritesStaleValues(t *testing.T) {
	g := gridWith(4, 4, [2]int{1, 1})
	c := NewCounts(4, 4)
	for i := range c.Values() {
		c.Values()[i] = 7
	}
	NeighborCountInto(g, c)
	if !slices.Equal(c.Values(), NeighborCount(g).Values()) {
		t.Fatal("stale counts survived a recompute")
	}
}

func TestStepRule(t *testing.T) {
	cases := []struct {
		name      string
		alive     bool
		neighbors int
		want      bool
	}{
		{"lonely dies", true, 0, false},
		{"one neighbour dies", true, 1, false},
		{"two survives", true, 2, true},
		{"three survives", true, 3, true},
		{"four dies", true, 4, false},
		{"eight dies", true, 8, false},
		{"dead with three is born", false, 3, true},
		{"dead with two stays dead", false, 2, false},
		{"dead with four stays dead", false, 4, false},
	}
	for _, tc := range cases {
		g := core.NewGrid(1, 1)
		g.Set(0, 0, tc.alive)
		c := NewCounts(1, 1)
		c.Values()[0] = uint8(tc.neighbors)
		next := Step(g, c)
		if next.Alive(0, 0) != tc.want {
			t.Errorf("%s: alive=%v, expected %v", tc.name, next.Alive(0, 0), tc.want)
		}
	}
}

func TestStepIsPure(t *testing.T) {
	g := randomGrid(t)
	before := append([]uint8(nil), g.Cells()...)
	c := NeighborCount(g)

	a := Step(g, c)
	b := Step(g, c)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Step produced different results for identical input")
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("Step mutated its input grid")
	}
}

func randomGrid(t *testing.T) *core.Grid {
	t.Helper()
	g := core.NewGrid(32, 16)
	Randomize(g, core.NewRNG(42), 0.35)
	if Population(g) == 0 {
		t.Fatal("random soup is empty")
	}
	return g
}

func TestStampIsAdditive(t *testing.T) {
	blinker := Template{
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	}
	g := core.NewGrid(64, 16)
	g.Set(10, 10, true)
	Stamp(g, blinker, 10, 10)

	want := map[[2]int]bool{{10, 10}: true, {11, 10}: true, {11, 11}: true, {11, 12}: true}
	expectCells(t, g, want, "after stamp")
}

func TestStampClipsAtEdges(t *testing.T) {
	block := Template{{1, 1}, {1, 1}}
	g := core.NewGrid(4, 4)
	Stamp(g, block, 3, 3)
	if Population(g) != 1 || !g.Alive(3, 3) {
		t.Fatalf("expected only (3,3) alive, population=%d", Population(g))
	}
}
