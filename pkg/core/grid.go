package core

// Grid stores a fixed-size board of cells in row-major order. A cell holds 1
// when alive and 0 when dead.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so the owner can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Alive reports whether the cell at (x, y) is alive. Out-of-bounds cells are
// dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.data[y*g.W+x] != 0
}

// Set writes the cell at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[y*g.W+x] = v
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// CopyCells copies the cell values into dst, growing it when needed, and
// returns the filled slice.
func (g *Grid) CopyCells(dst []uint8) []uint8 {
	if cap(dst) < len(g.data) {
		dst = make([]uint8, len(g.data))
	}
	dst = dst[:len(g.data)]
	copy(dst, g.data)
	return dst
}
