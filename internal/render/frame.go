// Package render turns grid snapshots into pixel frames.
package render

import (
	"strings"

	"cag-life/internal/bus"
)

// Frame is a monochrome pixel buffer. Each pixel is 0 (off) or 1 (on).
type Frame struct {
	W, H int
	Pix  []uint8
}

// NewFrame allocates a blank frame.
func NewFrame(w, h int) *Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Frame{W: w, H: h, Pix: make([]uint8, w*h)}
}

// FrameSize returns the pixel dimensions of a w*h grid drawn with square
// cells of the given size inside a border of the given width.
func FrameSize(w, h, cell, border int) (int, int) {
	return w*cell + 2*border, h*cell + 2*border
}

// At reports whether the pixel at (x, y) is on. Out of range pixels are off.
func (f *Frame) At(x, y int) bool {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return false
	}
	return f.Pix[y*f.W+x] != 0
}

// Clear turns every pixel off.
func (f *Frame) Clear() {
	for i := range f.Pix {
		f.Pix[i] = 0
	}
}

func (f *Frame) fillRect(x0, y0, w, h int) {
	for y := y0; y < y0+h && y < f.H; y++ {
		if y < 0 {
			continue
		}
		row := f.Pix[y*f.W:]
		for x := x0; x < x0+w && x < f.W; x++ {
			if x >= 0 {
				row[x] = 1
			}
		}
	}
}

// Draw renders snap into f, resizing f if needed. Every live cell becomes a
// filled cell*cell block. A non-zero border draws a frame of that width
// around the grid.
func (f *Frame) Draw(snap *bus.Snapshot, cell, border int) {
	if cell < 1 {
		cell = 1
	}
	if border < 0 {
		border = 0
	}
	w, h := FrameSize(snap.W, snap.H, cell, border)
	if f.W != w || f.H != h {
		*f = *NewFrame(w, h)
	} else {
		f.Clear()
	}
	if border > 0 {
		f.fillRect(0, 0, w, border)
		f.fillRect(0, h-border, w, border)
		f.fillRect(0, 0, border, h)
		f.fillRect(w-border, 0, border, h)
	}
	for y := 0; y < snap.H; y++ {
		for x := 0; x < snap.W; x++ {
			if snap.Alive(x, y) {
				f.fillRect(border+x*cell, border+y*cell, cell, cell)
			}
		}
	}
}

// Render is a convenience wrapper allocating a new frame for snap.
func Render(snap *bus.Snapshot, cell, border int) *Frame {
	f := &Frame{}
	f.Draw(snap, cell, border)
	return f
}

// String draws the frame as text, '#' for on and '.' for off.
func (f *Frame) String() string {
	var b strings.Builder
	b.Grow((f.W + 1) * f.H)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			if f.Pix[y*f.W+x] != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
