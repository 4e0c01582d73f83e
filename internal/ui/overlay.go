//go:build ebiten

package ui

import (
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cag-life/pkg/core"
)

// Overlay outlines the grid editor cursor on top of the grid. It receives
// the cursor as an input.Indicator. F1 toggles it.
type Overlay struct {
	cursor atomic.Pointer[core.Point]
	hidden bool
	pixel  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Show records the cursor position.
func (o *Overlay) Show(p core.Point) { o.cursor.Store(&p) }

// Cursor returns the last recorded cursor position.
func (o *Overlay) Cursor() core.Point {
	if p := o.cursor.Load(); p != nil {
		return *p
	}
	return core.Point{}
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.hidden = !o.hidden
	}
}

// Draw outlines the cursor cell. cell and border are in frame pixels and
// scale is the frame to screen multiplier.
func (o *Overlay) Draw(screen *ebiten.Image, cell, border, scale int) {
	if o.hidden {
		return
	}
	c := o.Cursor()
	px := float64((border + c.X*cell) * scale)
	py := float64((border + c.Y*cell) * scale)
	size := float64(cell * scale)
	col := color.RGBA{R: 255, G: 120, B: 40, A: 255}

	o.drawRect(screen, px, py, size, 1, col)
	o.drawRect(screen, px, py+size-1, size, 1, col)
	o.drawRect(screen, px, py, 1, size, col)
	o.drawRect(screen, px+size-1, py, 1, size, col)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
