//go:build ebiten

package ui

import (
	"image/color"

	"cag-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the grid view.
type HUD struct {
	provider   core.ParameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
	title      string
}

// NewHUD constructs a HUD reading from provider with the given panel width.
func NewHUD(provider core.ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{provider: provider, width: width, title: "Game of Life"}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter text.
func (h *HUD) Update() {
	if h == nil || h.provider == nil {
		return
	}
	h.lines = Lines(h.provider.Parameters())
}

// Draw paints the HUD panel at offsetX, filling the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += infoSpacing
	for _, line := range h.lines {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 18
	infoSpacing    = 24
)
