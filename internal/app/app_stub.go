//go:build !ebiten

package app

import (
	"context"
	"fmt"

	"cag-life/internal/input"
	"cag-life/internal/render"
	"cag-life/internal/ui"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// Options mirrors the GUI build options.
type Options struct {
	GridW, GridH int
	Cell, Border int
	Scale        int
	Keys         *input.KeyBuffer
	Stick        *input.VirtualStick
	Lines        chan<- string
	Overlay      *ui.Overlay
	HUD          *ui.HUD
}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(context.Context, Options) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Present always reports that the GUI build tag is missing.
func (g *Game) Present(*render.Frame) error {
	return fmt.Errorf("app.Game.Present requires building with the 'ebiten' tag")
}

// Blank always reports that the GUI build tag is missing.
func (g *Game) Blank() error {
	return fmt.Errorf("app.Game.Blank requires building with the 'ebiten' tag")
}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
