//go:build !ebiten

package ui

import "cag-life/pkg/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Show is a no-op in headless builds.
func (o *Overlay) Show(core.Point) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int, int, int) {}
