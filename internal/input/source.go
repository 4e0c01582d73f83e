// Package input turns raw key, joystick and command input into edit messages
// and control flags on the bus.
package input

import "cag-life/pkg/core"

// CharSource yields single characters without blocking. Zero means no
// character is available.
type CharSource interface {
	ReadChar() byte
}

// StickMax is the full-scale reading of a 12-bit joystick axis.
const StickMax = 4095

// Stick is one joystick reading.
type Stick struct {
	X, Y    uint16
	Pressed bool
}

// StickSource is polled for joystick readings.
type StickSource interface {
	ReadStick() Stick
}

// Indicator shows the editor cursor on an external output.
type Indicator interface {
	Show(cursor core.Point)
}

// CursorCode packs a cursor position for a ten LED bar: the column in the
// high six bits and the row in the low four. Only grids up to 64x16 fit;
// larger coordinates wrap.
func CursorCode(x, y int) uint16 {
	return (uint16(x)&0x3f)<<4 | uint16(y)&0x0f
}
