// Package term is the terminal front end. It provides a tcell surface for the
// display sink and routes keys to the grid editor, the virtual joystick and
// the command line.
package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"cag-life/internal/render"
)

const (
	glyphFull  = '█'
	glyphUpper = '▀'
	glyphLower = '▄'
	glyphEmpty = ' '
)

// Surface draws frames onto a tcell screen using half-block glyphs, two
// pixel rows per terminal row.
type Surface struct {
	mu     sync.Mutex
	screen tcell.Screen
	x, y   int
	w, h   int
	style  tcell.Style
}

// NewSurface creates a surface whose top-left corner is at (x, y).
func NewSurface(screen tcell.Screen, x, y int) *Surface {
	return &Surface{
		screen: screen,
		x:      x,
		y:      y,
		style:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
	}
}

// Rows returns the number of terminal rows a frame of pixel height h uses.
func Rows(h int) int { return (h + 1) / 2 }

// Size returns the terminal cells covered by the last frame.
func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w, s.h
}

// Present draws f and shows the screen.
func (s *Surface) Present(f *render.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w, s.h = f.W, Rows(f.H)
	for row := 0; row < s.h; row++ {
		for x := 0; x < f.W; x++ {
			s.screen.SetContent(s.x+x, s.y+row, glyph(f.At(x, 2*row), f.At(x, 2*row+1)), nil, s.style)
		}
	}
	s.screen.Show()
	return nil
}

// Blank clears the area of the last frame.
func (s *Surface) Blank() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for row := 0; row < s.h; row++ {
		for x := 0; x < s.w; x++ {
			s.screen.SetContent(s.x+x, s.y+row, glyphEmpty, nil, s.style)
		}
	}
	s.screen.Show()
	return nil
}

func glyph(top, bottom bool) rune {
	switch {
	case top && bottom:
		return glyphFull
	case top:
		return glyphUpper
	case bottom:
		return glyphLower
	}
	return glyphEmpty
}
