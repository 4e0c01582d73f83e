package term

import (
	"sync/atomic"

	"cag-life/internal/input"
	"cag-life/pkg/core"
)

// LEDBar mirrors the editor cursor on a ten segment bar using
// input.CursorCode. It implements input.Indicator.
type LEDBar struct {
	value atomic.Uint32
}

// LEDCount is the number of segments on the bar.
const LEDCount = 10

// Show displays the packed cursor code of p.
func (l *LEDBar) Show(p core.Point) { l.value.Store(uint32(input.CursorCode(p.X, p.Y))) }

// Value returns the displayed value.
func (l *LEDBar) Value() uint16 { return uint16(l.value.Load()) }

// String draws the bar most significant segment first.
func (l *LEDBar) String() string {
	v := l.Value()
	seg := make([]rune, LEDCount)
	for i := range seg {
		if v&(1<<(LEDCount-1-i)) != 0 {
			seg[i] = '●'
		} else {
			seg[i] = '○'
		}
	}
	return string(seg)
}
