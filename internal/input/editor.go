package input

import (
	"context"
	"log"
	"time"

	"cag-life/internal/bus"
	"cag-life/internal/supervisor"
	"cag-life/pkg/core"
)

// Editor moves a cursor over the grid and turns keystrokes into control flags
// and cell edits.
//
//	W/A/S/D  move up/left/down/right
//	X        spawn the cell under the cursor
//	Z        kill the cell under the cursor
//	P        start/stop
//	O        move to origin
//	C        clear the grid
type Editor struct {
	hub         *bus.Hub
	lifecycle   supervisor.Lifecycle
	src         CharSource
	indicator   Indicator
	size        core.Size
	period      time.Duration
	sendTimeout time.Duration

	cursor core.Point
}

// NewEditor creates an editor for a grid of the given size. indicator may be
// nil. A nil lifecycle treats the simulator as always running.
func NewEditor(hub *bus.Hub, lifecycle supervisor.Lifecycle, src CharSource, indicator Indicator, size core.Size, period, sendTimeout time.Duration) *Editor {
	return &Editor{
		hub:         hub,
		lifecycle:   lifecycle,
		src:         src,
		indicator:   indicator,
		size:        size,
		period:      period,
		sendTimeout: sendTimeout,
	}
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() core.Point { return e.cursor }

// Run recreates the grid control group and polls the character source until
// ctx is cancelled.
func (e *Editor) Run(ctx context.Context) error {
	e.hub.ResetGridEvents()
	e.cursor = core.Point{}
	e.show()

	ticker := time.NewTicker(e.period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			e.Poll()
		}
	}
}

// Poll reads and handles at most one keystroke. While a select or unselect
// flag is still waiting for the simulator, keys stay in the source so that
// every flag the controller sees is paired with exactly one queued edit.
func (e *Editor) Poll() bool {
	if e.editPending() {
		return false
	}
	c := e.src.ReadChar()
	if c == 0 {
		return false
	}
	return e.Handle(c)
}

func (e *Editor) editPending() bool {
	g := e.hub.GridEvents()
	if g == nil || g.Peek()&(bus.EvtSelectCell|bus.EvtUnselectCell) == 0 {
		return false
	}
	return e.simulatorRunning()
}

func (e *Editor) simulatorRunning() bool {
	return e.lifecycle == nil || e.lifecycle.State(supervisor.TaskSimulator) == supervisor.Running
}

// Handle processes one keystroke. It reports whether the key was recognised.
func (e *Editor) Handle(c byte) bool {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	switch c {
	case 'W':
		if e.cursor.Y > 0 {
			e.cursor.Y--
		}
		e.set(bus.EvtMoveUp)
	case 'A':
		if e.cursor.X > 0 {
			e.cursor.X--
		}
		e.set(bus.EvtMoveLeft)
	case 'S':
		if e.cursor.Y < e.size.H-1 {
			e.cursor.Y++
		}
		e.set(bus.EvtMoveDown)
	case 'D':
		if e.cursor.X < e.size.W-1 {
			e.cursor.X++
		}
		e.set(bus.EvtMoveRight)
	case 'X':
		if e.submit(bus.EditSpawn) {
			e.set(bus.EvtSelectCell)
		}
	case 'Z':
		if e.submit(bus.EditKill) {
			e.set(bus.EvtUnselectCell)
		}
	case 'P':
		e.set(bus.EvtStartStop)
	case 'O':
		e.cursor = core.Point{}
		e.set(bus.EvtMoveOrigin)
	case 'C':
		e.set(bus.EvtClearGrid)
	default:
		log.Printf("invalid character %q, use W, A, S, D, P, X, Z, O or C", c)
		return false
	}
	log.Printf("%c -> cursor (%d,%d)", c, e.cursor.X, e.cursor.Y)
	e.show()
	return true
}

func (e *Editor) submit(kind bus.EditKind) bool {
	q := e.hub.Edits()
	if q == nil || !e.simulatorRunning() {
		log.Printf("simulator not running, dropping %v at (%d, %d)", kind, e.cursor.X, e.cursor.Y)
		return false
	}
	msg := bus.EditMessage{Kind: kind, X: e.cursor.X, Y: e.cursor.Y}
	if !q.Send(msg, e.sendTimeout) {
		log.Printf("edit queue full, dropping %v", msg)
		return false
	}
	return true
}

func (e *Editor) set(bits bus.Bits) {
	if g := e.hub.GridEvents(); g != nil {
		g.Set(bits)
	}
}

func (e *Editor) show() {
	if e.indicator != nil {
		e.indicator.Show(e.cursor)
	}
}
