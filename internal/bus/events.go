package bus

import (
	"sync"
	"time"
)

// Bits is a set of event flags.
type Bits uint32

// Has reports whether every bit of mask is set.
func (b Bits) Has(mask Bits) bool { return b&mask == mask }

// Grid control flags, set by the grid editor and the command interface.
const (
	EvtMoveUp Bits = 1 << iota
	EvtMoveLeft
	EvtMoveDown
	EvtMoveRight
	EvtSelectCell
	EvtUnselectCell
	EvtStartStop
	EvtMoveOrigin
	EvtClearGrid

	GridControlMask = EvtMoveUp | EvtMoveLeft | EvtMoveDown | EvtMoveRight |
		EvtSelectCell | EvtUnselectCell | EvtStartStop | EvtMoveOrigin | EvtClearGrid
)

// Joystick control flags, set by the joystick mapper and the command
// interface.
const (
	EvtStart Bits = 1 << iota
	EvtStop
	EvtInterval1
	EvtInterval2
	EvtInterval5
	EvtInterval10

	JoystickControlMask = EvtStart | EvtStop | EvtInterval1 | EvtInterval2 | EvtInterval5 | EvtInterval10
)

// Intervals lists the selectable tick intervals with their flags, in drain
// order.
var Intervals = []struct {
	Bit      Bits
	Interval time.Duration
}{
	{EvtInterval1, 1 * time.Second},
	{EvtInterval2, 2 * time.Second},
	{EvtInterval5, 5 * time.Second},
	{EvtInterval10, 10 * time.Second},
}

// IntervalBit returns the flag selecting d, or 0 if d is not selectable.
func IntervalBit(d time.Duration) Bits {
	for _, iv := range Intervals {
		if iv.Interval == d {
			return iv.Bit
		}
	}
	return 0
}

// EventGroup is a latched bitset. Setters OR flags in; the consumer waits for
// any flag of interest, reads the set and clears what it handled.
type EventGroup struct {
	mu     sync.Mutex
	bits   Bits
	notify chan struct{}
}

// NewEventGroup creates a group with no flags set.
func NewEventGroup() *EventGroup {
	return &EventGroup{notify: make(chan struct{})}
}

// Set ORs bits into the group and wakes any waiter.
func (g *EventGroup) Set(bits Bits) Bits {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.bits |= bits
	close(g.notify)
	g.notify = make(chan struct{})
	return g.bits
}

// Clear removes bits from the group and returns the flags left set.
func (g *EventGroup) Clear(bits Bits) Bits {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.bits &^= bits
	return g.bits
}

// Peek returns the current flags without waiting or clearing.
func (g *EventGroup) Peek() Bits {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.bits
}

// Take atomically returns the flags of mask that are set and clears them.
func (g *EventGroup) Take(mask Bits) Bits {
	g.mu.Lock()
	defer g.mu.Unlock()
	got := g.bits & mask
	g.bits &^= got
	return got
}

// Wait returns the flags of mask that are set, waiting up to timeout for at
// least one of them. Flags are left set; the caller clears what it handles.
func (g *EventGroup) Wait(mask Bits, timeout time.Duration) Bits {
	var t *time.Timer
	for {
		g.mu.Lock()
		got := g.bits & mask
		ch := g.notify
		g.mu.Unlock()
		if got != 0 || timeout <= 0 {
			if t != nil {
				t.Stop()
			}
			return got
		}
		if t == nil {
			t = time.NewTimer(timeout)
		}
		select {
		case <-ch:
		case <-t.C:
			return g.Peek() & mask
		}
	}
}
