package bus

import (
	"fmt"
	"time"

	"cag-life/internal/lifeform"
	"cag-life/pkg/core"
)

// EditKind selects what an EditMessage does to the grid.
type EditKind uint8

const (
	EditKill EditKind = iota + 1
	EditSpawn
	EditStamp
)

func (k EditKind) String() string {
	switch k {
	case EditKill:
		return "kill"
	case EditSpawn:
		return "spawn"
	case EditStamp:
		return "stamp"
	default:
		return fmt.Sprintf("EditKind(%d)", uint8(k))
	}
}

// EditMessage asks the controller to change the grid at (X, Y). Form is only
// meaningful for EditStamp.
type EditMessage struct {
	Kind EditKind
	Form lifeform.ID
	X, Y int
}

func (m EditMessage) String() string {
	if m.Kind == EditStamp {
		return fmt.Sprintf("stamp %v at (%d, %d)", m.Form, m.X, m.Y)
	}
	return fmt.Sprintf("%v cell at (%d, %d)", m.Kind, m.X, m.Y)
}

// Snapshot is an immutable copy of the grid plus the controller state at the
// moment it was taken.
type Snapshot struct {
	W, H       int
	Cells      []uint8
	Generation uint64
	Population int
	Running    bool
	Interval   time.Duration
	Cursor     core.Point
}

// Alive reports whether (x, y) was alive in the snapshot.
func (s *Snapshot) Alive(x, y int) bool {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return false
	}
	return s.Cells[y*s.W+x] != 0
}

// Empty reports whether every cell of the snapshot is dead.
func (s *Snapshot) Empty() bool {
	for _, c := range s.Cells {
		if c != 0 {
			return false
		}
	}
	return true
}
