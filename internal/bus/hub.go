// Package bus provides the channels through which input coordinators, the
// simulation controller and the display sink talk to each other.
package bus

import "sync/atomic"

// Hub hands out the current instance of every channel. Each primitive is
// recreated by the task that consumes (or, for event groups, owns) it when
// that task starts, so a restarted task never inherits stale state. A nil
// primitive means its owner has not started yet.
type Hub struct {
	edits     atomic.Pointer[EditQueue]
	snapshots atomic.Pointer[SnapshotSlot]
	grid      atomic.Pointer[EventGroup]
	joystick  atomic.Pointer[EventGroup]
	draw      atomic.Pointer[Signal]
}

// NewHub returns a hub with no primitives created.
func NewHub() *Hub { return &Hub{} }

// NewWiredHub returns a hub with every primitive created up front.
func NewWiredHub(editCapacity int) *Hub {
	h := &Hub{}
	h.ResetEdits(editCapacity)
	h.ResetSnapshots()
	h.ResetGridEvents()
	h.ResetJoystickEvents()
	h.ResetDrawSignal()
	return h
}

// Edits returns the current edit queue.
func (h *Hub) Edits() *EditQueue { return h.edits.Load() }

// ResetEdits replaces the edit queue with an empty one.
func (h *Hub) ResetEdits(capacity int) *EditQueue {
	q := NewEditQueue(capacity)
	h.edits.Store(q)
	return q
}

// Snapshots returns the current snapshot slot.
func (h *Hub) Snapshots() *SnapshotSlot { return h.snapshots.Load() }

// ResetSnapshots replaces the snapshot slot with an empty one.
func (h *Hub) ResetSnapshots() *SnapshotSlot {
	s := NewSnapshotSlot()
	h.snapshots.Store(s)
	return s
}

// GridEvents returns the grid control event group.
func (h *Hub) GridEvents() *EventGroup { return h.grid.Load() }

// ResetGridEvents replaces the grid control group with a cleared one.
func (h *Hub) ResetGridEvents() *EventGroup {
	g := NewEventGroup()
	h.grid.Store(g)
	return g
}

// JoystickEvents returns the joystick control event group.
func (h *Hub) JoystickEvents() *EventGroup { return h.joystick.Load() }

// ResetJoystickEvents replaces the joystick control group with a cleared one.
func (h *Hub) ResetJoystickEvents() *EventGroup {
	g := NewEventGroup()
	h.joystick.Store(g)
	return g
}

// DrawSignal returns the draw-requested signal.
func (h *Hub) DrawSignal() *Signal { return h.draw.Load() }

// ResetDrawSignal replaces the draw-requested signal with a taken one.
func (h *Hub) ResetDrawSignal() *Signal {
	s := NewSignal()
	h.draw.Store(s)
	return s
}
