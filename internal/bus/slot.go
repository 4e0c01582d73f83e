package bus

import "time"

// SnapshotSlot carries render snapshots from the controller to the display.
// It holds a single value: publishing replaces a snapshot nobody has read yet.
type SnapshotSlot struct {
	ch chan *Snapshot
}

// NewSnapshotSlot creates an empty slot.
func NewSnapshotSlot() *SnapshotSlot {
	return &SnapshotSlot{ch: make(chan *Snapshot, 1)}
}

// Publish stores s, discarding any unread snapshot. It never blocks.
func (s *SnapshotSlot) Publish(snap *Snapshot) {
	for {
		select {
		case s.ch <- snap:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

// Recv returns the newest snapshot, waiting up to timeout for one.
func (s *SnapshotSlot) Recv(timeout time.Duration) (*Snapshot, bool) {
	select {
	case snap := <-s.ch:
		return snap, true
	default:
	}
	if timeout <= 0 {
		return nil, false
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case snap := <-s.ch:
		return snap, true
	case <-t.C:
		return nil, false
	}
}

// Pending reports whether an unread snapshot is waiting.
func (s *SnapshotSlot) Pending() bool { return len(s.ch) > 0 }
