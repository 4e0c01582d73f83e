package bus

import "time"

// EditQueue is a bounded FIFO of edit messages. Any number of producers may
// send; a single consumer receives.
type EditQueue struct {
	ch chan EditMessage
}

// NewEditQueue creates a queue holding at most capacity messages.
func NewEditQueue(capacity int) *EditQueue {
	if capacity <= 0 {
		capacity = 1
	}
	return &EditQueue{ch: make(chan EditMessage, capacity)}
}

// Send enqueues msg. When the queue is full it waits up to timeout for room
// and then gives up, returning false.
func (q *EditQueue) Send(msg EditMessage, timeout time.Duration) bool {
	select {
	case q.ch <- msg:
		return true
	default:
	}
	if timeout <= 0 {
		return false
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case q.ch <- msg:
		return true
	case <-t.C:
		return false
	}
}

// Recv takes the oldest message, waiting up to timeout for one to arrive. An
// empty queue is reported with ok == false.
func (q *EditQueue) Recv(timeout time.Duration) (EditMessage, bool) {
	select {
	case m := <-q.ch:
		return m, true
	default:
	}
	if timeout <= 0 {
		return EditMessage{}, false
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case m := <-q.ch:
		return m, true
	case <-t.C:
		return EditMessage{}, false
	}
}

// Len returns the number of queued messages.
func (q *EditQueue) Len() int { return len(q.ch) }

// Cap returns the queue capacity.
func (q *EditQueue) Cap() int { return cap(q.ch) }
