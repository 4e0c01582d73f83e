package bus

import "time"

// Signal is a binary semaphore: any number of gives collapse into one
// pending take.
type Signal struct {
	ch chan struct{}
}

// NewSignal creates a signal in the taken state.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Give makes the signal available. Giving an available signal is a no-op.
func (s *Signal) Give() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// Take consumes the signal, waiting up to timeout for it to be given.
func (s *Signal) Take(timeout time.Duration) bool {
	select {
	case <-s.ch:
		return true
	default:
	}
	if timeout <= 0 {
		return false
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-s.ch:
		return true
	case <-t.C:
		return false
	}
}
