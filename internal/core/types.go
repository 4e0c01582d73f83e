package core

import "time"

// Clock supplies monotonic time to loops that need to measure intervals.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock, which carries a monotonic reading.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
