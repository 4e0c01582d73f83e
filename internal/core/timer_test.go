package core

import (
	"testing"
	"time"
)

func TestTickTimerFiresOncePerInterval(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	timer := NewTickTimer(clock, time.Second)

	clock.Advance(999 * time.Millisecond)
	if timer.Due() {
		t.Fatal("timer fired before the interval elapsed")
	}
	clock.Advance(time.Millisecond)
	if !timer.Due() {
		t.Fatal("timer did not fire after the interval elapsed")
	}
	if timer.Due() {
		t.Fatal("timer fired twice for a single interval")
	}
}

func TestTickTimerDoesNotReplayMissedIntervals(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	timer := NewTickTimer(clock, time.Second)

	clock.Advance(5 * time.Second)
	if !timer.Due() {
		t.Fatal("expected overdue timer to fire")
	}
	if timer.Due() {
		t.Fatal("missed intervals must not be replayed")
	}
}

func TestTickTimerSetIntervalKeepsPhase(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	timer := NewTickTimer(clock, 10*time.Second)

	clock.Advance(3 * time.Second)
	timer.SetInterval(2 * time.Second)
	if timer.Elapsed() != 3*time.Second {
		t.Fatalf("interval change moved the baseline: elapsed=%v", timer.Elapsed())
	}
	if !timer.Due() {
		t.Fatal("expected shorter interval to be due against the old baseline")
	}
}
