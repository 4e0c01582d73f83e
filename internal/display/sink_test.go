package display

import (
	"context"
	"errors"
	"testing"
	"time"

	"cag-life/internal/bus"
	"cag-life/internal/render"
	"cag-life/internal/supervisor"
)

type fakeSurface struct {
	frames []string
	blanks int
	err    error
}

func (f *fakeSurface) Present(fr *render.Frame) error {
	f.frames = append(f.frames, fr.String())
	return f.err
}

func (f *fakeSurface) Blank() error {
	f.blanks++
	return nil
}

type fixedState supervisor.TaskState

func (s fixedState) State(supervisor.TaskID) supervisor.TaskState { return supervisor.TaskState(s) }

func TestSinkPresentsNewestSnapshot(t *testing.T) {
	hub := bus.NewWiredHub(5)
	surf := &fakeSurface{}
	s := NewSink(hub, surf, fixedState(supervisor.Running), 1, 0, 0)

	hub.Snapshots().Publish(&bus.Snapshot{W: 2, H: 1, Cells: []uint8{1, 0}, Generation: 1})
	hub.Snapshots().Publish(&bus.Snapshot{W: 2, H: 1, Cells: []uint8{0, 1}, Generation: 2})
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if len(surf.frames) != 1 || surf.frames[0] != ".#\n" {
		t.Fatalf("unexpected frames %q", surf.frames)
	}
	if s.Last().Generation != 2 {
		t.Fatalf("drew generation %d", s.Last().Generation)
	}

	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if len(surf.frames) != 1 {
		t.Fatal("empty slot produced a frame")
	}
}

func TestSinkClearOnlyWhenSimulatorInactive(t *testing.T) {
	hub := bus.NewWiredHub(5)
	surf := &fakeSurface{}
	state := fixedState(supervisor.Running)
	s := NewSink(hub, surf, &state, 1, 0, 0)

	hub.GridEvents().Set(bus.EvtClearGrid)
	s.Step()
	if surf.blanks != 0 {
		t.Fatal("blanked while the simulator was running")
	}
	if !hub.GridEvents().Peek().Has(bus.EvtClearGrid) {
		t.Fatal("sink consumed clear-grid meant for the simulator")
	}

	state = fixedState(supervisor.Stopped)
	s.Step()
	s.Step()
	if surf.blanks != 1 {
		t.Fatalf("expected a single blank, got %d", surf.blanks)
	}
	if hub.GridEvents().Peek() != 0 {
		t.Fatal("clear-grid flag left set")
	}
}

func TestSinkReportsSurfaceErrors(t *testing.T) {
	hub := bus.NewWiredHub(5)
	boom := errors.New("boom")
	s := NewSink(hub, &fakeSurface{err: boom}, nil, 1, 0, 0)
	hub.Snapshots().Publish(&bus.Snapshot{W: 1, H: 1, Cells: []uint8{1}})
	if err := s.Step(); !errors.Is(err, boom) {
		t.Fatalf("expected surface error, got %v", err)
	}
}

func TestSinkRunStopsOnCancel(t *testing.T) {
	hub := bus.NewHub()
	s := NewSink(hub, &fakeSurface{}, nil, 1, 0, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(time.Second):
		t.Fatal("sink did not stop")
	}
	if hub.Snapshots() == nil {
		t.Fatal("sink did not create the snapshot slot")
	}
}

func TestSinkParametersFollowLastSnapshot(t *testing.T) {
	hub := bus.NewWiredHub(5)
	s := NewSink(hub, &fakeSurface{}, nil, 1, 0, 0)
	if len(s.Parameters().Groups) != 0 {
		t.Fatal("parameters before any snapshot")
	}
	hub.Snapshots().Publish(&bus.Snapshot{W: 1, H: 1, Cells: []uint8{1}, Generation: 7, Population: 1})
	s.Step()
	p, ok := s.Parameters().Lookup("generation")
	if !ok || p.Value != "7" {
		t.Fatalf("generation parameter = %+v", p)
	}
}
