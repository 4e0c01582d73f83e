// Package display renders published grid snapshots onto a surface.
package display

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"cag-life/internal/bus"
	"cag-life/internal/core"
	"cag-life/internal/render"
	"cag-life/internal/sim"
	"cag-life/internal/supervisor"
)

// Surface is an output device for rendered frames.
type Surface interface {
	Present(f *render.Frame) error
	Blank() error
}

// Sink waits for snapshots and draws the newest one. While the simulator is
// not running it also honours clear-grid requests by blanking the surface.
type Sink struct {
	hub       *bus.Hub
	surface   Surface
	lifecycle supervisor.Lifecycle

	cell, border int
	wait         time.Duration

	frame *render.Frame
	last  atomic.Pointer[bus.Snapshot]
}

// NewSink creates a sink drawing cells as cell*cell pixel blocks. wait bounds
// each snapshot wait.
func NewSink(hub *bus.Hub, surface Surface, lifecycle supervisor.Lifecycle, cell, border int, wait time.Duration) *Sink {
	return &Sink{
		hub:       hub,
		surface:   surface,
		lifecycle: lifecycle,
		cell:      cell,
		border:    border,
		wait:      wait,
		frame:     &render.Frame{},
	}
}

// Last returns the most recently drawn snapshot, or nil. It is safe to call
// from other goroutines.
func (s *Sink) Last() *bus.Snapshot { return s.last.Load() }

// Parameters describes the most recently drawn snapshot.
func (s *Sink) Parameters() core.ParameterSnapshot { return sim.Parameters(s.Last()) }

// Run draws until ctx is cancelled, creating the snapshot slot if the hub
// has none yet.
func (s *Sink) Run(ctx context.Context) error {
	if s.hub.Snapshots() == nil {
		s.hub.ResetSnapshots()
	}
	for ctx.Err() == nil {
		if err := s.Step(); err != nil {
			log.Printf("display: %v", err)
		}
	}
	return nil
}

// Step waits once for a snapshot, draws it if one arrived, then checks for a
// pending clear-display request.
func (s *Sink) Step() error {
	if slot := s.hub.Snapshots(); slot != nil {
		if snap, ok := slot.Recv(s.wait); ok {
			s.last.Store(snap)
			s.frame.Draw(snap, s.cell, s.border)
			if err := s.surface.Present(s.frame); err != nil {
				return err
			}
		}
	} else {
		time.Sleep(s.wait)
	}
	return s.checkClear()
}

func (s *Sink) checkClear() error {
	if s.lifecycle != nil && s.lifecycle.State(supervisor.TaskSimulator) == supervisor.Running {
		return nil
	}
	g := s.hub.GridEvents()
	if g == nil || g.Take(bus.EvtClearGrid) == 0 {
		return nil
	}
	s.last.Store(nil)
	return s.surface.Blank()
}
