// Package supervisor starts and stops the restartable tasks (simulator,
// joystick, grid editor) and reports their lifecycle state.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"
)

var (
	ErrUnknownTask    = errors.New("unknown task")
	ErrTaskRunning    = errors.New("task already running")
	ErrTaskNotRunning = errors.New("task not running")
	ErrStopTimeout    = errors.New("task did not stop in time")
)

// TaskID identifies a restartable task. The numeric values are the ids
// accepted by the del/cre commands.
type TaskID int

const (
	TaskSimulator TaskID = 0
	TaskJoystick  TaskID = 1
	TaskEditor    TaskID = 2
)

// TaskState is the lifecycle state of a task.
type TaskState int

const (
	NotStarted TaskState = iota
	Running
	Stopped
)

func (s TaskState) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("TaskState(%d)", int(s))
	}
}

// TaskFunc is the body of a task. It must return once ctx is cancelled.
type TaskFunc func(ctx context.Context) error

// Lifecycle reports task states.
type Lifecycle interface {
	State(id TaskID) TaskState
}

type task struct {
	name   string
	run    TaskFunc
	state  TaskState
	cancel context.CancelFunc
	done   chan struct{}
}

// Supervisor owns a set of registered tasks.
type Supervisor struct {
	mu          sync.Mutex
	parent      context.Context
	tasks       map[TaskID]*task
	stopTimeout time.Duration
}

// New creates a supervisor whose tasks are children of parent.
func New(parent context.Context) *Supervisor {
	return &Supervisor{parent: parent, tasks: map[TaskID]*task{}, stopTimeout: time.Second}
}

// Register adds a task in the NotStarted state. Registering an id twice
// replaces the previous definition only if it is not running.
func (s *Supervisor) Register(id TaskID, name string, run TaskFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok && t.state == Running {
		return
	}
	s.tasks[id] = &task{name: name, run: run}
}

// Start launches a registered task that is not running.
func (s *Supervisor) Start(id TaskID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTask, id)
	}
	if t.state == Running {
		return fmt.Errorf("%s: %w", t.name, ErrTaskRunning)
	}
	ctx, cancel := context.WithCancel(s.parent)
	done := make(chan struct{})
	t.cancel, t.done, t.state = cancel, done, Running
	go func() {
		defer close(done)
		if err := t.run(ctx); err != nil {
			log.Printf("task %s exited: %v", t.name, err)
		}
		s.mu.Lock()
		if t.done == done {
			t.state = Stopped
		}
		s.mu.Unlock()
	}()
	log.Printf("created the %s task", t.name)
	return nil
}

// Stop cancels a running task and waits a bounded time for it to exit. The
// task is reported as Stopped as soon as Stop is called.
func (s *Supervisor) Stop(id TaskID) error {
	s.mu.Lock()
	t, ok := s.tasks[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownTask, id)
	}
	if t.state != Running {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", t.name, ErrTaskNotRunning)
	}
	t.state = Stopped
	cancel, done, name := t.cancel, t.done, t.name
	s.mu.Unlock()

	cancel()
	select {
	case <-done:
		log.Printf("deleted the %s task", name)
		return nil
	case <-time.After(s.stopTimeout):
		return fmt.Errorf("%s: %w", name, ErrStopTimeout)
	}
}

// State reports the lifecycle state of id. Unknown ids are NotStarted.
func (s *Supervisor) State(id TaskID) TaskState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok {
		return t.state
	}
	return NotStarted
}

// Name returns the registered name of id.
func (s *Supervisor) Name(id TaskID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok {
		return t.name
	}
	return ""
}

// StartAll starts every registered task that is not running, in id order.
func (s *Supervisor) StartAll() error {
	var errs []error
	for _, id := range s.ids() {
		if s.State(id) == Running {
			continue
		}
		if err := s.Start(id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// StopAll stops every running task. A task that exits on its own while
// StopAll runs is not an error.
func (s *Supervisor) StopAll() error {
	var errs []error
	for _, id := range s.ids() {
		if s.State(id) != Running {
			continue
		}
		if err := s.Stop(id); err != nil && !errors.Is(err, ErrTaskNotRunning) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Supervisor) ids() []TaskID {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]TaskID, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
