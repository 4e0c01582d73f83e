package input

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cag-life/internal/bus"
	"cag-life/internal/lifeform"
	"cag-life/internal/supervisor"
)

type fakeTasks struct {
	started, stopped []supervisor.TaskID
	down             map[supervisor.TaskID]bool
}

func (f *fakeTasks) Start(id supervisor.TaskID) error {
	if id > supervisor.TaskEditor {
		return supervisor.ErrUnknownTask
	}
	f.started = append(f.started, id)
	delete(f.down, id)
	return nil
}

func (f *fakeTasks) Stop(id supervisor.TaskID) error {
	if id > supervisor.TaskEditor {
		return supervisor.ErrUnknownTask
	}
	f.stopped = append(f.stopped, id)
	if f.down == nil {
		f.down = map[supervisor.TaskID]bool{}
	}
	f.down[id] = true
	return nil
}

func (f *fakeTasks) State(id supervisor.TaskID) supervisor.TaskState {
	if f.down[id] {
		return supervisor.Stopped
	}
	return supervisor.Running
}

func newTestMnemonic() (*Mnemonic, *bus.Hub, *fakeTasks) {
	hub := bus.NewWiredHub(5)
	tasks := &fakeTasks{}
	return NewMnemonic(hub, tasks, 0), hub, tasks
}

func TestMnemonicPlacesLifeForms(t *testing.T) {
	m, hub, _ := newTestMnemonic()
	cases := []struct {
		line string
		want bus.EditMessage
	}{
		{"osc blinker 10 10", bus.EditMessage{Kind: bus.EditStamp, Form: lifeform.Blinker, X: 10, Y: 10}},
		{"still 1 3 4", bus.EditMessage{Kind: bus.EditStamp, Form: lifeform.Beehive, X: 3, Y: 4}},
		{"GLIDER 0 0", bus.EditMessage{Kind: bus.EditStamp, Form: lifeform.Glider}},
	}
	for _, tc := range cases {
		if _, err := m.Exec(tc.line); err != nil {
			t.Fatalf("%q: %v", tc.line, err)
		}
		if !hub.DrawSignal().Take(0) {
			t.Fatalf("%q did not request a draw", tc.line)
		}
		got, ok := hub.Edits().Recv(0)
		if !ok || got != tc.want {
			t.Fatalf("%q queued %v, expected %v", tc.line, got, tc.want)
		}
	}
}

func TestMnemonicRejectsBadInput(t *testing.T) {
	m, hub, _ := newTestMnemonic()
	cases := []struct {
		line string
		want error
	}{
		{"spin 1 2", ErrUnknownCommand},
		{"osc blinker 1", ErrUsage},
		{"glider a b", ErrUsage},
		{"still tub 1 1", lifeform.ErrUnknownLifeForm},
		{"osc 3 1 1", lifeform.ErrUnknownLifeForm},
		{"del x", ErrUsage},
		{"del 7", supervisor.ErrUnknownTask},
	}
	for _, tc := range cases {
		if _, err := m.Exec(tc.line); !errors.Is(err, tc.want) {
			t.Errorf("%q: expected %v, got %v", tc.line, tc.want, err)
		}
	}
	if hub.Edits().Len() != 0 || hub.DrawSignal().Take(0) {
		t.Fatal("rejected command reached the controller")
	}
}

func TestMnemonicControlCommands(t *testing.T) {
	m, hub, tasks := newTestMnemonic()
	for _, line := range []string{"clear", "pause", "start", "del 0", "cre 1"} {
		if _, err := m.Exec(line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	if hub.GridEvents().Peek() != bus.EvtClearGrid {
		t.Fatalf("grid flags %b", hub.GridEvents().Peek())
	}
	if hub.JoystickEvents().Peek() != bus.EvtStart|bus.EvtStop {
		t.Fatalf("joystick flags %b", hub.JoystickEvents().Peek())
	}
	if len(tasks.stopped) != 1 || tasks.stopped[0] != supervisor.TaskSimulator {
		t.Fatalf("stopped %v", tasks.stopped)
	}
	if len(tasks.started) != 1 || tasks.started[0] != supervisor.TaskJoystick {
		t.Fatalf("started %v", tasks.started)
	}
}

func TestMnemonicRejectsPlacementWhileSimulatorDeleted(t *testing.T) {
	m, hub, _ := newTestMnemonic()
	if _, err := m.Exec("del 0"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Exec("osc blinker 10 10"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected %v, got %v", ErrUnavailable, err)
	}
	if hub.Edits().Len() != 0 || hub.DrawSignal().Take(0) {
		t.Fatal("placement reached the bus while the simulator was deleted")
	}

	if _, err := m.Exec("cre 0"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Exec("osc blinker 10 10"); err != nil {
		t.Fatal(err)
	}
	if hub.Edits().Len() != 1 || !hub.DrawSignal().Take(0) {
		t.Fatal("placement not delivered after the simulator was recreated")
	}
}

func TestMnemonicHelp(t *testing.T) {
	m, _, _ := newTestMnemonic()
	out, err := m.Exec("help")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"still", "osc", "glider", "clear", "pause", "start", "del", "cre"} {
		if !strings.Contains(out, name) {
			t.Errorf("help does not mention %s", name)
		}
	}
}

func TestMnemonicRunReplies(t *testing.T) {
	m, _, _ := newTestMnemonic()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	lines := make(chan string, 2)
	lines <- "pause"
	lines <- "bogus"
	close(lines)

	var errs []error
	if err := m.Run(ctx, lines, func(_ string, err error) { errs = append(errs, err) }); err != nil {
		t.Fatal(err)
	}
	if len(errs) != 2 || errs[0] != nil || !errors.Is(errs[1], ErrUnknownCommand) {
		t.Fatalf("unexpected replies %v", errs)
	}
}
