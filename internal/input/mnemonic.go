package input

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"cag-life/internal/bus"
	"cag-life/internal/lifeform"
	"cag-life/internal/supervisor"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
	ErrUnavailable    = errors.New("channel not available")
)

// Tasks starts and stops restartable tasks by id and reports their state.
type Tasks interface {
	supervisor.Lifecycle
	Start(id supervisor.TaskID) error
	Stop(id supervisor.TaskID) error
}

type command struct {
	usage string
	help  string
	args  int
	run   func(m *Mnemonic, args []string) (string, error)
}

var commands = map[string]command{
	"still": {
		usage: "still <type> <x> <y>",
		help:  "place a still life (block, beehive, loaf)",
		args:  3,
		run:   func(m *Mnemonic, a []string) (string, error) { return m.place(string(lifeform.KindStill), a[0], a[1], a[2]) },
	},
	"osc": {
		usage: "osc <type> <x> <y>",
		help:  "place an oscillator (blinker, toad, beacon)",
		args:  3,
		run:   func(m *Mnemonic, a []string) (string, error) { return m.place(string(lifeform.KindOsc), a[0], a[1], a[2]) },
	},
	"glider": {
		usage: "glider <x> <y>",
		help:  "place a glider",
		args:  2,
		run:   func(m *Mnemonic, a []string) (string, error) { return m.place(string(lifeform.KindGlider), "", a[0], a[1]) },
	},
	"clear": {
		usage: "clear",
		help:  "clear the grid",
		run: func(m *Mnemonic, _ []string) (string, error) {
			return "grid cleared", m.set(m.hub.GridEvents(), bus.EvtClearGrid)
		},
	},
	"pause": {
		usage: "pause",
		help:  "pause the simulation",
		run: func(m *Mnemonic, _ []string) (string, error) {
			return "paused", m.set(m.hub.JoystickEvents(), bus.EvtStop)
		},
	},
	"start": {
		usage: "start",
		help:  "resume the simulation",
		run: func(m *Mnemonic, _ []string) (string, error) {
			return "started", m.set(m.hub.JoystickEvents(), bus.EvtStart)
		},
	},
	"del": {
		usage: "del <task-id>",
		help:  "stop a task (0 simulator, 1 joystick, 2 grid editor)",
		args:  1,
		run: func(m *Mnemonic, a []string) (string, error) {
			return m.lifecycle(a[0], "deleted", Tasks.Stop)
		},
	},
	"cre": {
		usage: "cre <task-id>",
		help:  "start a task (0 simulator, 1 joystick, 2 grid editor)",
		args:  1,
		run: func(m *Mnemonic, a []string) (string, error) {
			return m.lifecycle(a[0], "created", Tasks.Start)
		},
	},
}

// Help lists every command with its usage.
func Help() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		c := commands[name]
		fmt.Fprintf(&b, "%-22s %s\n", c.usage, c.help)
	}
	fmt.Fprintf(&b, "%-22s %s\n", "help", "list commands")
	return b.String()
}

// Mnemonic executes command lines against the bus and the task supervisor.
type Mnemonic struct {
	hub         *bus.Hub
	tasks       Tasks
	sendTimeout time.Duration
}

// NewMnemonic creates a command mapper. tasks may be nil, in which case
// del and cre fail and placements are not checked against the simulator
// state.
func NewMnemonic(hub *bus.Hub, tasks Tasks, sendTimeout time.Duration) *Mnemonic {
	return &Mnemonic{hub: hub, tasks: tasks, sendTimeout: sendTimeout}
}

// Exec runs one command line and returns a short reply.
func (m *Mnemonic) Exec(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	name := strings.ToLower(fields[0])
	if name == "help" {
		return Help(), nil
	}
	c, ok := commands[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	if len(fields)-1 != c.args {
		return "", fmt.Errorf("%w: %s", ErrUsage, c.usage)
	}
	return c.run(m, fields[1:])
}

// Run executes lines until ctx is cancelled or lines is closed, creating the
// draw-requested signal if the hub has none yet. reply, if non-nil, receives
// every result.
func (m *Mnemonic) Run(ctx context.Context, lines <-chan string, reply func(string, error)) error {
	if m.hub.DrawSignal() == nil {
		m.hub.ResetDrawSignal()
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			out, err := m.Exec(line)
			if err != nil {
				log.Printf("command %q: %v", line, err)
			}
			if reply != nil {
				reply(out, err)
			}
		}
	}
}

func (m *Mnemonic) place(kind, typ, xs, ys string) (string, error) {
	id, err := lifeform.Parse(kind, typ)
	if err != nil {
		return "", err
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil {
		return "", fmt.Errorf("%w: coordinates must be integers, got %q %q", ErrUsage, xs, ys)
	}
	msg := bus.EditMessage{Kind: bus.EditStamp, Form: id, X: x, Y: y}
	q, sig := m.hub.Edits(), m.hub.DrawSignal()
	if q == nil || sig == nil || !m.simulatorRunning() {
		log.Printf("simulator not running, dropping %v", msg)
		return "", fmt.Errorf("%w: simulator not running", ErrUnavailable)
	}
	if !q.Send(msg, m.sendTimeout) {
		log.Printf("edit queue full, dropping %v", msg)
		return "", fmt.Errorf("%w: edit queue full", ErrUnavailable)
	}
	sig.Give()
	return fmt.Sprintf("%s at (%d,%d)", id, x, y), nil
}

func (m *Mnemonic) simulatorRunning() bool {
	return m.tasks == nil || m.tasks.State(supervisor.TaskSimulator) == supervisor.Running
}

func (m *Mnemonic) set(g *bus.EventGroup, bits bus.Bits) error {
	if g == nil {
		return ErrUnavailable
	}
	g.Set(bits)
	return nil
}

func (m *Mnemonic) lifecycle(arg, verb string, op func(Tasks, supervisor.TaskID) error) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return "", fmt.Errorf("%w: task id must be an integer, got %q", ErrUsage, arg)
	}
	if m.tasks == nil {
		return "", fmt.Errorf("%w: no task supervisor", ErrUnavailable)
	}
	id := supervisor.TaskID(n)
	if err := op(m.tasks, id); err != nil {
		return "", err
	}
	return fmt.Sprintf("task %d %s", n, verb), nil
}
