package term

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"cag-life/internal/core"
	"cag-life/internal/input"
)

// ErrQuit is returned by Run when the user asks to leave.
var ErrQuit = errors.New("quit")

// Mode selects where keystrokes go.
type Mode int

const (
	// ModeGrid sends keys to the grid editor and arrows to the joystick.
	ModeGrid Mode = iota
	// ModeCommand collects a command line for the mnemonic interface.
	ModeCommand
)

func (m Mode) String() string {
	if m == ModeCommand {
		return "CMD"
	}
	return "GRID"
}

// Frontend owns the terminal: it routes keys and draws the status lines
// below the grid.
type Frontend struct {
	screen tcell.Screen
	keys   *input.KeyBuffer
	stick  *input.VirtualStick
	leds   *LEDBar
	status core.ParameterProvider
	lines  chan<- string
	row    int

	mu    sync.Mutex
	mode  Mode
	line  []rune
	reply string
}

// NewFrontend creates a front end drawing its status lines from row
// statusRow. Completed command lines are sent on lines.
func NewFrontend(screen tcell.Screen, keys *input.KeyBuffer, stick *input.VirtualStick, leds *LEDBar, status core.ParameterProvider, lines chan<- string, statusRow int) *Frontend {
	return &Frontend{
		screen: screen,
		keys:   keys,
		stick:  stick,
		leds:   leds,
		status: status,
		lines:  lines,
		row:    statusRow,
	}
}

// Mode returns the current input mode.
func (f *Frontend) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// Reply shows the result of a command on the status line.
func (f *Frontend) Reply(out string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case err != nil:
		f.reply = "error: " + err.Error()
	default:
		f.reply = strings.TrimSpace(strings.ReplaceAll(out, "\n", "  "))
	}
}

// Run polls terminal events and redraws the status lines until ctx is
// cancelled or the user quits.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if key, ok := ev.(*tcell.EventKey); ok {
				if !f.HandleKey(key.Key(), key.Rune()) {
					return ErrQuit
				}
			}
		case <-ticker.C:
			f.Draw()
		}
	}
}

// HandleKey routes one keystroke. It returns false when the user quits.
func (f *Frontend) HandleKey(key tcell.Key, r rune) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch key {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		if f.mode == ModeGrid {
			f.mode = ModeCommand
		} else {
			f.mode = ModeGrid
		}
		return true
	}

	if f.mode == ModeCommand {
		f.commandKey(key, r)
		return true
	}
	switch key {
	case tcell.KeyEscape:
		return false
	case tcell.KeyUp:
		f.stick.Up()
	case tcell.KeyDown:
		f.stick.Down()
	case tcell.KeyLeft:
		f.stick.Left()
	case tcell.KeyRight:
		f.stick.Right()
	case tcell.KeyRune:
		switch {
		case r == ' ':
			f.stick.Press()
		case r < 0x80:
			f.keys.Push(byte(r))
		}
	}
	return true
}

func (f *Frontend) commandKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape:
		f.line = f.line[:0]
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(f.line) > 0 {
			f.line = f.line[:len(f.line)-1]
		}
	case tcell.KeyEnter:
		line := string(f.line)
		f.line = f.line[:0]
		select {
		case f.lines <- line:
		default:
			f.reply = "busy, command dropped"
		}
	case tcell.KeyRune:
		f.line = append(f.line, r)
	}
}

// StatusLine renders the simulation parameters and the LED bar.
func (f *Frontend) StatusLine() string {
	p := f.status.Parameters()
	get := func(key string) string {
		v, _ := p.Lookup(key)
		return v.Value
	}
	state := "stopped"
	if get("running") == "true" {
		state = "running"
	}
	return fmt.Sprintf("%-4s %s every %s  gen %s  pop %s  cursor %s  %s",
		f.Mode(), state, get("interval"), get("generation"), get("population"), get("cursor"), f.leds)
}

// PromptLine renders the command line, or the last reply in grid mode.
func (f *Frontend) PromptLine() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == ModeCommand {
		return "> " + string(f.line)
	}
	if f.reply != "" {
		return f.reply
	}
	return "WASD move  X/Z spawn/kill  P start/stop  O origin  C clear  arrows joystick  Tab command"
}

// Draw redraws the status lines.
func (f *Frontend) Draw() {
	w, _ := f.screen.Size()
	f.drawLine(f.row, f.StatusLine(), w)
	f.drawLine(f.row+1, f.PromptLine(), w)
	f.screen.Show()
}

func (f *Frontend) drawLine(y int, s string, w int) {
	style := tcell.StyleDefault
	x := 0
	for _, r := range s {
		if x >= w {
			break
		}
		f.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		f.screen.SetContent(x, y, ' ', nil, style)
	}
}
