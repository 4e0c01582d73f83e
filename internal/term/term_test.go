package term

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"cag-life/internal/bus"
	"cag-life/internal/core"
	"cag-life/internal/input"
	"cag-life/internal/render"
	"cag-life/internal/sim"
	gridcore "cag-life/pkg/core"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestSurfaceHalfBlocks(t *testing.T) {
	screen := newScreen(t)
	surf := NewSurface(screen, 1, 2)
	f := render.NewFrame(4, 2)
	// column 0 both rows, column 1 top, column 2 bottom
	f.Pix = []uint8{
		1, 1, 0, 0,
		1, 0, 1, 0,
	}
	if err := surf.Present(f); err != nil {
		t.Fatal(err)
	}
	want := []rune{glyphFull, glyphUpper, glyphLower, glyphEmpty}
	for x, w := range want {
		if got := runeAt(screen, 1+x, 2); got != w {
			t.Errorf("column %d: got %q, want %q", x, got, w)
		}
	}
	if w, h := surf.Size(); w != 4 || h != 1 {
		t.Fatalf("surface size %dx%d", w, h)
	}

	if err := surf.Blank(); err != nil {
		t.Fatal(err)
	}
	if got := runeAt(screen, 1, 2); got != glyphEmpty {
		t.Fatalf("blank left %q", got)
	}
}

func TestLEDBar(t *testing.T) {
	var l LEDBar
	l.Show(gridcore.Point{X: 1, Y: 3})
	if got := l.String(); got != "○○○○○●○○●●" {
		t.Fatalf("led bar %q", got)
	}
	l.Show(gridcore.Point{X: 63, Y: 15})
	if got := l.String(); got != "●●●●●●●●●●" {
		t.Fatalf("led bar %q", got)
	}
}

type staticParams core.ParameterSnapshot

func (s staticParams) Parameters() core.ParameterSnapshot { return core.ParameterSnapshot(s) }

func newTestFrontend(t *testing.T) (*Frontend, *input.KeyBuffer, chan string) {
	t.Helper()
	screen := newScreen(t)
	keys := input.NewKeyBuffer(8)
	lines := make(chan string, 1)
	snap := &bus.Snapshot{W: 64, H: 16, Running: true, Generation: 3, Population: 5}
	status := staticParams(sim.Parameters(snap))
	return NewFrontend(screen, keys, input.NewVirtualStick(), &LEDBar{}, status, lines, 17), keys, lines
}

func TestFrontendRoutesKeys(t *testing.T) {
	fe, keys, lines := newTestFrontend(t)

	fe.HandleKey(tcell.KeyRune, 'x')
	if keys.ReadChar() != 'x' {
		t.Fatal("grid mode key not forwarded")
	}

	fe.HandleKey(tcell.KeyTab, 0)
	if fe.Mode() != ModeCommand {
		t.Fatal("tab did not enter command mode")
	}
	for _, r := range "pausex" {
		fe.HandleKey(tcell.KeyRune, r)
	}
	fe.HandleKey(tcell.KeyBackspace2, 0)
	if fe.PromptLine() != "> pause" {
		t.Fatalf("prompt %q", fe.PromptLine())
	}
	fe.HandleKey(tcell.KeyEnter, 0)
	if got := <-lines; got != "pause" {
		t.Fatalf("sent %q", got)
	}
	if keys.ReadChar() != 0 {
		t.Fatal("command mode key leaked to the editor")
	}
	if !fe.HandleKey(tcell.KeyEscape, 0) {
		t.Fatal("escape in command mode quit")
	}
	fe.HandleKey(tcell.KeyTab, 0)
	if fe.HandleKey(tcell.KeyEscape, 0) {
		t.Fatal("escape in grid mode did not quit")
	}
}

func TestFrontendStatus(t *testing.T) {
	fe, _, _ := newTestFrontend(t)
	line := fe.StatusLine()
	for _, want := range []string{"GRID", "running", "gen 3", "pop 5"} {
		if !strings.Contains(line, want) {
			t.Errorf("status %q lacks %q", line, want)
		}
	}
	fe.Reply("", errors.New("bad"))
	if fe.PromptLine() != "error: bad" {
		t.Fatalf("prompt %q", fe.PromptLine())
	}
	fe.Draw()
}
