package lifeform

import (
	"errors"
	"testing"

	"cag-life/pkg/core"
	"cag-life/pkg/life"
)

func TestParseByNameAndIndex(t *testing.T) {
	cases := []struct {
		kind, typ string
		want      ID
	}{
		{"still", "block", Block},
		{"still", "BEEHIVE", Beehive},
		{"still", "2", Loaf},
		{"osc", "blinker", Blinker},
		{"osc", "1", Toad},
		{"osc", "beacon", Beacon},
		{"glider", "", Glider},
	}
	for _, tc := range cases {
		got, err := Parse(tc.kind, tc.typ)
		if err != nil {
			t.Fatalf("Parse(%q, %q): %v", tc.kind, tc.typ, err)
		}
		if got != tc.want {
			t.Errorf("Parse(%q, %q) = %v, expected %v", tc.kind, tc.typ, got, tc.want)
		}
		if _, ok := Lookup(got); !ok {
			t.Errorf("%v has no template", got)
		}
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	cases := [][2]string{
		{"still", "blinker"},
		{"osc", "3"},
		{"osc", "-1"},
		{"gun", "gosper"},
		{"glider", "fast"},
	}
	for _, tc := range cases {
		if _, err := Parse(tc[0], tc[1]); !errors.Is(err, ErrUnknownLifeForm) {
			t.Errorf("Parse(%q, %q) error = %v, expected ErrUnknownLifeForm", tc[0], tc[1], err)
		}
	}
}

func TestBlinkerStampAtTenTen(t *testing.T) {
	g := core.NewGrid(64, 16)
	life.Stamp(g, MustLookup(Blinker), 10, 10)

	if n := life.Population(g); n != 3 {
		t.Fatalf("expected 3 live cells, got %d", n)
	}
	for _, p := range []core.Point{{X: 11, Y: 10}, {X: 11, Y: 11}, {X: 11, Y: 12}} {
		if !g.Alive(p.X, p.Y) {
			t.Fatalf("expected (%d,%d) alive", p.X, p.Y)
		}
	}
}

func TestDemoSeedsEveryForm(t *testing.T) {
	g := core.NewGrid(64, 16)
	Seed(g, Demo())

	want := 0
	for _, p := range Demo() {
		want += len(MustLookup(p.ID).Cells())
	}
	if got := life.Population(g); got != want {
		t.Fatalf("demo population = %d, expected %d", got, want)
	}
}
