// Package lifeform holds the closed catalog of stampable patterns: still
// lifes, oscillators and the glider.
package lifeform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cag-life/pkg/core"
	"cag-life/pkg/life"
)

// ErrUnknownLifeForm is returned when a kind or sub-type is not in the catalog.
var ErrUnknownLifeForm = errors.New("unknown life form")

// Kind groups life forms by behaviour.
type Kind string

const (
	KindStill  Kind = "still"
	KindOsc    Kind = "osc"
	KindGlider Kind = "glider"
)

// ID names one entry of the catalog. Glider has an empty Type.
type ID struct {
	Kind Kind
	Type string
}

func (id ID) String() string {
	if id.Type == "" {
		return string(id.Kind)
	}
	return string(id.Kind) + "/" + id.Type
}

var (
	Block   = ID{KindStill, "block"}
	Beehive = ID{KindStill, "beehive"}
	Loaf    = ID{KindStill, "loaf"}
	Blinker = ID{KindOsc, "blinker"}
	Toad    = ID{KindOsc, "toad"}
	Beacon  = ID{KindOsc, "beacon"}
	Glider  = ID{KindGlider, ""}
)

var templates = map[ID]life.Template{
	Block: {
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	Beehive: {
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	},
	Loaf: {
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{0, 0, 1, 0},
	},
	Blinker: {
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	},
	Toad: {
		{0, 1, 1, 1},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	Beacon: {
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	},
	Glider: {
		{0, 0, 1, 0},
		{1, 0, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	},
}

// Sub-types per kind, in the index order accepted by Parse.
var subTypes = map[Kind][]string{
	KindStill: {"block", "beehive", "loaf"},
	KindOsc:   {"blinker", "toad", "beacon"},
}

// Lookup returns the template registered for id.
func Lookup(id ID) (life.Template, bool) {
	t, ok := templates[id]
	return t, ok
}

// MustLookup returns the template for a catalog ID and panics otherwise. It
// is meant for the package-level IDs above.
func MustLookup(id ID) life.Template {
	t, ok := templates[id]
	if !ok {
		panic(fmt.Sprintf("lifeform: %v not in catalog", id))
	}
	return t
}

// Types lists the sub-type names of kind in index order.
func Types(kind Kind) []string {
	return append([]string(nil), subTypes[kind]...)
}

// Parse resolves a kind and sub-type into a catalog ID. The sub-type may be
// its name (case-insensitive) or its index within the kind.
func Parse(kind, typ string) (ID, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(kind)))
	if k == KindGlider {
		if typ != "" && typ != "0" {
			return ID{}, fmt.Errorf("%w: glider has no type %q", ErrUnknownLifeForm, typ)
		}
		return Glider, nil
	}
	names, ok := subTypes[k]
	if !ok {
		return ID{}, fmt.Errorf("%w: kind %q", ErrUnknownLifeForm, kind)
	}
	typ = strings.ToLower(strings.TrimSpace(typ))
	if idx, err := strconv.Atoi(typ); err == nil {
		if idx < 0 || idx >= len(names) {
			return ID{}, fmt.Errorf("%w: %s index %d", ErrUnknownLifeForm, k, idx)
		}
		return ID{Kind: k, Type: names[idx]}, nil
	}
	for _, n := range names {
		if n == typ {
			return ID{Kind: k, Type: n}, nil
		}
	}
	return ID{}, fmt.Errorf("%w: %s %q", ErrUnknownLifeForm, k, typ)
}

// Placement is a life form positioned on the grid.
type Placement struct {
	ID     ID
	Origin core.Point
}

// Demo returns the demonstration layout stamped onto a fresh grid.
func Demo() []Placement {
	return []Placement{
		{Block, core.Point{X: 2, Y: 2}},
		{Beehive, core.Point{X: 10, Y: 2}},
		{Loaf, core.Point{X: 20, Y: 2}},
		{Blinker, core.Point{X: 30, Y: 2}},
		{Toad, core.Point{X: 40, Y: 2}},
		{Beacon, core.Point{X: 50, Y: 2}},
		{Glider, core.Point{X: 2, Y: 7}},
	}
}

// Seed stamps every placement onto g.
func Seed(g *core.Grid, placements []Placement) {
	for _, p := range placements {
		t, ok := templates[p.ID]
		if !ok {
			continue
		}
		life.Stamp(g, t, p.Origin.X, p.Origin.Y)
	}
}
