package ui

import (
	"slices"
	"testing"

	"cag-life/internal/core"
)

func TestLines(t *testing.T) {
	s := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Simulation", Params: []core.Parameter{{Key: "running", Label: "Running", Value: "true"}}},
		{Name: "Grid", Params: []core.Parameter{{Key: "w", Label: "Width", Value: "64"}}},
	}}
	want := []string{"Simulation", "  Running: true", "", "Grid", "  Width: 64"}
	if got := Lines(s); !slices.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := Lines(core.ParameterSnapshot{}); len(got) != 1 {
		t.Fatalf("empty snapshot gave %q", got)
	}
}
