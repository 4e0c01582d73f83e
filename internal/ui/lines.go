package ui

import (
	"fmt"

	"cag-life/internal/core"
)

// Lines lays out a parameter snapshot as HUD text, one group header followed
// by its "label: value" rows.
func Lines(s core.ParameterSnapshot) []string {
	if len(s.Groups) == 0 {
		return []string{"waiting for the simulator"}
	}
	var out []string
	for i, g := range s.Groups {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, g.Name)
		for _, p := range g.Params {
			out = append(out, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return out
}
