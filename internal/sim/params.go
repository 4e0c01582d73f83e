package sim

import (
	"fmt"
	"strconv"

	"cag-life/internal/bus"
	"cag-life/internal/core"
)

// Parameters describes a snapshot for the HUD and the terminal status line.
func Parameters(snap *bus.Snapshot) core.ParameterSnapshot {
	if snap == nil {
		return core.ParameterSnapshot{}
	}
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Simulation",
				Params: []core.Parameter{
					boolParam("running", "Running", snap.Running),
					stringParam("interval", "Interval", snap.Interval.String()),
					intParam("generation", "Generation", int(snap.Generation)),
					intParam("population", "Population", snap.Population),
				},
			},
			{
				Name: "Grid",
				Params: []core.Parameter{
					intParam("w", "Width", snap.W),
					intParam("h", "Height", snap.H),
					stringParam("cursor", "Cursor", fmt.Sprintf("(%d,%d)", snap.Cursor.X, snap.Cursor.Y)),
				},
			},
		},
	}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func boolParam(key, label string, v bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(v)}
}

func stringParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: v}
}
