package fallingsand

import (
	"strconv"

	"sandgrid/internal/core"
)

// Parameters exposes the current tunables for HUD display.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("size", "Grid size", w.cfg.Size),
				intParam("cell_size", "Cell size", w.cfg.CellSize),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam("brush_radius", "Brush radius", w.cfg.Params.BrushRadius),
			},
		},
		{
			Name: "Stepper",
			Params: []core.Parameter{
				stringParam("tie_break", "Tie-break", string(w.cfg.Params.TieBreak)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// SetIntParameter adjusts integer tunables from HUD key bindings. The brush
// radius is clamped to [1, 64].
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "brush_radius":
		if value < 1 {
			value = 1
		}
		if value > 64 {
			value = 64
		}
		w.cfg.Params.BrushRadius = value
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
