package fallingsand

import "strconv"

// TieBreak selects the policy used when a sand particle can spread to both
// the down-left and down-right cell.
type TieBreak string

const (
	// TieBreakParity alternates deterministically: even ticks prefer the
	// down-left cell, odd ticks the down-right cell.
	TieBreakParity TieBreak = "parity"
	// TieBreakRandom draws the direction from the world's seeded RNG.
	TieBreakRandom TieBreak = "random"
)

// Params holds the tunables of the falling-sand simulation.
type Params struct {
	BrushRadius int
	TieBreak    TieBreak
}

// Config controls the simulation dimensions and brush behavior. Size is the
// side length of the square grid in cells; CellSize is the width of one cell
// in world pixels and fixes the scale of every world-space coordinate the
// brush and rasterizer consume.
type Config struct {
	Size     int
	CellSize int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:     200,
		CellSize: 10,
		Seed:     1337,
		Params: Params{
			BrushRadius: 6,
			TieBreak:    TieBreakParity,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["brush_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.BrushRadius = parsed
		}
	}
	if v, ok := cfg["tie_break"]; ok {
		switch TieBreak(v) {
		case TieBreakParity, TieBreakRandom:
			c.Params.TieBreak = TieBreak(v)
		}
	}
	return c
}
