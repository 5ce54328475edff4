package app

import (
	"flag"

	"sandgrid/internal/config"
)

// Config represents the command-line parameters for the application. Zero
// values mean "keep what the YAML configuration says".
type Config struct {
	ConfigPath string
	Sim        string
	TPS        int
	Seed       int64
	Size       int
	CellSize   int
	Brush      int
	TieBreak   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "fallingsand"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", "", "optional YAML config file")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.TPS, "tps", 0, "ticks per second (overrides config)")
	fs.Int64Var(&c.Seed, "seed", 0, "simulation seed (overrides config)")
	fs.IntVar(&c.Size, "size", 0, "grid side length in cells (overrides config)")
	fs.IntVar(&c.CellSize, "cell", 0, "pixels per cell (overrides config)")
	fs.IntVar(&c.Brush, "brush", 0, "brush radius in cells (overrides config)")
	fs.StringVar(&c.TieBreak, "tiebreak", "", "lateral tie-break policy: parity or random")
}

// Apply overlays the explicitly set flag values onto the file configuration.
func (c *Config) Apply(fc *config.Config) {
	if c.TPS > 0 {
		fc.Sim.TPS = c.TPS
	}
	if c.Seed != 0 {
		fc.Sim.Seed = c.Seed
	}
	if c.Size > 0 {
		fc.World.Size = c.Size
	}
	if c.CellSize > 0 {
		fc.World.CellSize = c.CellSize
	}
	if c.Brush > 0 {
		fc.Brush.Radius = c.Brush
	}
	if c.TieBreak != "" {
		fc.Sim.TieBreak = c.TieBreak
	}
}
