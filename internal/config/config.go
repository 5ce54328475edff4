// Package config loads sandgrid configuration from YAML, starting from
// embedded defaults and overlaying an optional user-supplied file.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"sandgrid/internal/sims/fallingsand"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every file-configurable parameter.
type Config struct {
	World WorldConfig `yaml:"world"`
	Brush BrushConfig `yaml:"brush"`
	Sim   SimConfig   `yaml:"sim"`
}

// WorldConfig holds the grid dimensions.
type WorldConfig struct {
	Size     int `yaml:"size"`      // grid side length in cells
	CellSize int `yaml:"cell_size"` // pixels per cell
}

// BrushConfig holds brush painting settings.
type BrushConfig struct {
	Radius int `yaml:"radius"` // brush radius in cells
}

// SimConfig holds tick and determinism settings.
type SimConfig struct {
	Seed     int64  `yaml:"seed"`
	TPS      int    `yaml:"tps"`
	TieBreak string `yaml:"tie_break"` // parity or random
}

// Load parses the embedded defaults and, when path is non-empty, overlays
// the values from that file. Out-of-range values are clamped rather than
// rejected.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parse embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.clamp()
	return cfg, nil
}

func (c *Config) clamp() {
	if c.World.Size < 1 {
		c.World.Size = 1
	}
	if c.World.CellSize < 1 {
		c.World.CellSize = 1
	}
	if c.Brush.Radius < 1 {
		c.Brush.Radius = 1
	}
	if c.Sim.TPS < 1 {
		c.Sim.TPS = 60
	}
	switch fallingsand.TieBreak(c.Sim.TieBreak) {
	case fallingsand.TieBreakParity, fallingsand.TieBreakRandom:
	default:
		c.Sim.TieBreak = string(fallingsand.TieBreakParity)
	}
}

// Map renders the configuration as the flag-style key/value pairs the sim
// registry factories consume.
func (c *Config) Map() map[string]string {
	return map[string]string{
		"size":         strconv.Itoa(c.World.Size),
		"cell_size":    strconv.Itoa(c.World.CellSize),
		"seed":         strconv.FormatInt(c.Sim.Seed, 10),
		"brush_radius": strconv.Itoa(c.Brush.Radius),
		"tie_break":    c.Sim.TieBreak,
	}
}

// SimulationConfig translates the file configuration into the falling-sand
// simulation's own config struct.
func (c *Config) SimulationConfig() fallingsand.Config {
	return fallingsand.Config{
		Size:     c.World.Size,
		CellSize: c.World.CellSize,
		Seed:     c.Sim.Seed,
		Params: fallingsand.Params{
			BrushRadius: c.Brush.Radius,
			TieBreak:    fallingsand.TieBreak(c.Sim.TieBreak),
		},
	}
}
