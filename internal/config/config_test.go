package config

import (
	"os"
	"path/filepath"
	"testing"

	"sandgrid/internal/sims/fallingsand"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.Size != 200 || cfg.World.CellSize != 10 {
		t.Fatalf("unexpected world defaults: %+v", cfg.World)
	}
	if cfg.Brush.Radius != 6 {
		t.Fatalf("unexpected brush default: %+v", cfg.Brush)
	}
	if cfg.Sim.TPS != 60 || cfg.Sim.Seed != 1337 || cfg.Sim.TieBreak != "parity" {
		t.Fatalf("unexpected sim defaults: %+v", cfg.Sim)
	}
}

func TestLoadOverlayAndClamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandgrid.yaml")
	data := []byte("world:\n  size: 64\n  cell_size: 0\nbrush:\n  radius: -3\nsim:\n  tie_break: sideways\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.Size != 64 {
		t.Fatalf("overlay must win: size %d", cfg.World.Size)
	}
	if cfg.World.CellSize != 1 || cfg.Brush.Radius != 1 {
		t.Fatalf("invalid values must clamp: cell %d radius %d", cfg.World.CellSize, cfg.Brush.Radius)
	}
	if cfg.Sim.TieBreak != string(fallingsand.TieBreakParity) {
		t.Fatalf("unknown tie-break must fall back to parity, got %q", cfg.Sim.TieBreak)
	}
	// Keys absent from the overlay keep their defaults.
	if cfg.Sim.TPS != 60 {
		t.Fatalf("absent keys must keep defaults, got tps %d", cfg.Sim.TPS)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing config file must be an error")
	}
}

func TestMapMatchesSimulationConfig(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	fromMap := fallingsand.FromMap(cfg.Map())
	direct := cfg.SimulationConfig()
	if fromMap != direct {
		t.Fatalf("registry map and direct translation disagree:\n%+v\n%+v", fromMap, direct)
	}
}
