//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandgrid/internal/app"
	"sandgrid/internal/config"
	"sandgrid/internal/core"
	_ "sandgrid/internal/sims/fallingsand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	fileCfg, err := config.Load(cfg.ConfigPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Apply(fileCfg)

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(fileCfg.Map())
	sim.Reset(fileCfg.Sim.Seed)

	game := app.New(sim, fileCfg.World.CellSize, fileCfg.Sim.Seed)
	size := sim.Size()
	cell := fileCfg.World.CellSize

	ebiten.SetWindowTitle("sandgrid — " + sim.Name())
	ebiten.SetTPS(fileCfg.Sim.TPS)
	ebiten.SetWindowSize(size.W*cell+app.HUDWidth, size.H*cell)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
