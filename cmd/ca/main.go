//go:build ebiten

package main

import (
	"errors"
	"os"

	"collider/internal/app"
	"collider/internal/config"
	"collider/internal/core"
	_ "collider/internal/sims/collider"
	_ "collider/internal/sims/elementary"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("ca.gui")

func main() {
	cfg := app.NewConfig()
	if err := config.ParseEnv(cfg); err != nil {
		logger.Criticalf("%v", err)
		os.Exit(2)
	}
	cfg.Bind(gnuflag.CommandLine)
	gnuflag.Parse(true)

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Criticalf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
		os.Exit(2)
	}

	sim := factory(cfg.Options())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("collider: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Criticalf("%v", err)
		os.Exit(1)
	}
}
