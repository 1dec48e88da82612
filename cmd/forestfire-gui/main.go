//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"forest-fire/internal/app"
	"forest-fire/internal/sims/forest"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	fcfg, err := cfg.Forest()
	if err != nil {
		log.Fatal(err)
	}

	sim := forest.New(fcfg)
	sim.Reset(fcfg.Seed)

	game := app.New(sim, cfg.Scale, fcfg.Seed, cfg.Delay)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("forest-fire — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
