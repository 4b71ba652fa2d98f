package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"fireworks/sim"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file overriding the defaults.")
	seed       = flag.Int64("seed", 0, "Random seed for the simulation; 0 uses the current time.")
)

func main() {
	flag.Parse()

	cfg := sim.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = sim.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	g := NewGame(cfg, sim.New(cfg, rng))

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Fireworks")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
