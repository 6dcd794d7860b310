//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"islands/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindWindow(flag.CommandLine)
	flag.Parse()

	wcfg, err := cfg.WorldConfig()
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(wcfg, cfg.Scale, cfg.Logger())
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("islands")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(wcfg.Terrain.Width*cfg.Scale, wcfg.Terrain.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
