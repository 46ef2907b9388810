package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/warren/internal/config"
	"chosenoffset.com/warren/internal/game"
	"chosenoffset.com/warren/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to YAML settings file (optional)")
	seed := flag.Int64("seed", 0, "level generation seed, 0 = random")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load config")
	}
	if *seed != 0 {
		cfg.Level.Seed = *seed
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.TotalHeight())
	ebiten.SetWindowTitle("Warren")

	logger.Log.Info("starting game")
	if err := ebiten.RunGame(game.New(cfg, cfg.Level.Seed, nil)); err != nil {
		logger.Log.WithError(err).Fatal("game loop ended with error")
	}
}
