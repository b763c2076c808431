//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"chain-reaction/internal/app"
	"chain-reaction/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	board, err := cfg.NewBoard()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(board, cfg.Scale, cfg.WaveDelay, logger)
	game.Reset()

	ebiten.SetWindowTitle("Chain Reaction")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(board.Cols()*cfg.Scale, board.Rows()*cfg.Scale+ui.HUDHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
