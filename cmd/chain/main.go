// Command chain plays chain reaction in the terminal. Each line of input is
// "row col" for the player whose turn it is.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"chain-reaction/internal/app"
	"chain-reaction/internal/term"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := term.NewSession(board, os.Stdin, os.Stdout, term.Options{
		Plain:     cfg.Plain,
		WaveDelay: cfg.WaveDelay,
		Logger:    logger,
	})
	if _, err := session.Run(ctx); err != nil {
		stop()
		log.Fatalf("game aborted: %v", err)
	}
}
