// Command soak plays batches of random games and reports how they ended,
// failing when a cascade does not settle or the board's bookkeeping breaks.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"

	"chain-reaction/internal/soak"
	"chain-reaction/pkg/chain"
)

func main() {
	cfg := soak.DefaultConfig()
	flag.IntVar(&cfg.Games, "games", cfg.Games, "number of games to play")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "board rows")
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "board columns")
	flag.IntVar(&cfg.Players, "players", cfg.Players, "players per game")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel games")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed the game seeds are derived from")
	flag.IntVar(&cfg.MaxSteps, "max-steps", cfg.MaxSteps, "step budget for a single cascade")
	flag.IntVar(&cfg.MaxMoves, "max-moves", cfg.MaxMoves, "move budget for a single game")
	eliminate := flag.Bool("eliminate-unmoved", false, "eliminate players without cells even before their first move")
	out := flag.String("out", "", "write the YAML report to this file instead of stdout")
	flag.Parse()

	if *eliminate {
		cfg.Elimination = chain.EliminateUnmoved
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := soak.Run(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintf(os.Stderr, "%d/%d games finished on %dx%d with %d players: mean %.1f moves, longest game %d moves, longest cascade %d waves\n",
		report.Finished, report.Games, report.Rows, report.Cols, report.Players, report.MeanMoves, report.MaxMoves, report.LongestCascade)
	players := make([]int, 0, len(report.Wins))
	for p := range report.Wins {
		players = append(players, p)
	}
	sort.Ints(players)
	for _, p := range players {
		fmt.Fprintf(os.Stderr, "  player %d won %d\n", p, report.Wins[p])
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}
	if err := report.WriteYAML(w); err != nil {
		log.Fatal(err)
	}
	if len(report.Failures) > 0 {
		stop()
		log.Fatalf("%d games failed, first seed %d: %s", len(report.Failures), report.Failures[0].Seed, report.Failures[0].Err)
	}
}
