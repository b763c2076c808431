// Package soak plays batches of random games to check that cascades settle and
// the board's invariants hold.
package soak

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"

	"chain-reaction/pkg/chain"
	"chain-reaction/pkg/core"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Config controls a soak run.
type Config struct {
	Games   int
	Rows    int
	Cols    int
	Players int
	Workers int
	Seed    int64

	// MaxSteps caps the Step calls spent on a single move.
	MaxSteps int
	// MaxMoves caps the length of a single game.
	MaxMoves int

	Elimination chain.Elimination
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Games:    200,
		Rows:     6,
		Cols:     6,
		Players:  3,
		Workers:  runtime.NumCPU(),
		Seed:     1337,
		MaxSteps: 10_000,
		MaxMoves: 10_000,
	}
}

// GameResult summarises one random game.
type GameResult struct {
	Seed           int64        `yaml:"seed"`
	Winner         chain.Player `yaml:"winner"`
	Moves          int          `yaml:"moves"`
	LongestCascade int          `yaml:"longest_cascade"`
	Err            string       `yaml:"error,omitempty"`
}

// Report aggregates a soak run.
type Report struct {
	Games          int          `yaml:"games"`
	Rows           int          `yaml:"rows"`
	Cols           int          `yaml:"cols"`
	Players        int          `yaml:"players"`
	Seed           int64        `yaml:"seed"`
	Finished       int          `yaml:"finished"`
	Wins           map[int]int  `yaml:"wins"`
	MeanMoves      float64      `yaml:"mean_moves"`
	MaxMoves       int          `yaml:"max_moves"`
	LongestCascade int          `yaml:"longest_cascade"`
	Failures       []GameResult `yaml:"failures,omitempty"`
}

// PlayGame plays one game of uniformly random legal moves from seed,
// checking invariants after every move and every Step.
func PlayGame(cfg Config, seed int64) GameResult {
	res := GameResult{Seed: seed, Winner: chain.NoPlayer}
	b, err := chain.NewBoard(cfg.Rows, cfg.Cols, cfg.Players, chain.WithElimination(cfg.Elimination))
	if err != nil {
		res.Err = err.Error()
		return res
	}
	rng := core.NewRNG(seed)

	for b.Moves() < cfg.MaxMoves {
		if w, ok := b.Winner(); ok {
			res.Winner = w
			break
		}
		player := b.CurrentPlayer()
		pos, ok := core.Pick(rng, LegalMoves(b, player))
		if !ok {
			res.Err = fmt.Sprintf("player %d has no legal move", player)
			break
		}
		if err := b.Move(player, pos.Row, pos.Col); err != nil {
			res.Err = fmt.Sprintf("move %d: %v", b.Moves()+1, err)
			break
		}
		if err := settle(b, cfg.MaxSteps, &res); err != nil {
			res.Err = fmt.Sprintf("move %d: %v", b.Moves(), err)
			break
		}
	}
	if w, ok := b.Winner(); ok && res.Err == "" {
		res.Winner = w
	}
	res.Moves = b.Moves()
	if res.Err == "" && res.Winner == chain.NoPlayer {
		res.Err = fmt.Sprintf("no winner after %d moves", res.Moves)
	}
	return res
}

func settle(b *chain.Board, limit int, res *GameResult) error {
	if err := CheckInvariants(b); err != nil {
		return err
	}
	steps := 0
	for b.Step() {
		steps++
		if err := CheckInvariants(b); err != nil {
			return fmt.Errorf("step %d: %w", steps, err)
		}
		if limit > 0 && steps >= limit {
			return fmt.Errorf("cascade still %s after %d steps", b.Phase(), steps)
		}
	}
	if err := CheckInvariants(b); err != nil {
		return err
	}
	if b.Waves() > res.LongestCascade {
		res.LongestCascade = b.Waves()
	}
	return nil
}

// LegalMoves lists the cells player may place on: empty ones and their own.
func LegalMoves(b *chain.Board, player chain.Player) []chain.Pos {
	var out []chain.Pos
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			p := chain.Pos{Row: r, Col: c}
			cell, _ := b.Cell(p)
			if owner, ok := cell.Owner(); !ok || owner == player {
				out = append(out, p)
			}
		}
	}
	return out
}

// Run plays cfg.Games games on a pool of cfg.Workers goroutines. Game seeds
// derive from cfg.Seed, so a run is reproducible whatever the worker count.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if cfg.Games <= 0 {
		return Report{}, fmt.Errorf("soak: games must be positive, got %d", cfg.Games)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	seeds := make([]int64, cfg.Games)
	rng := core.NewRNG(cfg.Seed)
	for i := range seeds {
		seeds[i] = rng.Int64()
	}

	results := make([]GameResult, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	var mu sync.Mutex
	done := 0
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = PlayGame(cfg, seed)
			mu.Lock()
			done++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("soak: %d of %d games played: %w", done, cfg.Games, err)
	}
	return summarize(cfg, results), nil
}

func summarize(cfg Config, results []GameResult) Report {
	r := Report{
		Games:   len(results),
		Rows:    cfg.Rows,
		Cols:    cfg.Cols,
		Players: cfg.Players,
		Seed:    cfg.Seed,
		Wins:    map[int]int{},
	}
	moves := 0
	for _, res := range results {
		if res.Err != "" {
			r.Failures = append(r.Failures, res)
			continue
		}
		r.Finished++
		r.Wins[int(res.Winner)]++
		moves += res.Moves
		r.MaxMoves = max(r.MaxMoves, res.Moves)
		r.LongestCascade = max(r.LongestCascade, res.LongestCascade)
	}
	if r.Finished > 0 {
		r.MeanMoves = float64(moves) / float64(r.Finished)
	}
	sort.Slice(r.Failures, func(i, j int) bool { return r.Failures[i].Seed < r.Failures[j].Seed })
	return r
}

// WriteYAML writes the report as YAML.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
