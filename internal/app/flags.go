package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"chain-reaction/pkg/chain"

	"github.com/caarlos0/env/v11"
)

// Config represents the command-line parameters shared by the front ends.
// Environment variables are read first; flags override them.
type Config struct {
	Rows             int           `env:"CHAIN_ROWS"`
	Cols             int           `env:"CHAIN_COLS"`
	Players          int           `env:"CHAIN_PLAYERS"`
	WaveDelay        time.Duration `env:"CHAIN_WAVE_DELAY"`
	EliminateUnmoved bool          `env:"CHAIN_ELIMINATE_UNMOVED"`

	Scale int  `env:"CHAIN_SCALE"`
	TPS   int  `env:"CHAIN_TPS"`
	Plain bool `env:"CHAIN_PLAIN"`

	LogLevel string `env:"CHAIN_LOG_LEVEL"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:      10,
		Cols:      10,
		Players:   2,
		WaveDelay: time.Second,
		Scale:     48,
		TPS:       60,
		LogLevel:  "info",
	}
}

// LoadEnv overrides fields from CHAIN_* environment variables.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.IntVar(&c.Players, "players", c.Players, "number of players")
	fs.DurationVar(&c.WaveDelay, "wave-delay", c.WaveDelay, "pause between explosion waves (0 resolves cascades instantly)")
	fs.BoolVar(&c.EliminateUnmoved, "eliminate-unmoved", c.EliminateUnmoved, "eliminate players without cells even before their first move")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell (GUI)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (GUI)")
	fs.BoolVar(&c.Plain, "plain", c.Plain, "print the board without colours (terminal)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// Validate rejects settings the engine or the front ends cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Rows < chain.MinRows || c.Cols < chain.MinCols {
		errs = append(errs, fmt.Errorf("%w: got %dx%d", chain.ErrBoardTooSmall, c.Rows, c.Cols))
	}
	if c.Players < chain.MinPlayers {
		errs = append(errs, fmt.Errorf("%w: got %d", chain.ErrTooFewPlayers, c.Players))
	}
	if c.WaveDelay < 0 {
		errs = append(errs, fmt.Errorf("wave delay must not be negative, got %s", c.WaveDelay))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if _, err := c.level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Elimination maps the eliminate-unmoved switch to a board policy.
func (c *Config) Elimination() chain.Elimination {
	if c.EliminateUnmoved {
		return chain.EliminateUnmoved
	}
	return chain.ProtectUnmoved
}

// NewBoard builds the board described by the configuration.
func (c *Config) NewBoard() (*chain.Board, error) {
	return chain.NewBoard(c.Rows, c.Cols, c.Players, chain.WithElimination(c.Elimination()))
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
