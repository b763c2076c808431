package app

import (
	"bytes"
	"flag"
	"testing"
	"time"

	"chain-reaction/pkg/chain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())

	b, err := cfg.NewBoard()
	require.NoError(t, err)
	assert.Equal(t, 10, b.Rows())
	assert.Equal(t, 10, b.Cols())
	assert.Equal(t, 2, b.Players())
	assert.Equal(t, chain.ProtectUnmoved, b.Elimination())
}

func TestEnvThenFlags(t *testing.T) {
	t.Setenv("CHAIN_ROWS", "6")
	t.Setenv("CHAIN_COLS", "7")
	t.Setenv("CHAIN_WAVE_DELAY", "250ms")
	t.Setenv("CHAIN_ELIMINATE_UNMOVED", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadEnv())
	assert.Equal(t, 6, cfg.Rows)
	assert.Equal(t, 7, cfg.Cols)
	assert.Equal(t, 250*time.Millisecond, cfg.WaveDelay)
	assert.Equal(t, 2, cfg.Players, "unset variables keep their defaults")
	assert.Equal(t, chain.EliminateUnmoved, cfg.Elimination())

	fs := flag.NewFlagSet("chain", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-rows", "4", "-players", "3", "-plain"}))
	assert.Equal(t, 4, cfg.Rows)
	assert.Equal(t, 7, cfg.Cols)
	assert.Equal(t, 3, cfg.Players)
	assert.True(t, cfg.Plain)
}

func TestLoadEnvRejectsGarbage(t *testing.T) {
	t.Setenv("CHAIN_PLAYERS", "many")
	assert.Error(t, NewConfig().LoadEnv())
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	cfg.Rows = 2
	cfg.Players = 1
	cfg.Scale = 0
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, chain.ErrBoardTooSmall)
	assert.ErrorIs(t, err, chain.ErrTooFewPlayers)
	assert.Contains(t, err.Error(), "scale")
	assert.Contains(t, err.Error(), "loud")
}

func TestLoggerLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "warn"
	var buf bytes.Buffer
	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "rows", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown rows=3")
}
