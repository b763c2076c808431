package core

import (
	"context"
	"testing"
	"time"

	"chain-reaction/pkg/chain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettleDrainsCascade(t *testing.T) {
	b := chain.MustNewBoard(5, 5, 2)
	require.NoError(t, b.Move(0, 0, 0))
	require.NoError(t, b.Move(1, 1, 0))
	require.NoError(t, b.Move(0, 0, 0))
	require.True(t, Busy(b))

	steps, err := Settle(b, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)
	assert.False(t, Busy(b))
	winner, ok := b.Winner()
	require.True(t, ok)
	assert.Equal(t, chain.Player(0), winner)
	assert.Equal(t, Size{Rows: 5, Cols: 5}, SizeOf(b))
}

// endless never stops exploding.
type endless struct{ *chain.Board }

func (endless) Step() bool { return true }

func TestSettleReportsRunaway(t *testing.T) {
	steps, err := Settle(endless{chain.MustNewBoard(3, 3, 2)}, 50)
	assert.ErrorIs(t, err, ErrRunaway)
	assert.Equal(t, 50, steps)
}

func TestWavePacerReady(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewWavePacer(time.Second)

	assert.False(t, p.Ready(start), "unarmed pacer waits a full interval")
	assert.False(t, p.Ready(start.Add(999*time.Millisecond)))
	assert.True(t, p.Ready(start.Add(time.Second)))
	assert.False(t, p.Ready(start.Add(1500*time.Millisecond)))
	assert.True(t, p.Ready(start.Add(2*time.Second)))

	p.Arm(start.Add(10 * time.Second))
	assert.False(t, p.Ready(start.Add(10500*time.Millisecond)))
	assert.True(t, p.Ready(start.Add(11*time.Second)))
}

func TestWavePacerZeroIntervalIsAlwaysReady(t *testing.T) {
	p := NewWavePacer(-time.Second)
	assert.Equal(t, time.Duration(0), p.Interval())
	assert.True(t, p.Ready(time.Now()))
	assert.NoError(t, p.Wait(context.Background()))
}

func TestWavePacerWaitHonoursContext(t *testing.T) {
	p := NewWavePacer(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Wait(ctx), context.Canceled)

	p.SetInterval(time.Millisecond)
	assert.NoError(t, p.Wait(context.Background()))
}
