package core

import (
	"testing"

	"chain-reaction/pkg/chain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFollowsPhase(t *testing.T) {
	b := chain.MustNewBoard(5, 5, 2)
	assert.Equal(t, "Current player: 0", Status(b))

	require.NoError(t, b.Move(0, 0, 0))
	require.NoError(t, b.Move(1, 1, 0))
	assert.Equal(t, "Current player: 0", Status(b))

	require.NoError(t, b.Move(0, 0, 0))
	assert.Equal(t, "Player 0: 1 cells exploding", Status(b))
	require.True(t, b.Step())
	assert.Equal(t, "Player 0: cascade settled", Status(b))
	require.False(t, b.Step())
	assert.Equal(t, "Winner: player 0", Status(b))
	assert.Equal(t, chain.Player(0), StatusPlayer(b))
}
