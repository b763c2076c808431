package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// move is one turn of a recorded game: who plays where and how many Step
// calls it takes to hand control back.
type move struct {
	player   Player
	row, col int
	steps    int
}

type recordedGame struct {
	rows, cols, players int
	moves               []move
	winner              Player
}

func replay(t *testing.T, g recordedGame, opts ...Option) *Board {
	t.Helper()
	b := MustNewBoard(g.rows, g.cols, g.players, opts...)
	for i, m := range g.moves {
		require.NoError(t, b.Move(m.player, m.row, m.col), "move %d", i)
		assert.Equal(t, m.steps, drain(t, b), "steps for move %d", i)
	}
	if g.winner != NoPlayer {
		assert.Equal(t, GameOver{Winner: g.winner}, b.Phase())
	}
	return b
}

func TestShortGame(t *testing.T) {
	g := recordedGame{
		rows: 5, cols: 5, players: 2,
		moves: []move{
			{player: 0, row: 0, col: 0, steps: 1},
			{player: 1, row: 1, col: 0, steps: 1},
			{player: 0, row: 0, col: 0, steps: 2},
		},
		winner: 0,
	}
	b := replay(t, g)
	assert.False(t, b.Alive(1))
	assert.ErrorIs(t, b.Move(1, 4, 4), ErrGameOver)
}

func TestPlayerLosingAllCellsIsSkipped(t *testing.T) {
	g := recordedGame{
		rows: 4, cols: 4, players: 3,
		moves: []move{
			{player: 0, row: 0, col: 0, steps: 1},
			{player: 1, row: 0, col: 1, steps: 1},
			{player: 2, row: 0, col: 2, steps: 1},
			{player: 0, row: 0, col: 0, steps: 2},
		},
		winner: NoPlayer,
	}
	b := replay(t, g)

	const lost = Player(1)
	for _, row := range b.Snapshot() {
		for _, cell := range row {
			if cell.Kind == CellOwned {
				assert.NotEqual(t, lost, cell.Owner)
			}
		}
	}
	assert.NotEqual(t, lost, b.CurrentPlayer())
	assert.IsType(t, Waiting{}, b.Phase())
}

// No placement can explode before every player has placed once, so both
// elimination policies must agree on every game.
func TestEliminationPoliciesAgree(t *testing.T) {
	games := []recordedGame{
		{
			rows: 5, cols: 5, players: 2,
			moves: []move{
				{player: 0, row: 0, col: 0, steps: 1},
				{player: 1, row: 1, col: 0, steps: 1},
				{player: 0, row: 0, col: 0, steps: 2},
			},
			winner: 0,
		},
		{
			rows: 4, cols: 4, players: 3,
			moves: []move{
				{player: 0, row: 0, col: 0, steps: 1},
				{player: 1, row: 0, col: 1, steps: 1},
				{player: 2, row: 0, col: 2, steps: 1},
				{player: 0, row: 0, col: 0, steps: 2},
			},
			winner: NoPlayer,
		},
	}
	for _, g := range games {
		protect := replay(t, g, WithElimination(ProtectUnmoved))
		eliminate := replay(t, g, WithElimination(EliminateUnmoved))
		assert.Equal(t, protect.Snapshot(), eliminate.Snapshot())
		assert.Equal(t, protect.Phase(), eliminate.Phase())
		assert.Equal(t, protect.CurrentPlayer(), eliminate.CurrentPlayer())
	}
}

func TestPhaseStrings(t *testing.T) {
	assert.Equal(t, "waiting", Waiting{}.String())
	assert.Equal(t, "exploding(2)", Exploding{Pending: []Pos{{0, 0}, {1, 1}}}.String())
	assert.Equal(t, "checking-win", CheckingWin{}.String())
	assert.Equal(t, "game-over(player 3)", GameOver{Winner: 3}.String())
	assert.Equal(t, "eliminate-unmoved", EliminateUnmoved.String())
}
