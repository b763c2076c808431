package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriticalMassByPosition(t *testing.T) {
	tests := []struct {
		name string
		pos  Pos
		want uint32
	}{
		{"top left corner", Pos{0, 0}, 2},
		{"top right corner", Pos{0, 4}, 2},
		{"bottom left corner", Pos{3, 0}, 2},
		{"bottom right corner", Pos{3, 4}, 2},
		{"top edge", Pos{0, 2}, 3},
		{"bottom edge", Pos{3, 1}, 3},
		{"left edge", Pos{1, 0}, 3},
		{"right edge", Pos{2, 4}, 3},
		{"interior", Pos{1, 1}, 4},
		{"interior far", Pos{2, 3}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CriticalMass(tt.pos, 4, 5))
			assert.Len(t, Neighbors(tt.pos, 4, 5), int(tt.want))
		})
	}
}

func TestAddAtomsExplodesExactlyAtCriticalMass(t *testing.T) {
	for _, p := range []Pos{{0, 0}, {0, 1}, {1, 1}} {
		var c Cell
		mass := CriticalMass(p, 3, 3)
		for i := uint32(1); i < mass; i++ {
			require.False(t, c.AddAtoms(1, 0, p, 3, 3), "cell %v exploded at %d atoms", p, i)
			require.Equal(t, i, c.Atoms())
		}
		require.True(t, c.AddAtoms(1, 0, p, 3, 3), "cell %v did not explode at %d atoms", p, mass)
		assert.True(t, c.Empty())
		_, owned := c.Owner()
		assert.False(t, owned, "exploded cell with no atoms left must be neutral")
	}
}

func TestAddAtomsCapturesCell(t *testing.T) {
	var c Cell
	p := Pos{1, 1}
	c.AddAtoms(1, 0, p, 3, 3)
	c.AddAtoms(1, 2, p, 3, 3)

	owner, ok := c.Owner()
	require.True(t, ok)
	assert.Equal(t, Player(2), owner)
	assert.Equal(t, uint32(2), c.Atoms())
}

func TestAddAtomsKeepsLeftoverAtoms(t *testing.T) {
	var c Cell
	p := Pos{0, 0}
	require.True(t, c.AddAtoms(3, 1, p, 3, 3))

	owner, ok := c.Owner()
	require.True(t, ok)
	assert.Equal(t, Player(1), owner)
	assert.Equal(t, uint32(1), c.Atoms(), "critical mass is subtracted, not reset")
}

func TestAddAtomsZeroIsNoop(t *testing.T) {
	var c Cell
	assert.False(t, c.AddAtoms(0, 1, Pos{0, 0}, 3, 3))
	owner, owned := c.Owner()
	assert.False(t, owned)
	assert.Equal(t, NoPlayer, owner)
}

func TestNeighbors(t *testing.T) {
	assert.Equal(t, []Pos{{1, 0}, {0, 1}}, Neighbors(Pos{0, 0}, 3, 3))
	assert.Equal(t, []Pos{{1, 2}, {2, 1}}, Neighbors(Pos{2, 2}, 3, 3))
	assert.Equal(t, []Pos{{0, 1}, {2, 1}, {1, 0}, {1, 2}}, Neighbors(Pos{1, 1}, 3, 3))
	assert.Equal(t, []Pos{{1, 1}, {0, 0}, {0, 2}}, Neighbors(Pos{0, 1}, 3, 3))
}
