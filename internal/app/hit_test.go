package app

import (
	"testing"

	"chain-reaction/pkg/chain"

	"github.com/stretchr/testify/assert"
)

func TestCellAt(t *testing.T) {
	cases := []struct {
		name string
		x, y int
		want chain.Pos
		ok   bool
	}{
		{name: "origin", x: 0, y: 0, want: chain.Pos{}, ok: true},
		{name: "inside", x: 50, y: 100, want: chain.Pos{Row: 2, Col: 1}, ok: true},
		{name: "last cell", x: 479, y: 479, want: chain.Pos{Row: 9, Col: 9}, ok: true},
		{name: "left of window", x: -10, y: 5},
		{name: "above window", x: 5, y: -10},
		{name: "hud strip", x: 5, y: 490},
		{name: "right of grid", x: 480, y: 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := cellAt(tc.x, tc.y, 48, 10, 10)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
