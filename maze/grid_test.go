package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridNeighbor(t *testing.T) {
	g := newGrid(3, 2)

	tests := []struct {
		name string
		pos  CellPosition
		dir  Direction
		want CellPosition
		ok   bool
	}{
		{"north edge", CellPosition{0, 1}, North, CellPosition{}, false},
		{"west edge", CellPosition{1, 0}, West, CellPosition{}, false},
		{"east edge", CellPosition{0, 2}, East, CellPosition{}, false},
		{"south edge", CellPosition{1, 1}, South, CellPosition{}, false},
		{"east inside", CellPosition{0, 0}, East, CellPosition{0, 1}, true},
		{"south inside", CellPosition{0, 2}, South, CellPosition{1, 2}, true},
		{"north inside", CellPosition{1, 0}, North, CellPosition{0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := g.neighbor(g.index(tt.pos), tt.dir, nil)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, g.position(next))
			}
		})
	}

	t.Run("filter rejects in-bound direction", func(t *testing.T) {
		_, ok := g.neighbor(0, East, func(d Direction) bool { return d != East })
		assert.False(t, ok)
	})

	t.Run("open filter follows walls", func(t *testing.T) {
		_, ok := g.neighbor(0, East, g.open(0))
		assert.False(t, ok)

		g.removeWall(0, 1, East)
		next, ok := g.neighbor(0, East, g.open(0))
		assert.True(t, ok)
		assert.Equal(t, 1, next)
		assert.False(t, g.walls[1].Has(West))
		assert.Equal(t, 1, g.edges())
	})
}

func TestFloodFillPanicsOnDisconnectedGrid(t *testing.T) {
	g := newGrid(2, 1)
	dist := make([]int, g.size())
	assert.Panics(t, func() { g.floodFill(0, dist) })
}
