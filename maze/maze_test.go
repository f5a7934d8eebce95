package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		rng           Source
		opts          *Options
		err           error
	}{
		{"zero width", 0, 3, newRand(1), nil, ErrInvalidDimensions},
		{"negative height", 3, -1, newRand(1), nil, ErrInvalidDimensions},
		{"nil source", 3, 3, nil, nil, ErrNilSource},
		{"start outside", 3, 3, newRand(1), &Options{Start: &CellPosition{Row: 3, Col: 0}}, ErrStartOutOfBounds},
		{"negative start", 3, 3, newRand(1), &Options{Start: &CellPosition{Row: 0, Col: -1}}, ErrStartOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Build(tt.width, tt.height, tt.rng, tt.opts)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, m)
		})
	}
}

func TestBuildPerfectMaze(t *testing.T) {
	sizes := []struct{ width, height int }{
		{1, 1}, {1, 7}, {7, 1}, {2, 2}, {5, 5}, {10, 3}, {20, 20}, {50, 50},
	}

	for _, size := range sizes {
		for seed := int64(0); seed < 5; seed++ {
			m, err := Build(size.width, size.height, newRand(seed), nil)
			require.NoError(t, err)

			cells := size.width * size.height
			assert.Equal(t, cells-1, m.Edges(), "%dx%d seed %d", size.width, size.height, seed)
			assert.Len(t, reachable(m, CellPosition{}), cells, "%dx%d seed %d", size.width, size.height, seed)
			assertSymmetricWalls(t, m)
		}
	}
}

func TestBuildDeterminism(t *testing.T) {
	a, err := Build(12, 9, newRand(42), nil)
	require.NoError(t, err)
	b, err := Build(12, 9, newRand(42), nil)
	require.NoError(t, err)

	assert.Equal(t, a.Cells(), b.Cells())
	assert.Equal(t, a.Termini(), b.Termini())
	assert.Equal(t, a.String(), b.String())

	start := &CellPosition{Row: 0, Col: 0}
	c, err := Build(12, 9, newRand(42), &Options{Start: start})
	require.NoError(t, err)
	d, err := Build(12, 9, newRand(42), &Options{Start: start})
	require.NoError(t, err)
	assert.Equal(t, c.Cells(), d.Cells())
}

func TestTermini(t *testing.T) {
	t.Run("single cell", func(t *testing.T) {
		m, err := Build(1, 1, newRand(7), nil)
		require.NoError(t, err)

		termini := m.Termini()
		require.Len(t, termini, 1)
		assert.Equal(t, CellPosition{}, termini[0].Position())
		assert.True(t, termini[0].IsTerminus())
		assert.Equal(t, 0, m.Edges())
		assert.Equal(t, 0, m.Diameter())
		assert.Equal(t, 4, termini[0].Walls().Len())
	})

	t.Run("three cell corridor", func(t *testing.T) {
		m, err := Build(3, 1, newRand(7), nil)
		require.NoError(t, err)

		cells := m.Cells()
		assert.False(t, cells[0][0].Walls().Has(East))
		assert.False(t, cells[0][1].Walls().Has(West))
		assert.False(t, cells[0][1].Walls().Has(East))
		assert.False(t, cells[0][2].Walls().Has(West))

		var positions []CellPosition
		for _, c := range m.Termini() {
			positions = append(positions, c.Position())
		}
		assert.ElementsMatch(t, []CellPosition{{0, 0}, {0, 2}}, positions)
		assert.Equal(t, 2, m.Diameter())
		assert.False(t, cells[0][1].IsTerminus())
	})

	t.Run("two termini otherwise", func(t *testing.T) {
		for seed := int64(0); seed < 10; seed++ {
			m, err := Build(6, 4, newRand(seed), nil)
			require.NoError(t, err)

			termini := m.Termini()
			require.Len(t, termini, 2)
			assert.False(t, termini[0].Equal(termini[1]))

			marked := 0
			for _, row := range m.Cells() {
				for _, c := range row {
					if c.IsTerminus() {
						marked++
					}
				}
			}
			assert.Equal(t, 2, marked)
		}
	})
}

func TestCorridors(t *testing.T) {
	for _, size := range []struct{ width, height int }{{1, 9}, {9, 1}} {
		m, err := Build(size.width, size.height, newRand(3), nil)
		require.NoError(t, err)

		n := size.width * size.height
		for _, row := range m.Cells() {
			for _, c := range row {
				open := 4 - c.Walls().Len()
				i := c.Row() + c.Col()
				if i == 0 || i == n-1 {
					assert.Equal(t, 1, open, "end %v", c.Position())
				} else {
					assert.Equal(t, 2, open, "interior %v", c.Position())
				}
			}
		}
		assert.Equal(t, n-1, m.Diameter())
	}
}

func TestCellsSnapshot(t *testing.T) {
	m, err := Build(4, 4, newRand(11), nil)
	require.NoError(t, err)

	first := m.Cells()
	first[0][0] = Cell{}
	first[1] = nil

	second := m.Cells()
	assert.Equal(t, CellPosition{Row: 1, Col: 0}, second[1][0].Position())
	assert.Equal(t, CellPosition{Row: 0, Col: 1}, second[0][1].Position())
	c, err := m.Cell(CellPosition{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, second[0][0], c)

	_, err = m.Cell(CellPosition{Row: 4, Col: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestNeighbor(t *testing.T) {
	m, err := Build(3, 1, newRand(5), nil)
	require.NoError(t, err)

	origin, err := m.Cell(CellPosition{})
	require.NoError(t, err)

	next, ok := m.Neighbor(origin.Position(), East, OpenWalls(origin))
	assert.True(t, ok)
	assert.Equal(t, CellPosition{Row: 0, Col: 1}, next.Position())

	_, ok = m.Neighbor(origin.Position(), West, nil)
	assert.False(t, ok)

	_, ok = m.Neighbor(origin.Position(), East, func(Direction) bool { return false })
	assert.False(t, ok)

	_, ok = m.Neighbor(CellPosition{Row: -1}, South, nil)
	assert.False(t, ok)
}

// assertSymmetricWalls checks that every passage is open from both sides.
func assertSymmetricWalls(t *testing.T, m *Maze) {
	t.Helper()
	for _, row := range m.Cells() {
		for _, c := range row {
			for _, d := range Directions {
				next, ok := m.Neighbor(c.Position(), d, nil)
				if !ok {
					assert.True(t, c.Walls().Has(d), "boundary wall %v of %v", d, c.Position())
					continue
				}
				assert.Equal(t, c.Walls().Has(d), next.Walls().Has(d.Opposite()),
					"wall %v between %v and %v", d, c.Position(), next.Position())
			}
		}
	}
}
