/*
Package maze generates perfect mazes over rectangular grids.

A maze is carved with a randomized depth-first traversal (the recursive backtracker)
driven by a single pseudorandom source, so the same dimensions and seed always give the
same maze. Once carved, two breadth-first flood fills locate the endpoints of the longest
path through the maze; these termini are meant to serve as its entrance and exit.

Mazes are immutable after Build returns. Cells are exposed as value snapshots.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")
	ErrStartOutOfBounds  = errors.New("start cell is outside the maze")
	ErrNilSource         = errors.New("random source is required")
	ErrOutOfBounds       = errors.New("position is outside the maze")
)

// Options tunes maze construction.
type Options struct {
	// Start fixes the cell the carve begins from. When nil the start cell is drawn
	// from the random source, row first and then column.
	Start *CellPosition
}

// Maze is a perfect maze: its open passages form a spanning tree over the grid.
type Maze struct {
	grid     *grid
	termini  []int
	terminus []bool
	diameter int
}

// Build carves a width×height maze with rng and marks the two ends of its longest path.
// A nil opts starts the carve at a random cell.
func Build(width, height int, rng Source, opts *Options) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if rng == nil {
		return nil, ErrNilSource
	}
	if opts == nil {
		opts = &Options{}
	}

	var start CellPosition
	if opts.Start != nil {
		start = *opts.Start
		if start.Row < 0 || start.Row >= height || start.Col < 0 || start.Col >= width {
			return nil, fmt.Errorf("%w: %v in %dx%d", ErrStartOutOfBounds, start, width, height)
		}
	} else {
		start = CellPosition{Row: rng.Intn(height), Col: rng.Intn(width)}
	}

	g := newGrid(width, height)
	g.carve(g.index(start), rng)
	if edges := g.edges(); edges != g.size()-1 {
		panic(fmt.Sprintf("maze: carved %d passages over %d cells", edges, g.size()))
	}

	ends, diameter := g.termini()
	terminus := make([]bool, g.size())
	for _, i := range ends {
		terminus[i] = true
	}

	return &Maze{
		grid:     g,
		termini:  ends,
		terminus: terminus,
		diameter: diameter,
	}, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.grid.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.grid.height
}

// InBound reports whether (row, col) lies inside the maze.
func (m *Maze) InBound(row, col int) bool {
	return m.grid.inBound(row, col)
}

func (m *Maze) cell(i int) Cell {
	return Cell{
		pos:      m.grid.position(i),
		walls:    m.grid.walls[i],
		terminus: m.terminus[i],
	}
}

// Cell returns the cell at pos.
func (m *Maze) Cell(pos CellPosition) (Cell, error) {
	if !m.grid.inBound(pos.Row, pos.Col) {
		return Cell{}, fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	return m.cell(m.grid.index(pos)), nil
}

// Cells returns a fresh height×width copy of the grid.
func (m *Maze) Cells() [][]Cell {
	cells := make([][]Cell, m.grid.height)
	for row := range cells {
		cells[row] = make([]Cell, m.grid.width)
		for col := range cells[row] {
			cells[row][col] = m.cell(row*m.grid.width + col)
		}
	}
	return cells
}

// Termini returns the endpoints of the longest path: two cells, or one for a 1×1 maze.
func (m *Maze) Termini() []Cell {
	cells := make([]Cell, 0, len(m.termini))
	for _, i := range m.termini {
		cells = append(cells, m.cell(i))
	}
	return cells
}

// Diameter returns the number of steps between the termini.
func (m *Maze) Diameter() int {
	return m.diameter
}

// Edges returns the number of open passages.
func (m *Maze) Edges() int {
	return m.grid.edges()
}

// Neighbor returns the cell next to pos in direction d. It reports false when the
// step leaves the maze or filter rejects d; a nil filter ignores walls.
func (m *Maze) Neighbor(pos CellPosition, d Direction, filter DirectionFilter) (Cell, bool) {
	if !m.grid.inBound(pos.Row, pos.Col) {
		return Cell{}, false
	}
	next, ok := m.grid.neighbor(m.grid.index(pos), d, filter)
	if !ok {
		return Cell{}, false
	}
	return m.cell(next), true
}

// String provides a compact ASCII rendering of the maze with termini shown as '*'.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.Width()) + "\n")

	for row := 0; row < m.Height(); row++ {
		cellRow := "|"
		wallRow := "+"
		for col := 0; col < m.Width(); col++ {
			i := row*m.Width() + col
			walls := m.grid.walls[i]

			if m.terminus[i] {
				cellRow += " * "
			} else {
				cellRow += "   "
			}

			if walls.Has(East) {
				cellRow += "|"
			} else {
				cellRow += " "
			}

			if walls.Has(South) {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(cellRow + "\n")
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
