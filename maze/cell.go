package maze

import "fmt"

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// String returns the position as "(row,col)".
func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a read-only snapshot of a single cell in a maze grid.
// It includes the walls still standing around it and whether it was picked as a terminus.
type Cell struct {
	pos      CellPosition
	walls    WallSet
	terminus bool
}

// Position returns the coordinates of the cell.
func (c Cell) Position() CellPosition {
	return c.pos
}

// Row returns the row index of the cell.
func (c Cell) Row() int {
	return c.pos.Row
}

// Col returns the column index of the cell.
func (c Cell) Col() int {
	return c.pos.Col
}

// Walls returns the walls present around the cell.
func (c Cell) Walls() WallSet {
	return c.walls
}

// IsTerminus returns true if the cell is one of the maze's longest-path endpoints.
func (c Cell) IsTerminus() bool {
	return c.terminus
}

// Equal reports whether both cells sit at the same coordinates. Wall state is ignored.
func (c Cell) Equal(other Cell) bool {
	return c.pos == other.pos
}

// OpenWalls returns a filter accepting only the directions in which c has no wall,
// i.e. the passages leaving c.
func OpenWalls(c Cell) DirectionFilter {
	return func(d Direction) bool {
		return !c.walls.Has(d)
	}
}
