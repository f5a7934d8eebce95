package maze

// grid is a height×width array of wall sets addressed by linear index row*width+col.
type grid struct {
	width  int
	height int
	walls  []WallSet
}

func newGrid(width, height int) *grid {
	walls := make([]WallSet, width*height)
	for i := range walls {
		walls[i] = allWalls
	}
	return &grid{width: width, height: height, walls: walls}
}

func (g *grid) size() int {
	return len(g.walls)
}

func (g *grid) inBound(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

func (g *grid) index(pos CellPosition) int {
	return pos.Row*g.width + pos.Col
}

func (g *grid) position(i int) CellPosition {
	return CellPosition{Row: i / g.width, Col: i % g.width}
}

// neighbor returns the index of the cell adjacent to i in direction d.
// It reports false when the step leaves the grid or filter rejects d.
func (g *grid) neighbor(i int, d Direction, filter DirectionFilter) (int, bool) {
	if filter != nil && !filter(d) {
		return 0, false
	}
	pos := g.position(i)
	dr, dc := d.Offset()
	row, col := pos.Row+dr, pos.Col+dc
	if !g.inBound(row, col) {
		return 0, false
	}
	return row*g.width + col, true
}

// open accepts the directions in which cell i has no wall.
func (g *grid) open(i int) DirectionFilter {
	walls := g.walls[i]
	return func(d Direction) bool {
		return !walls.Has(d)
	}
}

// removeWall opens the passage between i and its neighbor j in direction d,
// clearing the matching wall on both sides.
func (g *grid) removeWall(i, j int, d Direction) {
	g.walls[i] = g.walls[i].without(d)
	g.walls[j] = g.walls[j].without(d.Opposite())
}

// edges counts the open passages. Each passage is seen from both sides.
func (g *grid) edges() int {
	open := 0
	for _, w := range g.walls {
		open += len(Directions) - w.Len()
	}
	return open / 2
}
