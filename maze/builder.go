package maze

// Source is the pseudorandom source driving construction.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// frame is one level of the depth-first carve: a cell and the shuffled
// directions it has yet to try.
type frame struct {
	cell int
	dirs []Direction
}

// newFrame enumerates the in-bound directions of cell i and shuffles them with rng.
func (g *grid) newFrame(i int, rng Source) frame {
	dirs := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if _, ok := g.neighbor(i, d, nil); ok {
			dirs = append(dirs, d)
		}
	}
	rng.Shuffle(len(dirs), func(a, b int) { dirs[a], dirs[b] = dirs[b], dirs[a] })
	return frame{cell: i, dirs: dirs}
}

// carve builds a perfect maze with a randomized depth-first traversal starting at start.
// The stack holds at most one frame per cell, so a single long corridor needs width*height frames.
func (g *grid) carve(start int, rng Source) {
	visited := make([]bool, g.size())
	visited[start] = true
	stack := []frame{g.newFrame(start, rng)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if len(top.dirs) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[0]
		top.dirs = top.dirs[1:]
		next, _ := g.neighbor(top.cell, d, nil)
		if visited[next] {
			continue
		}

		g.removeWall(top.cell, next, d)
		visited[next] = true
		stack = append(stack, g.newFrame(next, rng))
	}
}
