package maze

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/queue"
)

// unreached marks a cell the current flood fill has not reached yet.
const unreached = math.MaxInt

// floodFill runs a breadth-first pass over open passages from origin, writing the
// distance of every cell into dist. It returns the last cell dequeued, which lies
// farthest from origin, along with its distance.
func (g *grid) floodFill(origin int, dist []int) (farthest, distance int) {
	for i := range dist {
		dist[i] = unreached
	}
	dist[origin] = 0

	frontier := queue.New[int]()
	frontier.Enqueue(origin)
	farthest = origin
	for !frontier.Empty() {
		cur := frontier.Dequeue()
		farthest = cur
		open := g.open(cur)
		for _, d := range Directions {
			next, ok := g.neighbor(cur, d, open)
			if !ok || dist[next] <= dist[cur]+1 {
				continue
			}
			dist[next] = dist[cur] + 1
			frontier.Enqueue(next)
		}
	}

	for i, d := range dist {
		if d == unreached {
			panic(fmt.Sprintf("maze: cell %v unreachable from %v", g.position(i), g.position(origin)))
		}
	}
	return farthest, dist[farthest]
}

// termini finds both endpoints of the tree's diameter with two flood fills: the
// first from the top-left cell, the second from the cell the first one ended on.
// Both endpoints are the same cell when the grid has a single cell.
func (g *grid) termini() (ends []int, diameter int) {
	dist := make([]int, g.size())
	first, _ := g.floodFill(0, dist)
	second, diameter := g.floodFill(first, dist)
	if first == second {
		return []int{first}, diameter
	}
	return []int{first, second}, diameter
}
