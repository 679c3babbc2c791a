package maze

import (
	"errors"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// ErrNoRoute is returned when the goal cannot be reached from the start.
var ErrNoRoute = errors.New("maze: no route")

// ShortestPath returns the shortest 4-connected route over open cells from
// start to goal, both included. Neighbors are expanded Up, Down, Left, Right,
// which fixes the choice among equal-length routes.
//
// The start cell itself may be blocked; only the cells stepped onto must be
// open. An unreachable goal yields ErrNoRoute.
func ShortestPath(g *Grid, start, goal Position) ([]Position, error) {
	if start == goal {
		return []Position{start}, nil
	}
	if !g.InBounds(start) || !g.Passable(goal) {
		return nil, ErrNoRoute
	}

	cameFrom := map[Position]Position{start: start}
	queue := []Position{start}

	for head := 0; head < len(queue); head++ {
		curr := queue[head]
		if curr == goal {
			return backtrace(cameFrom, start, goal), nil
		}

		for _, d := range Directions {
			next := curr.Step(d)
			if _, seen := cameFrom[next]; seen || !g.Passable(next) {
				continue
			}
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}

	return nil, ErrNoRoute
}

func backtrace(cameFrom map[Position]Position, start, goal Position) []Position {
	path := []Position{goal}
	for curr := goal; curr != start; {
		curr = cameFrom[curr]
		path = append(path, curr)
	}
	slices.Reverse(path)
	return path
}

// Distance returns the number of steps on the shortest route, or -1.
func Distance(g *Grid, start, goal Position) int {
	path, err := ShortestPath(g, start, goal)
	if err != nil {
		return -1
	}
	return len(path) - 1
}

// FloodFill returns every open cell reachable from an open cell.
// A blocked or off-grid origin yields an empty set.
func FloodFill(g *Grid, from Position) mapset.Set[Position] {
	seen := mapset.New[Position]()
	if !g.Passable(from) {
		return seen
	}

	seen.Put(from)
	stack := []Position{from}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range Directions {
			next := curr.Step(d)
			if g.Passable(next) && !seen.Has(next) {
				seen.Put(next)
				stack = append(stack, next)
			}
		}
	}
	return seen
}

// IsConnected reports whether every open cell is reachable from (1, 1).
func IsConnected(g *Grid) bool {
	return FloodFill(g, Position{Col: 1, Row: 1}).Size() == g.CountPassable()
}
