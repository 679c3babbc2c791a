package maze

import (
	"fmt"
	"strings"
)

// Cell is the state of one grid square.
type Cell uint8

const (
	Blocked Cell = iota
	Passable
)

// String returns a human-readable name for the cell state.
func (c Cell) String() string {
	if c == Passable {
		return "passable"
	}
	return "blocked"
}

// Position is a (column, row) coordinate on the grid.
type Position struct {
	Col, Row int
}

// Step returns the neighboring position one unit in direction d.
func (p Position) Step(d Direction) Position {
	dc, dr := d.Delta()
	return Position{Col: p.Col + dc, Row: p.Row + dr}
}

// String formats the position as "(col, row)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Col, p.Row)
}

// Direction is a unit grid step. None means standing still.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the four moves in search order. Path tie-breaks depend on it.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the column and row change for one step.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection converts a config name ("up", "left", "none", ...) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	case "none", "":
		return None, true
	default:
		return None, false
	}
}
