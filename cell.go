package maze

import "fmt"

// Cell is a grid coordinate. X is the column, Y the row.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the cell offset by dx, dy.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// directions in expansion order: right, down, left, up.
var directions = [4]Cell{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Manhattan is the L1 distance between two cells. It is admissible and
// consistent for unit-cost 4-directional movement.
func Manhattan(from, to Cell) float64 {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}
