package maze

import (
	"fmt"
	"math"
	"strings"
)

// CellState is the content of a grid cell.
type CellState uint8

const (
	Wall CellState = iota
	Path
)

func (s CellState) String() string {
	if s == Path {
		return "path"
	}
	return "wall"
}

const (
	wallRune = '#'
	pathRune = '.'
)

// Grid is a fixed-size rectangle of cells stored row-major. Cells only ever
// move from Wall to Path.
type Grid struct {
	cols  int
	rows  int
	cells []CellState
}

// NewGrid returns a cols x rows grid with every cell a Wall.
func NewGrid(cols, rows int) (*Grid, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, cols, rows)
	}
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %dx%d cells overflow", ErrInvalidDimension, cols, rows)
	}
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]CellState, cols*rows),
	}, nil
}

// ParseGrid builds a grid from text rows where '#' is a wall and '.' or ' '
// is a path. All rows must have the same length.
func ParseGrid(lines ...string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimension)
	}
	grid, err := NewGrid(len(lines[0]), len(lines))
	if err != nil {
		return nil, err
	}
	for y, line := range lines {
		if len(line) != grid.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, y, len(line), grid.cols)
		}
		for x, r := range []byte(line) {
			switch r {
			case wallRune:
			case pathRune, ' ':
				grid.cells[y*grid.cols+x] = Path
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrInvalidGrid, r, Cell{x, y})
			}
		}
	}
	return grid, nil
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.cols && c.Y >= 0 && c.Y < g.rows
}

// State returns the state of c. Cells outside the grid read as Wall.
func (g *Grid) State(c Cell) CellState {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Y*g.cols+c.X]
}

func (g *Grid) IsPath(c Cell) bool { return g.State(c) == Path }

// Open turns c into a Path cell. Opening a Path cell is a no-op.
func (g *Grid) Open(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v outside %dx%d grid", ErrInvalidCell, c, g.cols, g.rows)
	}
	g.cells[c.Y*g.cols+c.X] = Path
	return nil
}

// Cells returns a copy of the grid indexed [y][x].
func (g *Grid) Cells() [][]CellState {
	out := make([][]CellState, g.rows)
	for y := range out {
		row := make([]CellState, g.cols)
		copy(row, g.cells[y*g.cols:(y+1)*g.cols])
		out[y] = row
	}
	return out
}

// PathCount returns the number of Path cells.
func (g *Grid) PathCount() int {
	n := 0
	for _, s := range g.cells {
		if s == Path {
			n++
		}
	}
	return n
}

func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.cells[y*g.cols+x] == Path {
				sb.WriteByte(pathRune)
			} else {
				sb.WriteByte(wallRune)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
