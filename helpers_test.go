package maze

import "github.com/zyedidia/generic/queue"

// bfsDistances returns the step distance from start to every reachable Path
// cell.
func bfsDistances(grid *Grid, start Cell) map[Cell]int {
	dist := map[Cell]int{start: 0}
	q := queue.New[Cell]()
	q.Enqueue(start)
	for !q.Empty() {
		current := q.Dequeue()
		for _, d := range directions {
			next := current.Add(d.X, d.Y)
			if !grid.IsPath(next) {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[current] + 1
			q.Enqueue(next)
		}
	}
	return dist
}

// adjacencyEdges counts pairs of orthogonally adjacent Path cells.
func adjacencyEdges(grid *Grid) int {
	edges := 0
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			c := Cell{X: x, Y: y}
			if !grid.IsPath(c) {
				continue
			}
			if grid.IsPath(c.Add(1, 0)) {
				edges++
			}
			if grid.IsPath(c.Add(0, 1)) {
				edges++
			}
		}
	}
	return edges
}

// hasOpenSquare reports whether any 2x2 block is entirely Path.
func hasOpenSquare(grid *Grid) bool {
	for y := 0; y+1 < grid.Rows(); y++ {
		for x := 0; x+1 < grid.Cols(); x++ {
			c := Cell{X: x, Y: y}
			if grid.IsPath(c) && grid.IsPath(c.Add(1, 0)) && grid.IsPath(c.Add(0, 1)) && grid.IsPath(c.Add(1, 1)) {
				return true
			}
		}
	}
	return false
}

func pathCells(grid *Grid) []Cell {
	var cells []Cell
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			if c := (Cell{X: x, Y: y}); grid.IsPath(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

func generated(cols, rows int, seed int64) *Grid {
	m, err := New(cols, rows, WithSeed(seed))
	if err != nil {
		panic(err)
	}
	if err := m.Generate(0, 0); err != nil {
		panic(err)
	}
	return m.Grid()
}
