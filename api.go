package maze

import "fmt"

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) []Neighbor[NodeType]
}

// Neighbor represents a reachable node with a cost.
type Neighbor[NodeType comparable] struct {
	ID   NodeType
	Cost float64
}

// Heuristic returns the estimated cost from node a to node b
type Heuristic[NodeType comparable] func(from NodeType, to NodeType) float64

// Result contains the outcome of a search. Path runs from the first node
// after start up to and including the goal.
type Result[NodeType comparable] struct {
	Path          []NodeType
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Search runs A* from startNode to goalNode to completion. An exhausted
// frontier is reported through Result.Found, not as an error.
func Search[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
) Result[NodeType] {
	stepper := NewStepper(graph, startNode, goalNode, heuristic)
	for stepper.advance() == Continuing {
	}
	return stepper.Result()
}

// PathFinder is the A* stepper bound to a Grid.
type PathFinder = Stepper[Cell]

// gridGraph adapts a Grid to Graph: 4-directional moves between Path cells
// at unit cost.
type gridGraph struct{ grid *Grid }

// GridGraph exposes the Path cells of grid as a Graph.
func GridGraph(grid *Grid) Graph[Cell] {
	return gridGraph{grid: grid}
}

func (gg gridGraph) Neighbors(c Cell) []Neighbor[Cell] {
	out := make([]Neighbor[Cell], 0, len(directions))
	for _, d := range directions {
		next := c.Add(d.X, d.Y)
		if gg.grid.IsPath(next) {
			out = append(out, Neighbor[Cell]{ID: next, Cost: 1})
		}
	}
	return out
}

// Find computes a shortest path from start to end over the Path cells of
// grid. Both endpoints must be in bounds and on Path cells.
func Find(grid *Grid, start, end Cell) (Result[Cell], error) {
	if err := checkEndpoints(grid, start, end); err != nil {
		return Result[Cell]{}, err
	}
	return Search(GridGraph(grid), start, end, Manhattan), nil
}

// NewPathFinder returns a stepper searching grid from start to end.
func NewPathFinder(grid *Grid, start, end Cell) (*PathFinder, error) {
	if err := checkEndpoints(grid, start, end); err != nil {
		return nil, err
	}
	return NewStepper(GridGraph(grid), start, end, Manhattan), nil
}

func checkEndpoints(grid *Grid, start, end Cell) error {
	for _, endpoint := range []struct {
		name string
		cell Cell
	}{{"start", start}, {"end", end}} {
		if !grid.InBounds(endpoint.cell) {
			return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidCell, endpoint.name, endpoint.cell, grid.cols, grid.rows)
		}
		if !grid.IsPath(endpoint.cell) {
			return fmt.Errorf("%w: %s %v is a wall", ErrInvalidCell, endpoint.name, endpoint.cell)
		}
	}
	return nil
}
