package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/pdrpinto/maze/internal"
)

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot[NodeType comparable] struct {
	Status    StepResult
	Current   NodeType
	Frontier  mapset.Set[NodeType]
	Visited   mapset.Set[NodeType]
	Path      []NodeType
	StepIndex int
}

// Done reports whether the search has terminated.
func (s StepSnapshot[NodeType]) Done() bool {
	return s.Status == Found || s.Status == NotFound
}

// Stepper runs A* one expansion at a time. Its search state is created by
// NewStepper and never shared between searches.
type Stepper[NodeType comparable] struct {
	graph     Graph[NodeType]
	start     NodeType
	goal      NodeType
	heuristic Heuristic[NodeType]

	frontier *frontier[NodeType]
	visited  mapset.Set[NodeType]
	cameFrom map[NodeType]NodeType
	gScore   map[NodeType]float64
	fScore   map[NodeType]float64

	current   NodeType
	stepCount int
	status    StepResult
	path      []NodeType
}

// NewStepper creates a stepper with the start node queued.
func NewStepper[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
) *Stepper[NodeType] {
	s := &Stepper[NodeType]{
		graph:     graph,
		start:     startNode,
		goal:      goalNode,
		heuristic: heuristic,
		frontier:  newFrontier[NodeType](),
		visited:   mapset.New[NodeType](),
		cameFrom:  make(map[NodeType]NodeType),
		gScore:    map[NodeType]float64{startNode: 0},
		fScore:    map[NodeType]float64{startNode: heuristic(startNode, goalNode)},
		current:   startNode,
		status:    Continuing,
	}
	s.frontier.Push(startNode, s.fScore[startNode])
	return s
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search has terminated, Step keeps returning the final snapshot.
func (s *Stepper[NodeType]) Step() StepSnapshot[NodeType] {
	s.advance()
	return s.Snapshot()
}

// Advance implements Stepwise.
func (s *Stepper[NodeType]) Advance() bool {
	return s.advance() == Continuing
}

// Snapshot copies the current search state.
func (s *Stepper[NodeType]) Snapshot() StepSnapshot[NodeType] {
	snapshot := StepSnapshot[NodeType]{
		Status:    s.status,
		Current:   s.current,
		Frontier:  s.frontier.Nodes(s.visited),
		Visited:   internal.CopySet(s.visited),
		StepIndex: s.stepCount,
	}
	if s.status == Found {
		snapshot.Path = append([]NodeType(nil), s.path...)
	}
	return snapshot
}

// Result summarises the search so far.
func (s *Stepper[NodeType]) Result() Result[NodeType] {
	result := Result[NodeType]{
		ExpandedNodes: s.stepCount,
		Found:         s.status == Found,
	}
	if result.Found {
		result.Path = append([]NodeType(nil), s.path...)
		result.TotalCost = s.gScore[s.goal]
	}
	return result
}

// Status returns Continuing until the search terminates.
func (s *Stepper[NodeType]) Status() StepResult { return s.status }

// advance pops the lowest fScore entry, skipping stale entries for visited
// nodes, and either finishes at the goal or relaxes the node's neighbours.
func (s *Stepper[NodeType]) advance() StepResult {
	if s.status != Continuing {
		return s.status
	}

	for {
		item, ok := s.frontier.Pop()
		if !ok {
			s.status = NotFound
			return s.status
		}
		if s.visited.Has(item.Node) {
			continue
		}

		s.stepCount++
		current := item.Node
		s.current = current

		if current == s.goal {
			s.status = Found
			s.path = internal.ReconstructPath(s.cameFrom, current, s.start)
			return s.status
		}

		s.visited.Put(current)
		currentG := s.gScore[current]
		for _, neighbor := range s.graph.Neighbors(current) {
			if s.visited.Has(neighbor.ID) {
				continue
			}
			tentativeG := currentG + neighbor.Cost
			if previousG, exists := s.gScore[neighbor.ID]; exists && tentativeG >= previousG {
				continue
			}
			s.cameFrom[neighbor.ID] = current
			s.gScore[neighbor.ID] = tentativeG
			s.fScore[neighbor.ID] = tentativeG + s.heuristic(neighbor.ID, s.goal)
			s.frontier.Push(neighbor.ID, s.fScore[neighbor.ID])
		}

		if s.frontier.Len() == 0 {
			s.status = NotFound
		}
		return s.status
	}
}
