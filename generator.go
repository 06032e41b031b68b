package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/stack"
)

// StepResult is the outcome of a single step of either component.
type StepResult int

const (
	// Continuing means more steps remain.
	Continuing StepResult = iota
	// Done means maze generation has exhausted the carve stack.
	Done
	// Found means the search reached its goal.
	Found
	// NotFound means the search frontier emptied without reaching the goal.
	NotFound
)

func (r StepResult) String() string {
	switch r {
	case Continuing:
		return "continuing"
	case Done:
		return "done"
	case Found:
		return "found"
	case NotFound:
		return "not found"
	}
	return fmt.Sprintf("StepResult(%d)", int(r))
}

// Options defines parameters for maze generation.
type Options struct {
	Rand *rand.Rand
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(options *Options) { options.Rand = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r as the only source of randomness.
func WithRand(r *rand.Rand) Option {
	return func(options *Options) { options.Rand = r }
}

// GridMaze carves a perfect maze into its grid by randomized depth-first
// search. Carve nodes sit two cells apart, and the cell between two connected
// nodes is opened as the corridor.
type GridMaze struct {
	grid  *Grid
	stack *stack.Stack[Cell]
	rng   *rand.Rand
	steps int
	begun bool
}

// New returns a generator over a cols x rows grid of walls.
func New(cols, rows int, options ...Option) (*GridMaze, error) {
	grid, err := NewGrid(cols, rows)
	if err != nil {
		return nil, err
	}

	opts := Options{}
	for _, option := range options {
		option(&opts)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &GridMaze{
		grid:  grid,
		stack: stack.New[Cell](),
		rng:   opts.Rand,
	}, nil
}

// Begin opens the origin and pushes it onto the carve stack. Step then
// carves one move at a time. A GridMaze carves once: Begin fails while a
// generation is running and after it has finished.
func (m *GridMaze) Begin(x, y int) error {
	origin := Cell{X: x, Y: y}
	if !m.grid.InBounds(origin) {
		return fmt.Errorf("%w: origin %v outside %dx%d grid", ErrInvalidCell, origin, m.grid.cols, m.grid.rows)
	}
	if m.stack.Size() > 0 {
		return ErrGenerationInProgress
	}
	if m.begun {
		return ErrAlreadyGenerated
	}
	if err := m.grid.Open(origin); err != nil {
		return err
	}
	m.begun = true
	m.stack.Push(origin)
	return nil
}

// Generate carves a full maze from the origin. It is Begin followed by Step
// until Done.
func (m *GridMaze) Generate(x, y int) error {
	if err := m.Begin(x, y); err != nil {
		return err
	}
	Drive(m)
	return nil
}

// Step performs one push or pop of the carve stack and reports Done once
// the stack is empty.
func (m *GridMaze) Step() StepResult {
	if m.stack.Size() == 0 {
		return Done
	}
	m.steps++

	current := m.stack.Peek()
	var candidates [len(directions)]Cell
	n := 0
	for _, d := range directions {
		next := current.Add(2*d.X, 2*d.Y)
		if m.grid.InBounds(next) && !m.grid.IsPath(next) {
			candidates[n] = next
			n++
		}
	}

	if n == 0 {
		m.stack.Pop()
	} else {
		next := candidates[m.rng.Intn(n)]
		m.grid.cells[next.Y*m.grid.cols+next.X] = Path
		between := Cell{X: (current.X + next.X) / 2, Y: (current.Y + next.Y) / 2}
		m.grid.cells[between.Y*m.grid.cols+between.X] = Path
		m.stack.Push(next)
	}

	if m.stack.Size() == 0 {
		return Done
	}
	return Continuing
}

// Advance implements Stepwise.
func (m *GridMaze) Advance() bool {
	return m.Step() == Continuing
}

// Carve opens a single cell, e.g. to guarantee a search target is a path.
func (m *GridMaze) Carve(c Cell) error {
	return m.grid.Open(c)
}

// Grid returns the maze's grid. Callers must treat it as read-only while
// generation is running.
func (m *GridMaze) Grid() *Grid { return m.grid }

// Stack returns a copy of the carve stack, bottom first.
func (m *GridMaze) Stack() []Cell {
	tmp := m.stack.Copy()
	out := make([]Cell, tmp.Size())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = tmp.Pop()
	}
	return out
}

// Head returns the top of the carve stack, the cell being carved from.
func (m *GridMaze) Head() (Cell, bool) {
	if m.stack.Size() == 0 {
		return Cell{}, false
	}
	return m.stack.Peek(), true
}

// Steps returns the number of stack operations performed so far.
func (m *GridMaze) Steps() int { return m.steps }
