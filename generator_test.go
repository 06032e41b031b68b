package maze

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("New rejects empty dimensions", t, func() {
		m, err := New(0, 5)
		So(m, ShouldBeNil)
		So(errors.Is(err, ErrInvalidDimension), ShouldBeTrue)

		m, err = New(5, -2)
		So(m, ShouldBeNil)
		So(errors.Is(err, ErrInvalidDimension), ShouldBeTrue)
	})

	Convey("New rejects dimensions whose cell count overflows", t, func() {
		m, err := New(math.MaxInt, 2)
		So(m, ShouldBeNil)
		So(errors.Is(err, ErrInvalidDimension), ShouldBeTrue)

		m, err = New(math.MaxInt/2+1, 2)
		So(m, ShouldBeNil)
		So(errors.Is(err, ErrInvalidDimension), ShouldBeTrue)
	})

	Convey("New starts with walls only and an empty stack", t, func() {
		m, err := New(7, 5, WithSeed(1))
		So(err, ShouldBeNil)
		So(m.Grid().PathCount(), ShouldEqual, 0)
		So(m.Stack(), ShouldBeEmpty)
		_, ok := m.Head()
		So(ok, ShouldBeFalse)
		So(m.Step(), ShouldEqual, Done)
	})
}

func TestGenerate(t *testing.T) {
	Convey("Given generated mazes", t, func() {
		sizes := [][2]int{{1, 1}, {2, 2}, {1, 9}, {9, 1}, {5, 5}, {21, 15}, {20, 20}, {40, 31}}
		for _, size := range sizes {
			for seed := int64(0); seed < 5; seed++ {
				grid := generated(size[0], size[1], seed)

				paths := grid.PathCount()
				So(paths, ShouldBeGreaterThan, 0)
				So(paths-adjacencyEdges(grid), ShouldEqual, 1)
				So(bfsDistances(grid, Cell{}), ShouldHaveLength, paths)
				So(hasOpenSquare(grid), ShouldBeFalse)
			}
		}
	})

	Convey("Every stride-2 node reachable from the origin is carved", t, func() {
		grid := generated(21, 15, 7)
		for y := 0; y < grid.Rows(); y += 2 {
			for x := 0; x < grid.Cols(); x += 2 {
				So(grid.IsPath(Cell{X: x, Y: y}), ShouldBeTrue)
			}
		}
		for y := 1; y < grid.Rows(); y += 2 {
			for x := 1; x < grid.Cols(); x += 2 {
				So(grid.IsPath(Cell{X: x, Y: y}), ShouldBeFalse)
			}
		}
	})

	Convey("The same seed yields the same maze", t, func() {
		a := generated(31, 23, 42)
		b := generated(31, 23, 42)
		So(a.Cells(), ShouldResemble, b.Cells())
		So(a.String(), ShouldEqual, b.String())
	})

	Convey("WithRand is used as the source of randomness", t, func() {
		a, _ := New(25, 25, WithRand(rand.New(rand.NewSource(9))))
		b, _ := New(25, 25, WithSeed(9))
		So(a.Generate(0, 0), ShouldBeNil)
		So(b.Generate(0, 0), ShouldBeNil)
		So(a.Grid().String(), ShouldEqual, b.Grid().String())
	})

	Convey("An odd origin carves the odd lattice", t, func() {
		m, _ := New(11, 11, WithSeed(3))
		So(m.Generate(1, 1), ShouldBeNil)
		grid := m.Grid()
		So(grid.PathCount()-adjacencyEdges(grid), ShouldEqual, 1)
		So(grid.IsPath(Cell{X: 0, Y: 0}), ShouldBeFalse)
		So(bfsDistances(grid, Cell{X: 1, Y: 1}), ShouldHaveLength, grid.PathCount())
	})

	Convey("Begin validates its origin", t, func() {
		m, _ := New(5, 5, WithSeed(1))
		err := m.Begin(5, 0)
		So(errors.Is(err, ErrInvalidCell), ShouldBeTrue)
		So(m.Grid().PathCount(), ShouldEqual, 0)

		err = m.Generate(-1, 2)
		So(errors.Is(err, ErrInvalidCell), ShouldBeTrue)
	})

	Convey("Begin refuses to restart a running generation", t, func() {
		m, _ := New(9, 9, WithSeed(1))
		So(m.Begin(0, 0), ShouldBeNil)
		So(m.Begin(2, 2), ShouldEqual, ErrGenerationInProgress)
	})
}

func TestStepGeneration(t *testing.T) {
	Convey("Stepping to Done matches Generate", t, func() {
		batch, _ := New(33, 19, WithSeed(11))
		So(batch.Generate(0, 0), ShouldBeNil)

		stepped, _ := New(33, 19, WithSeed(11))
		So(stepped.Begin(0, 0), ShouldBeNil)
		steps := 0
		for stepped.Step() == Continuing {
			steps++
			So(len(stepped.Stack()), ShouldBeGreaterThan, 0)
		}
		steps++

		So(stepped.Grid().Cells(), ShouldResemble, batch.Grid().Cells())
		So(stepped.Steps(), ShouldEqual, steps)
		So(batch.Steps(), ShouldEqual, steps)
		So(stepped.Stack(), ShouldBeEmpty)
	})

	Convey("Each step pushes or pops exactly one cell", t, func() {
		m, _ := New(15, 15, WithSeed(5))
		So(m.Begin(0, 0), ShouldBeNil)
		So(m.Stack(), ShouldResemble, []Cell{{X: 0, Y: 0}})

		for {
			before := m.Stack()
			pathsBefore := m.Grid().PathCount()
			result := m.Step()
			after := m.Stack()

			if len(after) > len(before) {
				So(len(after), ShouldEqual, len(before)+1)
				So(after[:len(before)], ShouldResemble, before)
				So(m.Grid().PathCount(), ShouldEqual, pathsBefore+2)
				head, ok := m.Head()
				So(ok, ShouldBeTrue)
				So(head, ShouldResemble, after[len(after)-1])
				So(Manhattan(head, before[len(before)-1]), ShouldEqual, 2)
			} else {
				So(len(after), ShouldEqual, len(before)-1)
				So(before[:len(after)], ShouldResemble, after)
				So(m.Grid().PathCount(), ShouldEqual, pathsBefore)
			}

			if result == Done {
				break
			}
		}
		So(m.Step(), ShouldEqual, Done)
	})

	Convey("Drive runs a generator to completion", t, func() {
		m, _ := New(9, 9, WithSeed(2))
		So(m.Begin(0, 0), ShouldBeNil)
		n := Drive(m)
		So(n, ShouldEqual, m.Steps())
		So(m.Stack(), ShouldBeEmpty)
	})

	Convey("A finished maze refuses a second generation", t, func() {
		m, _ := New(9, 9, WithSeed(2))
		So(m.Generate(0, 0), ShouldBeNil)
		before := m.Grid().String()
		steps := m.Steps()

		So(m.Generate(1, 1), ShouldEqual, ErrAlreadyGenerated)
		So(m.Begin(0, 0), ShouldEqual, ErrAlreadyGenerated)
		So(m.Grid().String(), ShouldEqual, before)
		So(m.Steps(), ShouldEqual, steps)
		So(m.Stack(), ShouldBeEmpty)

		grid := m.Grid()
		So(grid.PathCount()-adjacencyEdges(grid), ShouldEqual, 1)
		So(hasOpenSquare(grid), ShouldBeFalse)
	})

	Convey("Carve opens a single cell", t, func() {
		m, _ := New(6, 6, WithSeed(2))
		So(m.Generate(0, 0), ShouldBeNil)
		target := Cell{X: 5, Y: 5}
		So(m.Grid().IsPath(target), ShouldBeFalse)
		So(m.Carve(target), ShouldBeNil)
		So(m.Grid().IsPath(target), ShouldBeTrue)
		So(errors.Is(m.Carve(Cell{X: 6, Y: 0}), ErrInvalidCell), ShouldBeTrue)
	})
}
