// Package config holds the presentation settings shared by the binaries:
// screen size, cell size, pacing and the solve endpoints.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/pdrpinto/maze"
)

const (
	DefaultWidth      = 1000
	DefaultHeight     = 1000
	DefaultCellSize   = 5
	DefaultBuildDelay = time.Millisecond
	DefaultSolveDelay = time.Millisecond
)

// Config describes one generate-and-solve run. Width and Height are in the
// same unit as CellSize; the maze has Width/CellSize columns and
// Height/CellSize rows.
type Config struct {
	Width      int
	Height     int
	CellSize   int
	Seed       int64
	BuildDelay time.Duration
	SolveDelay time.Duration
}

// Default returns the settings of a 200x200 maze paced at one millisecond
// per step. A zero Seed means seed from the clock.
func Default() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		CellSize:   DefaultCellSize,
		BuildDelay: DefaultBuildDelay,
		SolveDelay: DefaultSolveDelay,
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.CellSize < 1 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", c.CellSize))
	} else {
		cols, rows := c.Dimensions()
		if cols < 1 || rows < 1 {
			errs = append(errs, fmt.Errorf("%w: %dx%d with cell size %d gives %dx%d cells",
				maze.ErrInvalidDimension, c.Width, c.Height, c.CellSize, cols, rows))
		}
	}
	if c.BuildDelay < 0 || c.SolveDelay < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}
	return errors.Join(errs...)
}

// Dimensions returns the grid size in cells.
func (c Config) Dimensions() (cols, rows int) {
	if c.CellSize < 1 {
		return 0, 0
	}
	return c.Width / c.CellSize, c.Height / c.CellSize
}

// Endpoints returns the solve start, the top-left corner, and end, one cell
// in from the bottom-right corner, clamped into the grid.
func (c Config) Endpoints() (start, end maze.Cell) {
	cols, rows := c.Dimensions()
	end = maze.Cell{X: max(cols-2, 0), Y: max(rows-2, 0)}
	return maze.Cell{}, end
}

// Options converts the seed into generator options.
func (c Config) Options() []maze.Option {
	if c.Seed == 0 {
		return nil
	}
	return []maze.Option{maze.WithSeed(c.Seed)}
}
