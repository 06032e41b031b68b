// Package render draws maze and search state to a terminal.
package render

import (
	"bufio"
	"io"

	"github.com/fatih/color"
	"github.com/zyedidia/generic/mapset"

	"github.com/pdrpinto/maze"
)

type kind int

const (
	wall kind = iota
	open
	stacked
	frontier
	visited
	route
	start
	end
)

var glyphs = [...]byte{
	wall:     '#',
	open:     ' ',
	stacked:  'o',
	frontier: '+',
	visited:  '-',
	route:    '*',
	start:    'S',
	end:      'E',
}

// Frame is everything drawn in one redraw. Only Grid is required.
type Frame struct {
	Grid     *maze.Grid
	Carving  []maze.Cell
	Frontier mapset.Set[maze.Cell]
	Visited  mapset.Set[maze.Cell]
	Path     []maze.Cell
	Start    *maze.Cell
	End      *maze.Cell
}

// Renderer writes frames either as coloured blocks or as plain ASCII.
type Renderer struct {
	out     io.Writer
	plain   bool
	palette [len(glyphs)]*color.Color
}

// New returns a renderer writing to out. With plain set, ASCII glyphs are
// used instead of colours.
func New(out io.Writer, plain bool) *Renderer {
	r := &Renderer{out: out, plain: plain}
	r.palette = [len(glyphs)]*color.Color{
		wall:     color.New(color.BgBlack),
		open:     color.New(color.BgGreen),
		stacked:  color.New(color.BgYellow),
		frontier: color.New(color.BgBlue),
		visited:  color.New(color.BgHiWhite),
		route:    color.New(color.BgRed),
		start:    color.New(color.BgMagenta),
		end:      color.New(color.BgMagenta),
	}
	if !plain {
		for _, c := range r.palette {
			c.EnableColor()
		}
	}
	return r
}

// Draw writes one frame, one line per grid row.
func (r *Renderer) Draw(f Frame) error {
	kinds := layers(f)
	w := bufio.NewWriter(r.out)
	for y := range kinds {
		for _, k := range kinds[y] {
			if r.plain {
				w.WriteByte(glyphs[k])
				continue
			}
			if _, err := r.palette[k].Fprint(w, "  "); err != nil {
				return err
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear moves the cursor home and clears the screen, for animation.
func (r *Renderer) Clear() error {
	if r.plain {
		_, err := io.WriteString(r.out, "\n")
		return err
	}
	_, err := io.WriteString(r.out, "\x1b[H\x1b[2J")
	return err
}

// layers resolves what each cell shows. Later layers win: grid, carve stack,
// frontier, visited, route, endpoints.
func layers(f Frame) [][]kind {
	cells := f.Grid.Cells()
	kinds := make([][]kind, len(cells))
	for y, row := range cells {
		kinds[y] = make([]kind, len(row))
		for x, state := range row {
			if state == maze.Path {
				kinds[y][x] = open
			}
		}
	}

	set := func(c maze.Cell, k kind) {
		if f.Grid.InBounds(c) {
			kinds[c.Y][c.X] = k
		}
	}
	for _, c := range f.Carving {
		set(c, stacked)
	}
	f.Frontier.Each(func(c maze.Cell) { set(c, frontier) })
	f.Visited.Each(func(c maze.Cell) { set(c, visited) })
	for _, c := range f.Path {
		set(c, route)
	}
	if f.Start != nil {
		set(*f.Start, start)
	}
	if f.End != nil {
		set(*f.End, end)
	}
	return kinds
}
