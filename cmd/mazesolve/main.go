package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/maze"
	"github.com/pdrpinto/maze/internal/config"
	"github.com/pdrpinto/maze/internal/render"
)

var log = logrus.New()

var (
	cfg          config.Config
	flagNoColor  bool
	flagAnimate  bool
	flagEvery    int
	flagLogLevel string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mazesolve",
		Short: "Generate a perfect maze and solve it with A*",
		Long: `mazesolve carves a perfect maze by randomized depth-first search and
finds the shortest route from the top-left corner to the cell one in from the
bottom-right corner with A*, optionally animating both.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(flagLogLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			log.SetOutput(os.Stderr)
			if flagEvery < 1 {
				return fmt.Errorf("--every must be at least 1, got %d", flagEvery)
			}
			return cfg.Validate()
		},
	}

	cfg = config.Default()
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&cfg.Width, "width", cfg.Width, "Screen width")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "Screen height")
	flags.IntVar(&cfg.CellSize, "cell-size", cfg.CellSize, "Size of one maze cell; the grid is width/cell-size by height/cell-size")
	flags.Int64Var(&cfg.Seed, "seed", 0, "Random seed (0 seeds from the clock)")
	flags.DurationVar(&cfg.BuildDelay, "build-delay", cfg.BuildDelay, "Delay between generation frames when animating")
	flags.DurationVar(&cfg.SolveDelay, "solve-delay", cfg.SolveDelay, "Delay between search frames when animating")
	flags.BoolVar(&flagNoColor, "no-color", false, "Draw with ASCII glyphs instead of colours")
	flags.BoolVar(&flagAnimate, "animate", false, "Redraw while generating and solving")
	flags.IntVar(&flagEvery, "every", 1, "Redraw every N steps when animating")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(solveCmd())
	return rootCmd
}

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate and print a maze",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := render.New(cmd.OutOrStdout(), flagNoColor)
			m, err := buildMaze(r)
			if err != nil {
				return err
			}
			return r.Draw(render.Frame{Grid: m.Grid()})
		},
	}
}

func solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Generate a maze, solve it and print the route",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := render.New(cmd.OutOrStdout(), flagNoColor)
			m, err := buildMaze(r)
			if err != nil {
				return err
			}

			start, end := cfg.Endpoints()
			if !m.Grid().IsPath(end) {
				log.WithField("end", end).Debug("opening end cell")
				if err := m.Carve(end); err != nil {
					return err
				}
			}

			finder, err := maze.NewPathFinder(m.Grid(), start, end)
			if err != nil {
				return fmt.Errorf("start search: %w", err)
			}

			began := time.Now()
			snapshot := finder.Snapshot()
			for !snapshot.Done() {
				snapshot = finder.Step()
				if flagAnimate && (snapshot.StepIndex%flagEvery == 0 || snapshot.Done()) {
					frame := render.Frame{
						Grid:     m.Grid(),
						Frontier: snapshot.Frontier,
						Visited:  snapshot.Visited,
						Path:     snapshot.Path,
						Start:    &start,
						End:      &end,
					}
					if err := redraw(r, frame, cfg.SolveDelay); err != nil {
						return err
					}
				}
			}

			fields := logrus.Fields{
				"start":    start,
				"end":      end,
				"expanded": snapshot.StepIndex,
				"elapsed":  time.Since(began),
			}
			if snapshot.Status == maze.NotFound {
				log.WithFields(fields).Warn("no path found")
			} else {
				fields["length"] = len(snapshot.Path)
				log.WithFields(fields).Info("path found")
			}

			if flagAnimate {
				return nil
			}
			return r.Draw(render.Frame{Grid: m.Grid(), Path: snapshot.Path, Start: &start, End: &end})
		},
	}
}

// buildMaze generates the configured maze from the top-left corner, drawing
// it as it grows when animating.
func buildMaze(r *render.Renderer) (*maze.GridMaze, error) {
	cols, rows := cfg.Dimensions()
	m, err := maze.New(cols, rows, cfg.Options()...)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	if err := m.Begin(0, 0); err != nil {
		return nil, err
	}
	for m.Advance() {
		if flagAnimate && m.Steps()%flagEvery == 0 {
			if err := redraw(r, render.Frame{Grid: m.Grid(), Carving: m.Stack()}, cfg.BuildDelay); err != nil {
				return nil, err
			}
		}
	}

	log.WithFields(logrus.Fields{
		"cols":    cols,
		"rows":    rows,
		"seed":    cfg.Seed,
		"steps":   m.Steps(),
		"paths":   m.Grid().PathCount(),
		"elapsed": time.Since(began),
	}).Info("maze generated")
	return m, nil
}

func redraw(r *render.Renderer, frame render.Frame, delay time.Duration) error {
	if err := r.Clear(); err != nil {
		return err
	}
	if err := r.Draw(frame); err != nil {
		return err
	}
	time.Sleep(delay)
	return nil
}
