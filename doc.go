// Package maze generates perfect mazes and solves them with A*.
//
// It exposes two components, each of which can be driven to completion or
// one discrete step at a time:
//
//   - GridMaze: randomized iterative depth-first carving on a grid with a
//     stride of two cells, producing a spanning tree of corridors.
//   - Stepper: a generic A* search over any Graph. PathFinder is the Stepper
//     bound to a Grid with 4-directional movement and a Manhattan heuristic.
//
// Both satisfy Stepwise, so a presentation layer can animate them by calling
// Advance between frames and reading the state snapshots they expose. Nothing
// in this package sleeps, logs or spawns goroutines.
package maze
