// Package solver defines what a snake solver consumes and produces.
//
// A Solver is asked for a fresh Path whenever the previous one has been
// consumed. Implementations live in subpackages: spantree is the adaptive
// spanning-tree solver, zigzag and randomtree are fixed-cycle baselines.
package solver

import (
	"github.com/arduano/snake-solver/game"
)

// World is the read-only view of the board a solver plans against.
// *game.World implements it.
type World interface {
	Size() int
	HeadCoord() game.Coord
	FoodCoord() game.Coord
	Cell(c game.Coord) (game.Cell, bool)
	// BodyPath lists the moves from the head to the tail.
	BodyPath() game.Path
}

type Solver interface {
	// NextPath returns a non-empty sequence of moves for the current world.
	NextPath(w World) game.Path
}

// Inspector exposes snapshots of a solver's internal grids for overlays.
// Both methods return nil before the first plan.
type Inspector interface {
	// WallGrid holds one flag per edge between adjacent board cells.
	WallGrid() *game.EdgeGraph[bool]
	// CostField holds the distance-to-food value of each board cell.
	CostField() *game.Grid[uint32]
}

var _ World = (*game.World)(nil)
