package spantree

import (
	"github.com/arduano/snake-solver/game"
	"github.com/arduano/snake-solver/solver"
)

// InnerTreeCoord maps a move from board cell c towards d onto the tree edge
// whose wall that move would cross. Moves that cross the middle of a 2×2
// block, which includes every clockwise move, address the same edge from both
// sides.
func InnerTreeCoord(c game.Coord, d game.Direction) (game.Coord, game.Direction) {
	meta := c.Map(func(v int) int { return (v+1)/2 - 1 })
	if d == game.Right || d == game.Down {
		meta = meta.Add(game.Offset{X: 1, Y: 1})
	}

	var dir game.Direction
	if d == game.Left || d == game.Right {
		dir = d.RotateLeft()
	} else {
		dir = d.RotateRight()
	}
	return meta, dir
}

// FollowingOutEdge returns the tree edge followed when leaving c outwards.
// It is also the edge a clockwise move from c would cross.
func FollowingOutEdge(c game.Coord) (game.Coord, game.Direction) {
	_, out := solver.ValidDirs(c)
	return c.Map(func(v int) int { return v / 2 }), out
}
