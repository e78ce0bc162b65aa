// Package zigzag walks a fixed Hamiltonian cycle: rows are swept back and
// forth from column 1 to the right edge, and column 0 is the lane back to
// the top. It only works on boards with an even size.
package zigzag

import (
	"github.com/arduano/snake-solver/game"
	"github.com/arduano/snake-solver/solver"
)

type Solver struct{}

func New() *Solver { return &Solver{} }

var _ solver.Solver = (*Solver)(nil)

func (s *Solver) NextPath(w solver.World) game.Path {
	var path game.Path
	cur := w.HeadCoord()
	last := w.Size() - 1
	for range w.Size() * w.Size() {
		if cell, _ := w.Cell(cur); cell.IsFood() {
			break
		}
		d := nextMove(cur, last)
		path.Push(d)
		cur = cur.Step(d)
	}
	return path
}

func nextMove(c game.Coord, last int) game.Direction {
	if c.X == 0 {
		if c.Y == 0 {
			return game.Right
		}
		return game.Up
	}

	goingRight := c.Y%2 == 0
	switch {
	case goingRight && c.X == last:
		return game.Down
	case !goingRight && c.X == 1 && c.Y != last:
		return game.Down
	case goingRight:
		return game.Right
	default:
		return game.Left
	}
}
