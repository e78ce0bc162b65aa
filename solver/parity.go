package solver

import (
	"fmt"

	"github.com/arduano/snake-solver/game"
)

// ValidDirs returns the two moves the Hamiltonian walk may take from c.
//
// Every 2×2 block is circled clockwise; the other allowed move leaves the
// block outwards. The pair depends only on the parity of c:
//
//	(even, even) → Right, Up
//	(odd,  even) → Down,  Right
//	(odd,  odd)  → Left,  Down
//	(even, odd)  → Up,    Left
//
// Coordinates with a negative component have no parity class and panic.
func ValidDirs(c game.Coord) (clockwise, out game.Direction) {
	switch [2]int{c.X % 2, c.Y % 2} {
	case [2]int{0, 0}:
		return game.Right, game.Up
	case [2]int{1, 0}:
		return game.Down, game.Right
	case [2]int{1, 1}:
		return game.Left, game.Down
	case [2]int{0, 1}:
		return game.Up, game.Left
	}
	panic(fmt.Sprintf("solver: coordinate %v has no parity class", c))
}
