// Package rules advances a game.World by one move.
package rules

import (
	"math/rand"

	"github.com/arduano/snake-solver/game"
)

type StepResult uint8

const (
	Stepped StepResult = iota
	Killed
	Finished
)

func (r StepResult) String() string {
	switch r {
	case Stepped:
		return "stepped"
	case Killed:
		return "killed"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Step moves the snake head one cell towards d.
//
// Leaving the board or entering a snake cell kills the snake and leaves the
// world untouched. Eating food grows the snake by GrowthPerFood and respawns
// food with rng; when no empty cell is left the game is Finished.
func Step(w *game.World, d game.Direction, rng *rand.Rand) StepResult {
	next := w.HeadCoord().Step(d)

	cell, ok := w.Cell(next)
	if !ok || cell.IsSnake() {
		return Killed
	}

	w.Turn++
	ate := cell.IsFood()
	if ate {
		w.Length += w.GrowthPerFood
		w.FoodEaten++
		w.HasFood = false
	}

	w.Cells.Set(next, game.Cell{Kind: game.CellSnake, Age: w.Length})
	w.Body = append(w.Body, game.Coord{})
	copy(w.Body[1:], w.Body)
	w.Body[0] = next
	ageBody(w)

	if ate && !w.SpawnFood(rng) {
		return Finished
	}
	return Stepped
}

// ageBody decrements every segment and drops the ones that reach the end of
// their life. Ages decrease towards the tail, so expired cells are a suffix.
func ageBody(w *game.World) {
	keep := len(w.Body)
	for i, c := range w.Body {
		cell := w.Cells.At(c)
		if cell.Age > 0 {
			cell.Age--
			w.Cells.Set(c, cell)
			continue
		}
		w.Cells.Set(c, game.Cell{})
		if i < keep {
			keep = i
		}
	}
	w.Body = w.Body[:keep]
}

// LegalMoves lists the directions that do not immediately kill the snake.
func LegalMoves(w *game.World) []game.Direction {
	moves := make([]game.Direction, 0, 4)
	head := w.HeadCoord()
	for _, d := range game.Directions {
		cell, ok := w.Cell(head.Step(d))
		if ok && !cell.IsSnake() {
			moves = append(moves, d)
		}
	}
	return moves
}

// IsTerminal reports whether the snake has no safe move left.
func IsTerminal(w *game.World) bool {
	return len(LegalMoves(w)) == 0
}
