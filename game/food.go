// food.go implements food placement.

package game

import "math/rand"

// SpawnFood puts food on a random empty cell and reports whether one existed.
//
// While at least an eighth of the board is free, random probing finds a cell
// quickly; on a crowded board the free cells are enumerated instead.
func (w *World) SpawnFood(rng *rand.Rand) bool {
	if rng == nil {
		rng = rand.New(rand.NewSource(int64(w.Turn) + 1))
	}

	size := w.Cells.Size()
	total := w.Cells.Len()
	w.HasFood = false

	if len(w.Body) < total*7/8 {
		for {
			c := Coord{X: rng.Intn(size), Y: rng.Intn(size)}
			if cell, _ := w.Cells.Get(c); cell.IsEmpty() {
				w.placeFood(c)
				return true
			}
		}
	}

	free := make([]Coord, 0, total-len(w.Body))
	for c := range w.Cells.Coords() {
		if cell, _ := w.Cells.Get(c); cell.IsEmpty() {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return false
	}
	w.placeFood(free[rng.Intn(len(free))])
	return true
}

func (w *World) placeFood(c Coord) {
	w.Cells.Set(c, Cell{Kind: CellFood})
	w.Food = c
	w.HasFood = true
}
