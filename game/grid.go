package game

import "iter"

// Grid is a fixed size×size array stored row-major: index = y*size + x.
//
// Out-of-range reads report absence and out-of-range writes are dropped, so
// callers can probe neighbours without bounds checks of their own. Grids are
// meant to be cleared with Fill and reused rather than reallocated.
type Grid[T any] struct {
	size  int
	cells []T
}

// NewGrid allocates a size×size grid with every cell set to fill.
func NewGrid[T any](size int, fill T) *Grid[T] {
	if size < 0 {
		size = 0
	}
	g := &Grid[T]{size: size, cells: make([]T, size*size)}
	g.Fill(fill)
	return g
}

func (g *Grid[T]) Size() int { return g.size }

// Len is the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

func (g *Grid[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.size && c.Y < g.size
}

func (g *Grid[T]) index(c Coord) int {
	return c.Y*g.size + c.X
}

// Get returns the value at c and whether c is inside the grid.
func (g *Grid[T]) Get(c Coord) (T, bool) {
	if !g.InBounds(c) {
		var zero T
		return zero, false
	}
	return g.cells[g.index(c)], true
}

// At is Get without the presence flag; out-of-range coordinates yield the zero value.
func (g *Grid[T]) At(c Coord) T {
	v, _ := g.Get(c)
	return v
}

// Set stores v at c. It reports false and does nothing when c is out of range.
func (g *Grid[T]) Set(c Coord, v T) bool {
	if !g.InBounds(c) {
		return false
	}
	g.cells[g.index(c)] = v
	return true
}

// Fill overwrites every cell with v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns an independent copy.
func (g *Grid[T]) Clone() *Grid[T] {
	if g == nil {
		return nil
	}
	out := &Grid[T]{size: g.size, cells: make([]T, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Coords yields every coordinate in row-major order.
func (g *Grid[T]) Coords() iter.Seq[Coord] {
	return squareCoords(g.size)
}

func squareCoords(size int) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if !yield(Coord{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
