package game

import "iter"

// EdgeGraph stores one value per node and one per edge between axis-adjacent
// nodes of a size×size grid graph.
//
// Everything lives in a single Grid of side 2*size-1: node c sits at 2c and the
// edge leaving c in direction d sits at 2c+unit(d). Edge(c, d) and
// Edge(c.Step(d), d.Opposite()) therefore address the same slot. Slots with
// two odd components are never used.
type EdgeGraph[T any] struct {
	size  int
	cells *Grid[T]
}

// NewEdgeGraph allocates a graph over size×size nodes with every slot set to fill.
func NewEdgeGraph[T any](size int, fill T) *EdgeGraph[T] {
	physical := size*2 - 1
	if physical < 0 {
		physical = 0
	}
	return &EdgeGraph[T]{size: size, cells: NewGrid(physical, fill)}
}

// Size is the number of nodes along one side.
func (g *EdgeGraph[T]) Size() int { return g.size }

// InBounds reports whether c is a node of the graph.
func (g *EdgeGraph[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.size && c.Y < g.size
}

func cellSlot(c Coord) Coord {
	return Coord{X: c.X * 2, Y: c.Y * 2}
}

func edgeSlot(c Coord, d Direction) Coord {
	return cellSlot(c).Add(d.Offset())
}

func (g *EdgeGraph[T]) Cell(c Coord) (T, bool) {
	if !g.InBounds(c) {
		var zero T
		return zero, false
	}
	return g.cells.Get(cellSlot(c))
}

func (g *EdgeGraph[T]) SetCell(c Coord, v T) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.cells.Set(cellSlot(c), v)
}

// Edge returns the value of the edge leaving c towards d. Edges that would
// leave the graph are absent.
func (g *EdgeGraph[T]) Edge(c Coord, d Direction) (T, bool) {
	return g.cells.Get(edgeSlot(c, d))
}

// SetEdge stores v on the edge leaving c towards d. Edges outside the graph
// are ignored and reported as false.
func (g *EdgeGraph[T]) SetEdge(c Coord, d Direction, v T) bool {
	return g.cells.Set(edgeSlot(c, d), v)
}

// Coords yields every node in row-major order.
func (g *EdgeGraph[T]) Coords() iter.Seq[Coord] {
	return squareCoords(g.size)
}

// Fill resets every node and edge slot to v.
func (g *EdgeGraph[T]) Fill(v T) {
	g.cells.Fill(v)
}

func (g *EdgeGraph[T]) Clone() *EdgeGraph[T] {
	if g == nil {
		return nil
	}
	return &EdgeGraph[T]{size: g.size, cells: g.cells.Clone()}
}
