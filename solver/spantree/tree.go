// Package spantree plans snake moves along a Hamiltonian cycle derived from a
// spanning tree over the 2×2 blocks of the board.
//
// Each planning cycle rebuilds the tree from scratch: the live snake is traced
// into it, a breadth-first cost field steers a route from the head to the
// food, the rest of the tree is grown with randomized DFS, and the cycle that
// circles the tree is read back as a path.
package spantree

import (
	"math/rand"

	"github.com/arduano/snake-solver/game"
	"github.com/arduano/snake-solver/solver"
)

// SpanningTree is an edge graph over the logical (half resolution) grid in
// which Wall edges form the tree.
type SpanningTree struct {
	graph *game.EdgeGraph[EdgeState]
}

// NewSpanningTree allocates a tree for a board of worldSize cells per side.
func NewSpanningTree(worldSize int) *SpanningTree {
	return &SpanningTree{graph: game.NewEdgeGraph(worldSize/2, Free)}
}

// Size is the number of logical nodes along one side.
func (t *SpanningTree) Size() int { return t.graph.Size() }

// WorldSize is the board size the tree was allocated for.
func (t *SpanningTree) WorldSize() int { return t.graph.Size() * 2 }

func (t *SpanningTree) Clear() { t.graph.Fill(Free) }

func (t *SpanningTree) Edge(c game.Coord, d game.Direction) (EdgeState, bool) {
	return t.graph.Edge(c, d)
}

func (t *SpanningTree) SetEdge(c game.Coord, d game.Direction, s EdgeState) bool {
	return t.graph.SetEdge(c, d, s)
}

// NodeTaken reports whether any tree edge touches c.
func (t *SpanningTree) NodeTaken(c game.Coord) bool {
	for _, d := range game.Directions {
		if e, ok := t.graph.Edge(c, d); ok && e.Taken() {
			return true
		}
	}
	return false
}

// Graph returns a copy of the underlying edge graph.
func (t *SpanningTree) Graph() *game.EdgeGraph[EdgeState] { return t.graph.Clone() }

// TraceCurrentSnake walks the body from head to tail and records, for every
// segment, how the snake left it: an outward move means the tree edge the
// segment circles must be a wall, a clockwise move means that edge is covered
// by the snake.
func (t *SpanningTree) TraceCurrentSnake(w solver.World) {
	cur := w.HeadCoord()
	body := w.BodyPath()
	for d := range body.Directions() {
		prev := cur.Step(d)
		moved := d.Opposite()

		cw, out := solver.ValidDirs(prev)
		switch moved {
		case out:
			t.markEdge(prev, cw, Wall)
		case cw:
			t.markEdge(prev, cw, CoveredByCurrentSnake)
		}
		cur = prev
	}
}

func (t *SpanningTree) markEdge(c game.Coord, d game.Direction, s EdgeState) {
	mc, md := InnerTreeCoord(c, d)
	t.graph.SetEdge(mc, md, s)
}

// Grow extends the tree until every reachable node is covered. Growth first
// only crosses Free edges; when that stalls it may also cross edges reserved
// for the future snake, which is reported as GrowSuccessWithPathOverride.
// Edges covered by the current snake are never crossed.
func (t *SpanningTree) Grow(rng *rand.Rand) GrowResult {
	result := GrowSuccess
	allowCovered := false
	for {
		if t.seedOnce(allowCovered, rng) {
			if allowCovered {
				result = GrowSuccessWithPathOverride
			}
			continue
		}
		if allowCovered {
			return result
		}
		allowCovered = true
	}
}

// seedOnce finds the first taken node with an untaken neighbour across a
// growable edge and grows a random subtree from it.
func (t *SpanningTree) seedOnce(allowCovered bool, rng *rand.Rand) bool {
	for c := range t.graph.Coords() {
		if !t.NodeTaken(c) {
			continue
		}
		for _, d := range game.Directions {
			e, ok := t.graph.Edge(c, d)
			if !ok {
				continue
			}
			if e != Free && !(allowCovered && e == CoveredByFutureSnake) {
				continue
			}
			if t.NodeTaken(c.Step(d)) {
				continue
			}
			t.seedTreeFrom(c, d, rng)
			return true
		}
	}
	return false
}

// seedTreeFrom walls the edge (c, d) and runs a randomized DFS from the node
// behind it, walling one edge into every untaken node it reaches.
func (t *SpanningTree) seedTreeFrom(c game.Coord, d game.Direction, rng *rand.Rand) {
	t.graph.SetEdge(c, d, Wall)

	cur := c.Step(d)
	stack := []game.Coord{cur}
	var options [4]game.Direction
	for {
		n := 0
		for _, dir := range game.Directions {
			next := cur.Step(dir)
			if !t.graph.InBounds(next) || t.NodeTaken(next) {
				continue
			}
			options[n] = dir
			n++
		}

		if n == 0 {
			if len(stack) == 0 {
				return
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			continue
		}

		dir := options[rng.Intn(n)]
		t.graph.SetEdge(cur, dir, Wall)
		cur = cur.Step(dir)
		stack = append(stack, cur)
	}
}

// CanWalkOutFrom reports whether leaving board cell c outwards keeps the tree
// acyclic: either the node behind the edge is still free, or the edge is
// already part of the tree.
func (t *SpanningTree) CanWalkOutFrom(c game.Coord) bool {
	mc, md := FollowingOutEdge(c)
	if !t.NodeTaken(mc.Step(md)) {
		return true
	}
	e, ok := t.graph.Edge(mc, md)
	return ok && e.Taken()
}

// CanWalkClockwiseFrom reports whether no tree wall blocks the clockwise move
// from board cell c.
func (t *SpanningTree) CanWalkClockwiseFrom(c game.Coord) bool {
	cw, _ := solver.ValidDirs(c)
	e, ok := t.graph.Edge(InnerTreeCoord(c, cw))
	if !ok {
		return true
	}
	return e.Free()
}

// BuildSnakePath follows the cycle around the tree from the head until it
// reaches the food. ok is false if the food is not reached within one lap of
// the board.
func (t *SpanningTree) BuildSnakePath(w solver.World) (game.Path, bool) {
	var path game.Path
	cur := w.HeadCoord()
	limit := w.Size() * w.Size()
	for range limit {
		cw, out := solver.ValidDirs(cur)
		dir := cw
		if e, ok := t.graph.Edge(FollowingOutEdge(cur)); ok && e == Wall {
			dir = out
		}
		path.Push(dir)
		cur = cur.Step(dir)

		if cell, _ := w.Cell(cur); cell.IsFood() {
			return path, true
		}
	}
	return path, false
}

// WallGrid renders the tree as walls between board cells: each tree edge
// becomes a wall two cells long through the middle of the blocks it joins.
func (t *SpanningTree) WallGrid() *game.EdgeGraph[bool] {
	grid := game.NewEdgeGraph(t.WorldSize(), false)
	for c := range t.graph.Coords() {
		for _, d := range game.Directions {
			if e, ok := t.graph.Edge(c, d); ok && e == Wall {
				setWallSegment(grid, c, d)
			}
		}
	}
	return grid
}

func setWallSegment(grid *game.EdgeGraph[bool], c game.Coord, d game.Direction) {
	var start game.Offset
	switch d {
	case game.Up:
		start = game.Offset{X: 0, Y: -1}
	case game.Down:
		start = game.Offset{X: -1, Y: 0}
	case game.Left:
		start = game.Offset{X: -1, Y: -1}
	}

	pos := c.Map(func(v int) int { return v*2 + 1 }).Add(start)
	left := d.RotateLeft()
	grid.SetEdge(pos, left, true)
	pos = pos.Step(d)
	grid.SetEdge(pos, left, true)
}
