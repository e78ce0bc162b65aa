package spantree

import (
	"math"

	"github.com/arduano/snake-solver/game"
	"github.com/arduano/snake-solver/solver"
)

const (
	costUnvisited uint32 = 0
	costFood      uint32 = 1
	costQueued    uint32 = math.MaxUint32
)

type PathfindResult uint8

const (
	PathfindSuccess PathfindResult = iota
	// PathfindDeadEnd means the head has no reachable neighbour on the walk.
	PathfindDeadEnd
)

func (r PathfindResult) String() string {
	if r == PathfindDeadEnd {
		return "dead-end"
	}
	return "success"
}

// CostField holds, for each board cell, the number of walk moves to the food
// plus one. Zero means unreachable.
type CostField struct {
	grid  *game.Grid[uint32]
	queue []queuedCell
}

type queuedCell struct {
	c    game.Coord
	cost uint32
}

func NewCostField(worldSize int) *CostField {
	return &CostField{grid: game.NewGrid(worldSize, costUnvisited)}
}

func (f *CostField) Size() int { return f.grid.Size() }

func (f *CostField) Clear() {
	f.grid.Fill(costUnvisited)
	f.queue = f.queue[:0]
}

// Get returns the cost at c; ok is false out of bounds.
func (f *CostField) Get(c game.Coord) (uint32, bool) { return f.grid.Get(c) }

// Grid returns a copy of the field.
func (f *CostField) Grid() *game.Grid[uint32] { return f.grid.Clone() }

// reached returns the cost of a cell the fill reached.
func (f *CostField) reached(c game.Coord) (uint32, bool) {
	v, ok := f.grid.Get(c)
	if !ok || v == costUnvisited {
		return 0, false
	}
	return v, true
}

// Fill runs a breadth-first search backwards from the food along the moves
// the walk permits. A cell is entered only if the move out of it towards the
// previous cell is legal against the current tree, and snake cells are never
// entered.
func (f *CostField) Fill(w solver.World, t *SpanningTree) {
	f.queue = append(f.queue[:0], queuedCell{c: w.FoodCoord(), cost: costFood})

	for head := 0; head < len(f.queue); head++ {
		q := f.queue[head]
		f.grid.Set(q.c, q.cost)

		cw, out := solver.ValidDirs(q.c)

		// A predecessor reached through cw.Opposite() would step here
		// with its own out move, and vice versa.
		if next := q.c.Step(cw.Opposite()); f.acceptable(w, next) && t.CanWalkOutFrom(next) {
			f.enqueue(next, q.cost+1)
		}
		if next := q.c.Step(out.Opposite()); f.acceptable(w, next) && t.CanWalkClockwiseFrom(next) {
			f.enqueue(next, q.cost+1)
		}
	}
}

func (f *CostField) acceptable(w solver.World, c game.Coord) bool {
	cell, ok := w.Cell(c)
	if !ok || cell.IsSnake() {
		return false
	}
	v, _ := f.grid.Get(c)
	return v == costUnvisited
}

func (f *CostField) enqueue(c game.Coord, cost uint32) {
	f.grid.Set(c, costQueued)
	f.queue = append(f.queue, queuedCell{c: c, cost: cost})
}

// Pathfind descends the cost field greedily from the head and commits the
// route into the tree: every outward move walls the edge it follows, every
// clockwise move reserves it for the future snake.
func Pathfind(from game.Coord, f *CostField, t *SpanningTree) PathfindResult {
	cur := from
	limit := 4 * f.grid.Len()
	for steps := 0; ; steps++ {
		if v, _ := f.grid.Get(cur); v == costFood {
			return PathfindSuccess
		}
		if steps >= limit {
			return PathfindDeadEnd
		}

		cw, out := solver.ValidDirs(cur)
		cwCost, cwOK := f.reached(cur.Step(cw))
		outCost, outOK := f.reached(cur.Step(out))

		var goOut bool
		switch {
		case !cwOK && !outOK:
			return PathfindDeadEnd
		case !cwOK:
			goOut = true
		case !outOK:
			goOut = false
		case cwCost < outCost:
			goOut = false
		default:
			goOut = t.CanWalkOutFrom(cur)
		}

		mc, md := FollowingOutEdge(cur)
		if goOut {
			t.SetEdge(mc, md, Wall)
			cur = cur.Step(out)
		} else {
			t.SetEdge(mc, md, CoveredByFutureSnake)
			cur = cur.Step(cw)
		}
	}
}
