// Package randomtree follows a single random Hamiltonian cycle for the whole
// game. The cycle circles a minimum spanning tree over random edge weights,
// grown once, on the first call, from the block holding the food.
package randomtree

import (
	"cmp"
	"math/rand"
	"slices"
	"time"

	"github.com/arduano/snake-solver/game"
	"github.com/arduano/snake-solver/solver"
	"github.com/arduano/snake-solver/solver/spantree"
)

type Solver struct {
	rng   *rand.Rand
	walls *game.EdgeGraph[bool]
}

// New returns a solver whose tree is drawn from rng. A nil rng is seeded from
// the clock.
func New(rng *rand.Rand) *Solver {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Solver{rng: rng}
}

var (
	_ solver.Solver    = (*Solver)(nil)
	_ solver.Inspector = (*Solver)(nil)
)

func (s *Solver) NextPath(w solver.World) game.Path {
	if s.walls == nil || s.walls.Size() != w.Size() {
		s.walls = s.buildWalls(w)
	}

	var path game.Path
	cur := w.HeadCoord()
	for range w.Size() * w.Size() {
		if cell, _ := w.Cell(cur); cell.IsFood() {
			break
		}
		cw, out := solver.ValidDirs(cur)
		d := out
		if blocked, ok := s.walls.Edge(cur, cw); ok && !blocked {
			d = cw
		}
		path.Push(d)
		cur = cur.Step(d)
	}
	return path
}

func (s *Solver) buildWalls(w solver.World) *game.EdgeGraph[bool] {
	tree := spantree.NewSpanningTree(w.Size())
	root := w.FoodCoord().Map(func(v int) int { return v / 2 })
	growWeighted(tree, root, s.rng)
	return tree.WallGrid()
}

type weightedEdge struct {
	from   game.Coord
	dir    game.Direction
	weight float64
}

// growWeighted walls a minimum spanning tree of the logical grid under random
// edge weights. The edges are sorted once and rescanned until a pass changes
// nothing; each pass takes every edge with exactly one end in the tree and
// drops edges whose ends are both in it.
func growWeighted(tree *spantree.SpanningTree, root game.Coord, rng *rand.Rand) {
	n := tree.Size()
	edges := make([]weightedEdge, 0, 2*n*n)
	for c := range game.NewGrid(n, false).Coords() {
		for _, d := range [...]game.Direction{game.Right, game.Down} {
			if _, ok := tree.Edge(c, d); ok {
				edges = append(edges, weightedEdge{from: c, dir: d, weight: rng.Float64()})
			}
		}
	}
	slices.SortFunc(edges, func(a, b weightedEdge) int { return cmp.Compare(a.weight, b.weight) })

	inTree := game.NewGrid(n, false)
	inTree.Set(root, true)
	for changed := true; changed; {
		changed = false
		kept := edges[:0]
		for _, e := range edges {
			to := e.from.Step(e.dir)
			a, b := inTree.At(e.from), inTree.At(to)
			switch {
			case a && b:
				changed = true
			case a || b:
				tree.SetEdge(e.from, e.dir, spantree.Wall)
				inTree.Set(e.from, true)
				inTree.Set(to, true)
				changed = true
			default:
				kept = append(kept, e)
			}
		}
		edges = kept
	}
}

func (s *Solver) WallGrid() *game.EdgeGraph[bool] { return s.walls.Clone() }

// CostField is always nil; this solver does not search.
func (s *Solver) CostField() *game.Grid[uint32] { return nil }
