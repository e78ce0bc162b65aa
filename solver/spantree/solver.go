package spantree

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/arduano/snake-solver/game"
	"github.com/arduano/snake-solver/solver"
)

// PlanStats describes the most recent planning cycle plus running totals.
type PlanStats struct {
	Plans     int
	DeadEnds  int
	Overrides int

	LastGrow    GrowResult
	LastDeadEnd bool
	// LastFullLen is the length of the untruncated cycle path.
	LastFullLen int
	LastLen     int
}

type Solver struct {
	jitter solver.Jitter
	rng    *rand.Rand
	log    *slog.Logger

	tree  *SpanningTree
	costs *CostField
	stats PlanStats
}

type Option func(*Solver)

// WithRand sets the source used for tree growth.
func WithRand(rng *rand.Rand) Option {
	return func(s *Solver) { s.rng = rng }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) { s.log = l }
}

func New(jitter solver.Jitter, opts ...Option) *Solver {
	s := &Solver{jitter: jitter}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

var (
	_ solver.Solver    = (*Solver)(nil)
	_ solver.Inspector = (*Solver)(nil)
)

// NextPath plans from scratch against w and returns the moves to play until
// the next call.
func (s *Solver) NextPath(w solver.World) game.Path {
	s.reset(w.Size())
	s.stats.Plans++

	s.tree.TraceCurrentSnake(w)
	s.costs.Fill(w, s.tree)

	if Pathfind(w.HeadCoord(), s.costs, s.tree) == PathfindDeadEnd {
		s.log.Warn("reached a dead end while pathfinding, returning a killing path",
			"head", w.HeadCoord(), "food", w.FoodCoord())
		return s.deadEnd(w)
	}

	grow := s.tree.Grow(s.rng)
	full, ok := s.tree.BuildSnakePath(w)
	if !ok {
		s.log.Warn("cycle around the tree never reached the food, returning a killing path",
			"head", w.HeadCoord(), "food", w.FoodCoord())
		return s.deadEnd(w)
	}

	overridden := grow == GrowSuccessWithPathOverride
	if overridden {
		s.stats.Overrides++
		s.log.Debug("tree growth overrode the planned path", "head", w.HeadCoord())
	}

	path := full
	if limit := s.jitter.Limit(overridden); limit >= 0 {
		path = full.Take(limit)
	}

	s.stats.LastGrow = grow
	s.stats.LastDeadEnd = false
	s.stats.LastFullLen = full.Len()
	s.stats.LastLen = path.Len()
	return path
}

func (s *Solver) reset(size int) {
	if s.tree == nil || s.tree.WorldSize() != size {
		s.tree = NewSpanningTree(size)
		s.costs = NewCostField(size)
		return
	}
	s.tree.Clear()
	s.costs.Clear()
}

// deadEnd returns a single move back into the neck, which ends the game.
// A snake with no body moves Up instead.
func (s *Solver) deadEnd(w solver.World) game.Path {
	s.stats.DeadEnds++
	s.stats.LastDeadEnd = true
	s.stats.LastFullLen = 0
	s.stats.LastLen = 1

	body := w.BodyPath()
	if d, ok := body.Peek(); ok {
		return game.NewPath(d)
	}
	return game.NewPath(game.Up)
}

func (s *Solver) Stats() PlanStats { return s.stats }

func (s *Solver) WallGrid() *game.EdgeGraph[bool] {
	if s.tree == nil {
		return nil
	}
	return s.tree.WallGrid()
}

func (s *Solver) CostField() *game.Grid[uint32] {
	if s.costs == nil {
		return nil
	}
	return s.costs.Grid()
}
