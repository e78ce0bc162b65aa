package autoplay

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/arduano/snake-solver/game"
	"github.com/arduano/snake-solver/rules"
	"github.com/arduano/snake-solver/solver"
	"github.com/arduano/snake-solver/solver/spantree"
)

type Config struct {
	World game.WorldConfig
	Seed  int64

	// MaxSteps bounds the game; zero means area².
	MaxSteps int

	// OnStep, when set, is called after every applied move.
	OnStep func(p *Player, r rules.StepResult)
}

type GameResult struct {
	Size   int
	Seed   int64
	Result rules.StepResult

	Steps     int
	FoodEaten int
	SnakeLen  int

	Plans    int
	PlanTime time.Duration

	// Filled in for spanning-tree solvers only.
	DeadEnds  int
	Overrides int
}

// Play runs a whole game of s on a fresh world. It stops with an error when
// ctx is cancelled, the step limit is hit or the solver misbehaves; the
// returned result describes the game up to that point.
func Play(ctx context.Context, cfg Config, s solver.Solver) (GameResult, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	w, err := game.NewWorld(cfg.World, rng)
	if err != nil {
		return GameResult{}, fmt.Errorf("play: %w", err)
	}

	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		area := w.Cells.Len()
		maxSteps = area * area
	}

	p := NewPlayer(w, s, rng)
	res := GameResult{Size: w.Size(), Seed: cfg.Seed}

	for step := 0; ; step++ {
		if err := ctx.Err(); err != nil {
			return p.result(res), fmt.Errorf("play (turn %d): %w", w.Turn, err)
		}
		if step >= maxSteps {
			return p.result(res), fmt.Errorf("play (turn %d): %w", w.Turn, ErrStepLimit)
		}

		r, err := p.Step()
		if err != nil {
			return p.result(res), fmt.Errorf("play (turn %d): %w", w.Turn, err)
		}
		if cfg.OnStep != nil {
			cfg.OnStep(p, r)
		}
		if r != rules.Stepped {
			res.Result = r
			return p.result(res), nil
		}
	}
}

func (p *Player) result(res GameResult) GameResult {
	res.Steps = p.world.Turn
	res.FoodEaten = p.world.FoodEaten
	res.SnakeLen = p.world.SnakeLen()
	res.Plans = p.plans
	res.PlanTime = p.planTime
	if st, ok := p.solver.(interface{ Stats() spantree.PlanStats }); ok {
		stats := st.Stats()
		res.DeadEnds = stats.DeadEnds
		res.Overrides = stats.Overrides
	}
	return res
}
