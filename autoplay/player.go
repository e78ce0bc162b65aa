// Package autoplay drives a game.World with a solver.Solver until the game ends.
package autoplay

import (
	"errors"
	"math/rand"
	"time"

	"github.com/arduano/snake-solver/game"
	"github.com/arduano/snake-solver/rules"
	"github.com/arduano/snake-solver/solver"
)

var (
	ErrEmptyPath = errors.New("solver returned an empty path")
	ErrStepLimit = errors.New("step limit reached")
	ErrGameOver  = errors.New("game is over")
)

type State uint8

const (
	Playing State = iota
	Finished
	Killed
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	case Killed:
		return "killed"
	default:
		return "unknown"
	}
}

// Player owns a world and the solver steering it. It is not safe for
// concurrent use.
type Player struct {
	world  *game.World
	solver solver.Solver
	rng    *rand.Rand

	path  game.Path
	state State

	plans    int
	planTime time.Duration
}

// NewPlayer wraps w. rng drives food placement.
func NewPlayer(w *game.World, s solver.Solver, rng *rand.Rand) *Player {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Player{world: w, solver: s, rng: rng}
}

// Step plays one move, asking the solver for a new path when the current one
// is used up.
func (p *Player) Step() (rules.StepResult, error) {
	switch p.state {
	case Finished:
		return rules.Finished, ErrGameOver
	case Killed:
		return rules.Killed, ErrGameOver
	}

	d, ok := p.path.Pop()
	if !ok {
		start := time.Now()
		p.path = p.solver.NextPath(p.world)
		p.planTime += time.Since(start)
		p.plans++

		if d, ok = p.path.Pop(); !ok {
			return rules.Killed, ErrEmptyPath
		}
	}

	r := rules.Step(p.world, d, p.rng)
	switch r {
	case rules.Finished:
		p.state = Finished
	case rules.Killed:
		p.state = Killed
	}
	return r, nil
}

func (p *Player) World() *game.World { return p.world }

func (p *Player) State() State { return p.state }

// Path returns a copy of the moves still queued.
func (p *Player) Path() game.Path { return p.path.Take(p.path.Len()) }

func (p *Player) Plans() int { return p.plans }

func (p *Player) PlanTime() time.Duration { return p.planTime }

func (p *Player) Solver() solver.Solver { return p.solver }
