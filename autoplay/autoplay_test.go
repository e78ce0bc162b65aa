package autoplay

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/arduano/snake-solver/game"
	"github.com/arduano/snake-solver/rules"
	"github.com/arduano/snake-solver/solver"
	"github.com/arduano/snake-solver/solver/spantree"
)

type emptySolver struct{}

func (emptySolver) NextPath(solver.World) game.Path { return game.Path{} }

// fixedSolver always plans the same moves.
type fixedSolver struct {
	dirs  []game.Direction
	calls int
}

func (f *fixedSolver) NextPath(solver.World) game.Path {
	f.calls++
	return game.NewPath(f.dirs...)
}

func newWorld(t *testing.T) *game.World {
	t.Helper()
	w, err := game.NewWorld(game.WorldConfig{Size: 10, InitialLength: 5, GrowthPerFood: 3}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func TestPlayer_EmptyPathIsAnError(t *testing.T) {
	p := NewPlayer(newWorld(t), emptySolver{}, rand.New(rand.NewSource(2)))
	if _, err := p.Step(); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("err=%v want=%v", err, ErrEmptyPath)
	}
}

func TestPlayer_ReplansOnlyWhenPathIsUsed(t *testing.T) {
	s := &fixedSolver{dirs: []game.Direction{game.Left, game.Up}}
	w := newWorld(t)
	w.Cells.Set(w.Food, game.Cell{})
	w.Food = game.Coord{X: 9, Y: 9}
	w.Cells.Set(w.Food, game.Cell{Kind: game.CellFood})
	p := NewPlayer(w, s, rand.New(rand.NewSource(2)))

	for i := 0; i < 4; i++ {
		if r, err := p.Step(); err != nil || r != rules.Stepped {
			t.Fatalf("step %d: r=%v err=%v", i, r, err)
		}
	}
	if s.calls != 2 || p.Plans() != 2 {
		t.Fatalf("calls=%d plans=%d want=2", s.calls, p.Plans())
	}
	if want := (game.Coord{X: 3, Y: 3}); w.HeadCoord() != want {
		t.Fatalf("head=%v want=%v", w.HeadCoord(), want)
	}
}

func TestPlayer_StopsAfterDeath(t *testing.T) {
	s := &fixedSolver{dirs: []game.Direction{game.Up}}
	p := NewPlayer(newWorld(t), s, rand.New(rand.NewSource(2)))
	var r rules.StepResult
	var err error
	for i := 0; i < 20 && p.State() == Playing; i++ {
		r, err = p.Step()
	}
	if r != rules.Killed || err != nil {
		t.Fatalf("r=%v err=%v want=killed", r, err)
	}
	if _, err := p.Step(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("err=%v want=%v", err, ErrGameOver)
	}
}

func TestPlay_SpanningTreeFinishes(t *testing.T) {
	s := spantree.New(solver.NoJitter(),
		spantree.WithRand(rand.New(rand.NewSource(3))),
		spantree.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	steps := 0
	res, err := Play(context.Background(), Config{
		World:  game.WorldConfig{Size: 10, InitialLength: 5, GrowthPerFood: 3},
		Seed:   3,
		OnStep: func(*Player, rules.StepResult) { steps++ },
	}, s)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if res.Result != rules.Finished {
		t.Fatalf("result=%v food=%d dead ends=%d", res.Result, res.FoodEaten, res.DeadEnds)
	}
	if res.Steps != steps || res.Plans == 0 || res.SnakeLen != 100 {
		t.Fatalf("res=%+v callbacks=%d", res, steps)
	}
}

func TestPlay_StepLimit(t *testing.T) {
	s := &fixedSolver{dirs: []game.Direction{game.Left, game.Right}}
	// Length 1 keeps the snake from biting itself while it bounces.
	_, err := Play(context.Background(), Config{
		World:    game.WorldConfig{Size: 10, InitialLength: 1},
		Seed:     4,
		MaxSteps: 10,
	}, s)
	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("err=%v want=%v", err, ErrStepLimit)
	}
}

func TestPlay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Play(ctx, Config{World: game.DefaultWorldConfig}, &fixedSolver{dirs: []game.Direction{game.Up}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v want=%v", err, context.Canceled)
	}
}

func TestPlay_RejectsOddSize(t *testing.T) {
	_, err := Play(context.Background(), Config{World: game.WorldConfig{Size: 7}}, emptySolver{})
	if !errors.Is(err, game.ErrInvalidSize) {
		t.Fatalf("err=%v want=%v", err, game.ErrInvalidSize)
	}
}
