package rules

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/arduano/snake-solver/game"
)

func dumpWorld(w *game.World) string {
	var b strings.Builder
	size := w.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := game.Coord{X: x, Y: y}
			cell := w.Cells.At(c)
			switch {
			case c == w.HeadCoord():
				b.WriteByte('H')
			case cell.IsSnake():
				b.WriteByte(byte('0' + cell.Age%10))
			case cell.IsFood():
				b.WriteByte('F')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// newTestWorld builds a world with the food pinned at food.
func newTestWorld(t *testing.T, size int, food game.Coord) *game.World {
	t.Helper()
	w, err := game.NewWorld(game.WorldConfig{Size: size, InitialLength: 5, GrowthPerFood: 3}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	w.Cells.Set(w.Food, game.Cell{})
	w.Cells.Set(food, game.Cell{Kind: game.CellFood})
	w.Food = food
	return w
}

func TestStep_GrowsToInitialLength(t *testing.T) {
	w := newTestWorld(t, 10, game.Coord{X: 0, Y: 0})
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 4; i++ {
		if r := Step(w, Right, rng); r != Stepped {
			t.Fatalf("step %d result=%v want=stepped\n%s", i, r, dumpWorld(w))
		}
	}
	if got := w.SnakeLen(); got != 4 {
		t.Fatalf("len after 4 steps=%d want=4\n%s", got, dumpWorld(w))
	}
	for i := 0; i < 3; i++ {
		Step(w, Down, rng)
	}
	if got := w.SnakeLen(); got != 5 {
		t.Fatalf("len=%d want=5\n%s", got, dumpWorld(w))
	}
	head := w.Cells.At(w.HeadCoord())
	if head.Age != 4 {
		t.Fatalf("head age=%d want=4", head.Age)
	}
	t.Logf("\n%s", dumpWorld(w))
}

const (
	Up    = game.Up
	Down  = game.Down
	Left  = game.Left
	Right = game.Right
)

func TestStep_WallKills(t *testing.T) {
	w := newTestWorld(t, 4, game.Coord{X: 0, Y: 3})
	rng := rand.New(rand.NewSource(3))
	// head starts at (2,2): one step up is fine, three are not.
	if r := Step(w, Up, rng); r != Stepped {
		t.Fatalf("first step=%v", r)
	}
	Step(w, Up, rng)
	before := w.HeadCoord()
	if r := Step(w, Up, rng); r != Killed {
		t.Fatalf("result=%v want=killed", r)
	}
	if w.HeadCoord() != before {
		t.Fatalf("killed step moved the head to %v", w.HeadCoord())
	}
}

func TestStep_SelfCollisionKills(t *testing.T) {
	w := newTestWorld(t, 10, game.Coord{X: 0, Y: 0})
	rng := rand.New(rand.NewSource(4))
	for _, d := range []game.Direction{Right, Right, Down, Left} {
		if r := Step(w, d, rng); r != Stepped {
			t.Fatalf("setup step %v=%v", d, r)
		}
	}
	if r := Step(w, Up, rng); r != Killed {
		t.Fatalf("result=%v want=killed\n%s", r, dumpWorld(w))
	}
}

func TestStep_EatGrowsAndRespawns(t *testing.T) {
	w := newTestWorld(t, 10, game.Coord{X: 6, Y: 5})
	rng := rand.New(rand.NewSource(5))

	if r := Step(w, Right, rng); r != Stepped {
		t.Fatalf("result=%v", r)
	}
	if w.FoodEaten != 1 || w.Length != 8 {
		t.Fatalf("eaten=%d length=%d want=1,8", w.FoodEaten, w.Length)
	}
	if !w.HasFood || w.Food == (game.Coord{X: 6, Y: 5}) {
		t.Fatalf("food not respawned: %v has=%v", w.Food, w.HasFood)
	}
	if cell := w.Cells.At(w.Food); !cell.IsFood() {
		t.Fatalf("food cell holds %+v", cell)
	}
}

func TestStep_FinishesWhenBoardIsFull(t *testing.T) {
	w := newTestWorld(t, 4, game.Coord{X: 3, Y: 2})
	rng := rand.New(rand.NewSource(6))
	// Fill every other cell with old snake so that eating leaves nothing free.
	for c := range w.Cells.Coords() {
		if c == w.HeadCoord() || c == w.Food {
			continue
		}
		w.Cells.Set(c, game.Cell{Kind: game.CellSnake, Age: 50})
		w.Body = append(w.Body, c)
	}
	// Keep the current head alive too, otherwise it frees a cell for new food.
	w.Cells.Set(w.HeadCoord(), game.Cell{Kind: game.CellSnake, Age: 60})
	if r := Step(w, Right, rng); r != Finished {
		t.Fatalf("result=%v want=finished\n%s", r, dumpWorld(w))
	}
}

func TestBodyPath_FollowsAges(t *testing.T) {
	w := newTestWorld(t, 10, game.Coord{X: 0, Y: 0})
	rng := rand.New(rand.NewSource(7))
	moves := []game.Direction{Right, Right, Down, Down, Left, Left}
	for _, d := range moves {
		Step(w, d, rng)
	}
	path := w.BodyPath()
	if path.Len() != w.SnakeLen()-1 {
		t.Fatalf("body path len=%d want=%d", path.Len(), w.SnakeLen()-1)
	}
	// The body path walks back along the last moves in reverse.
	i := len(moves) - 1
	for d := range path.Directions() {
		if want := moves[i].Opposite(); d != want {
			t.Fatalf("body dir=%v want=%v", d, want)
		}
		i--
	}
	if end := w.HeadCoord().Add(path.End()); end != w.Body[len(w.Body)-1] {
		t.Fatalf("body path ends at %v want tail %v", end, w.Body[len(w.Body)-1])
	}
}

func TestLegalMoves(t *testing.T) {
	w := newTestWorld(t, 4, game.Coord{X: 0, Y: 0})
	rng := rand.New(rand.NewSource(8))
	Step(w, Right, rng) // head (3,2), neck (2,2) expires immediately at length 1
	Step(w, Down, rng)  // head (3,3), neck (3,2)
	moves := LegalMoves(w)
	if len(moves) != 1 || moves[0] != Left {
		t.Fatalf("legal=%v want=[Left]\n%s", moves, dumpWorld(w))
	}
}
