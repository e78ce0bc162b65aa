// Package game defines the board types for single-snake play: coordinates and
// directions, dense and edge grids, move paths and the World itself.
//
// World keeps every snake cell tagged with an age that decreases from the head
// (Length-1) to the tail (0). Solvers only read the world; rules.Step is the
// only mutator besides food spawning.
package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidSize is returned for boards that are odd or too small to hold the
// doubled spanning-tree grid.
var ErrInvalidSize = errors.New("world size must be even and at least 4")

type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellSnake
	CellFood
)

// Cell is the content of one board square. Age is only meaningful for snake cells.
type Cell struct {
	Kind CellKind
	Age  int
}

func (c Cell) IsSnake() bool { return c.Kind == CellSnake }
func (c Cell) IsFood() bool  { return c.Kind == CellFood }
func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

// WorldConfig controls board size and growth.
type WorldConfig struct {
	Size          int
	InitialLength int // target length the initial single-cell snake grows into
	GrowthPerFood int // extra segments gained per food
}

// DefaultWorldConfig matches the classic setup: length 5, three segments per food.
var DefaultWorldConfig = WorldConfig{Size: 20, InitialLength: 5, GrowthPerFood: 3}

type World struct {
	Cells *Grid[Cell]

	// Body lists snake cells from head to tail.
	Body []Coord

	Food    Coord
	HasFood bool

	// Length is the age given to a fresh head cell; the body settles at Length cells.
	Length        int
	GrowthPerFood int

	Turn      int
	FoodEaten int
}

// NewWorld places a one-cell snake in the centre of an empty board and spawns
// the first food using rng.
func NewWorld(cfg WorldConfig, rng *rand.Rand) (*World, error) {
	if cfg.Size < 4 || cfg.Size%2 != 0 {
		return nil, fmt.Errorf("new world (size=%d): %w", cfg.Size, ErrInvalidSize)
	}
	if cfg.InitialLength <= 0 {
		cfg.InitialLength = DefaultWorldConfig.InitialLength
	}
	if cfg.GrowthPerFood < 0 {
		cfg.GrowthPerFood = 0
	}

	w := &World{
		Cells:         NewGrid(cfg.Size, Cell{}),
		Length:        cfg.InitialLength,
		GrowthPerFood: cfg.GrowthPerFood,
	}
	head := Coord{X: cfg.Size / 2, Y: cfg.Size / 2}
	w.Cells.Set(head, Cell{Kind: CellSnake, Age: 0})
	w.Body = []Coord{head}

	w.SpawnFood(rng)
	return w, nil
}

func (w *World) Size() int { return w.Cells.Size() }

func (w *World) HeadCoord() Coord {
	if len(w.Body) == 0 {
		return Coord{}
	}
	return w.Body[0]
}

func (w *World) FoodCoord() Coord { return w.Food }

// Cell returns the content at c; ok is false out of bounds.
func (w *World) Cell(c Coord) (Cell, bool) {
	return w.Cells.Get(c)
}

// SnakeLen is the number of cells currently occupied by the snake.
func (w *World) SnakeLen() int { return len(w.Body) }

// BodyPath reconstructs, from cell ages alone, the moves that lead from the
// head to the tail. Each step goes to the adjacent snake cell with the highest
// age below the current one, which is the next segment since ages strictly
// decrease along the body.
func (w *World) BodyPath() Path {
	var path Path
	cur := w.HeadCoord()
	cell, ok := w.Cells.Get(cur)
	if !ok || !cell.IsSnake() {
		return path
	}

	age := cell.Age
	for steps := 0; age > 0 && steps < w.Cells.Len(); steps++ {
		best := -1
		var bestDir Direction
		for _, d := range Directions {
			n, ok := w.Cells.Get(cur.Step(d))
			if !ok || !n.IsSnake() || n.Age >= age {
				continue
			}
			if n.Age > best {
				best = n.Age
				bestDir = d
			}
		}
		if best < 0 {
			break
		}
		path.Push(bestDir)
		cur = cur.Step(bestDir)
		age = best
	}
	return path
}

// Clone performs a deep copy of the world.
func (w *World) Clone() *World {
	if w == nil {
		return nil
	}
	out := *w
	out.Cells = w.Cells.Clone()
	out.Body = append([]Coord(nil), w.Body...)
	return &out
}
