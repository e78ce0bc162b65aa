package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestDirectionRotations(t *testing.T) {
	want := []Direction{Up, Left, Down, Right, Up}
	d := Up
	for i, w := range want {
		if d != w {
			t.Fatalf("rotate_left step %d=%v want=%v", i, d, w)
		}
		d = d.RotateLeft()
	}
	for _, d := range Directions {
		if got := d.RotateLeft().RotateRight(); got != d {
			t.Fatalf("%v: rotate left then right=%v", d, got)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Fatalf("%v: double opposite=%v", d, got)
		}
		if sum := d.Offset().Add(d.Opposite().Offset()); !sum.IsZero() {
			t.Fatalf("%v: offset plus opposite=%v", d, sum)
		}
		if got := d.RotateLeft().RotateLeft(); got != d.Opposite() {
			t.Fatalf("%v: two left turns=%v want=%v", d, got, d.Opposite())
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(3, 7)
	if v, ok := g.Get(Coord{X: 2, Y: 2}); !ok || v != 7 {
		t.Fatalf("get in range=%v,%v", v, ok)
	}
	for _, c := range []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if _, ok := g.Get(c); ok {
			t.Fatalf("get %v reported present", c)
		}
		if g.Set(c, 1) {
			t.Fatalf("set %v reported success", c)
		}
	}
	g.Set(Coord{X: 1, Y: 2}, 9)
	if g.cells[2*3+1] != 9 {
		t.Fatalf("index layout is not y*size+x")
	}
	clone := g.Clone()
	g.Fill(0)
	if clone.At(Coord{X: 1, Y: 2}) != 9 {
		t.Fatalf("clone shares storage")
	}
	n := 0
	for range g.Coords() {
		n++
	}
	if n != 9 {
		t.Fatalf("coords yielded %d want 9", n)
	}
}

func TestEdgeGraphSharedSlots(t *testing.T) {
	g := NewEdgeGraph(4, 0)
	if g.cells.Size() != 7 {
		t.Fatalf("physical size=%d want=7", g.cells.Size())
	}
	for c := range g.Coords() {
		for _, d := range Directions {
			n := c.Step(d)
			if !g.InBounds(n) {
				if g.SetEdge(c, d, 1) {
					t.Fatalf("edge %v %v leaving the graph was stored", c, d)
				}
				continue
			}
			g.Fill(0)
			g.SetEdge(c, d, 5)
			if v, _ := g.Edge(n, d.Opposite()); v != 5 {
				t.Fatalf("edge %v %v not visible from %v %v", c, d, n, d.Opposite())
			}
			if v, _ := g.Cell(c); v != 0 {
				t.Fatalf("edge write leaked into node %v", c)
			}
		}
	}
}

func TestPathOffsetsRestartable(t *testing.T) {
	p := NewPath(Right, Right, Down)
	collect := func() []Offset {
		var out []Offset
		for o := range p.Offsets() {
			out = append(out, o)
		}
		return out
	}
	first := collect()
	second := collect()
	want := []Offset{{0, 0}, {1, 0}, {2, 0}, {2, 1}}
	if len(first) != len(want) || len(second) != len(want) {
		t.Fatalf("offsets len=%d,%d want=%d", len(first), len(second), len(want))
	}
	for i := range want {
		if first[i] != want[i] || second[i] != want[i] {
			t.Fatalf("offset[%d]=%v,%v want=%v", i, first[i], second[i], want[i])
		}
	}

	if d, ok := p.Pop(); !ok || d != Right {
		t.Fatalf("pop=%v,%v", d, ok)
	}
	short := p.Take(1)
	if short.Len() != 1 || p.Len() != 2 {
		t.Fatalf("take len=%d remaining=%d", short.Len(), p.Len())
	}
	if got := p.String(); got != "[Right Down]" {
		t.Fatalf("string=%q", got)
	}
}

func TestNewWorldRejectsOddSizes(t *testing.T) {
	for _, size := range []int{0, 2, 5, 9} {
		_, err := NewWorld(WorldConfig{Size: size}, rand.New(rand.NewSource(1)))
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("size %d err=%v want ErrInvalidSize", size, err)
		}
	}
}

func TestNewWorldLayout(t *testing.T) {
	w, err := NewWorld(WorldConfig{Size: 10, InitialLength: 5, GrowthPerFood: 3}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if w.HeadCoord() != (Coord{X: 5, Y: 5}) {
		t.Fatalf("head=%v", w.HeadCoord())
	}
	if !w.HasFood || !w.Cells.At(w.FoodCoord()).IsFood() {
		t.Fatalf("no food spawned")
	}
	if p := w.BodyPath(); !p.Empty() {
		t.Fatalf("single-cell snake has body path %v", p)
	}
	clone := w.Clone()
	clone.Cells.Set(clone.HeadCoord(), Cell{})
	if !w.Cells.At(w.HeadCoord()).IsSnake() {
		t.Fatalf("clone shares cells")
	}
}
