package game

import "fmt"

// Coord is a board coordinate.
// (0,0) is the top-left cell; X grows right and Y grows down.
type Coord struct {
	X int
	Y int
}

// Offset is a displacement between two coordinates.
type Offset struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c moved by o.
func (c Coord) Add(o Offset) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Step returns the neighbour of c in direction d.
func (c Coord) Step(d Direction) Coord {
	return c.Add(d.Offset())
}

// Sub returns the offset that takes other to c.
func (c Coord) Sub(other Coord) Offset {
	return Offset{X: c.X - other.X, Y: c.Y - other.Y}
}

// Map applies f to both components.
func (c Coord) Map(f func(int) int) Coord {
	return Coord{X: f(c.X), Y: f(c.Y)}
}

func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

func (o Offset) IsZero() bool {
	return o.X == 0 && o.Y == 0
}
