package game

// Direction is one of the four cardinal moves.
// The numbering follows the order of Directions: 0=Up, 1=Down, 2=Left, 3=Right.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions enumerates every direction in a fixed order.
var Directions = [4]Direction{Up, Down, Left, Right}

var directionOffsets = [4]Offset{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

var directionNames = [4]string{"Up", "Down", "Left", "Right"}

// Offset returns the unit vector for d.
func (d Direction) Offset() Offset {
	return directionOffsets[d&3]
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// RotateLeft turns counter-clockwise: Up→Left→Down→Right→Up.
func (d Direction) RotateLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	default:
		return Up
	}
}

// RotateRight is the inverse of RotateLeft.
func (d Direction) RotateRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return Up
	}
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "?"
}

// ParseDirection accepts the names produced by String, case-sensitively.
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return 0, false
}
