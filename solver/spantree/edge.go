package spantree

// EdgeState is the value stored on each spanning-tree edge.
//
// Wall means the edge belongs to the tree, so the Hamiltonian walk has to go
// around it. The two covered states are free for connectivity but record that
// the snake occupies, or is about to occupy, the cells on either side.
type EdgeState uint8

const (
	Free EdgeState = iota
	Wall
	CoveredByCurrentSnake
	CoveredByFutureSnake
)

func (e EdgeState) Taken() bool { return e == Wall }

func (e EdgeState) Free() bool { return e != Wall }

func (e EdgeState) String() string {
	switch e {
	case Free:
		return "free"
	case Wall:
		return "wall"
	case CoveredByCurrentSnake:
		return "covered-current"
	case CoveredByFutureSnake:
		return "covered-future"
	default:
		return "unknown"
	}
}

// GrowResult reports how Grow completed the tree.
type GrowResult uint8

const (
	GrowSuccess GrowResult = iota
	// GrowSuccessWithPathOverride means some growth went through edges
	// reserved for the snake's future body.
	GrowSuccessWithPathOverride
)

func (r GrowResult) String() string {
	if r == GrowSuccessWithPathOverride {
		return "success-with-override"
	}
	return "success"
}
