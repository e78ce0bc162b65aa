package game

import (
	"iter"
	"strings"
)

// Path is a FIFO queue of moves. Push appends, Pop removes from the front.
type Path struct {
	dirs []Direction
}

// NewPath builds a path from dirs in order.
func NewPath(dirs ...Direction) Path {
	p := Path{dirs: make([]Direction, 0, len(dirs))}
	p.dirs = append(p.dirs, dirs...)
	return p
}

func (p *Path) Push(d Direction) {
	p.dirs = append(p.dirs, d)
}

// Pop removes and returns the first move. ok is false on an empty path.
func (p *Path) Pop() (d Direction, ok bool) {
	if len(p.dirs) == 0 {
		return 0, false
	}
	d = p.dirs[0]
	p.dirs = p.dirs[1:]
	return d, true
}

// Peek returns the first move without consuming it.
func (p *Path) Peek() (Direction, bool) {
	if len(p.dirs) == 0 {
		return 0, false
	}
	return p.dirs[0], true
}

func (p *Path) Len() int    { return len(p.dirs) }
func (p *Path) Empty() bool { return len(p.dirs) == 0 }

// Take returns a copy holding at most the first n moves.
func (p *Path) Take(n int) Path {
	if n < 0 {
		n = 0
	}
	if n > len(p.dirs) {
		n = len(p.dirs)
	}
	return NewPath(p.dirs[:n]...)
}

// Directions yields the queued moves front to back without consuming them.
func (p *Path) Directions() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for _, d := range p.dirs {
			if !yield(d) {
				return
			}
		}
	}
}

// Offsets yields the cumulative displacement after each move, starting with
// the zero offset. A path of n moves yields n+1 offsets. The sequence is
// recomputed on every iteration.
func (p *Path) Offsets() iter.Seq[Offset] {
	return func(yield func(Offset) bool) {
		var cur Offset
		if !yield(cur) {
			return
		}
		for _, d := range p.dirs {
			cur = cur.Add(d.Offset())
			if !yield(cur) {
				return
			}
		}
	}
}

// End is the offset reached after every move has been applied.
func (p *Path) End() Offset {
	var cur Offset
	for _, d := range p.dirs {
		cur = cur.Add(d.Offset())
	}
	return cur
}

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, d := range p.dirs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(d.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
