package solver

import (
	"fmt"
	"strconv"
	"strings"
)

type JitterKind uint8

const (
	// KindNone never truncates a plan.
	KindNone JitterKind = iota
	// KindWhenIndirect truncates every plan to Steps moves.
	KindWhenIndirect
	// KindAlways truncates only plans whose tree had to grow over
	// space reserved for the snake.
	KindAlways
)

// Jitter decides how much of a freshly planned path is handed out before the
// solver is asked to plan again.
type Jitter struct {
	Kind  JitterKind
	Steps int
}

func NoJitter() Jitter { return Jitter{Kind: KindNone} }

func JitterWhenIndirect(n int) Jitter { return Jitter{Kind: KindWhenIndirect, Steps: n} }

func JitterAlways(n int) Jitter { return Jitter{Kind: KindAlways, Steps: n} }

// Limit returns the number of moves to keep, or -1 for the whole path.
// overridden reports whether tree growth reused reserved snake space.
// A truncating policy always keeps at least one move.
func (j Jitter) Limit(overridden bool) int {
	switch j.Kind {
	case KindWhenIndirect:
		return max(j.Steps, 1)
	case KindAlways:
		if overridden {
			return max(j.Steps, 1)
		}
	}
	return -1
}

func (j Jitter) String() string {
	switch j.Kind {
	case KindWhenIndirect:
		return "indirect:" + strconv.Itoa(j.Steps)
	case KindAlways:
		return "always:" + strconv.Itoa(j.Steps)
	default:
		return "none"
	}
}

// ParseJitter reads "none", "indirect:N" or "always:N" with N >= 1.
func ParseJitter(s string) (Jitter, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return NoJitter(), nil
	}
	kind, num, ok := strings.Cut(s, ":")
	if !ok {
		return Jitter{}, fmt.Errorf("parse jitter %q: missing step count", s)
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return Jitter{}, fmt.Errorf("parse jitter %q: %w", s, err)
	}
	if n < 1 {
		return Jitter{}, fmt.Errorf("parse jitter %q: step count must be positive", s)
	}
	switch kind {
	case "indirect":
		return JitterWhenIndirect(n), nil
	case "always":
		return JitterAlways(n), nil
	}
	return Jitter{}, fmt.Errorf("parse jitter %q: unknown kind %q", s, kind)
}
