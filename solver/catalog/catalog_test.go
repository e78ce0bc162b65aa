package catalog

import (
	"testing"

	"github.com/arduano/snake-solver/solver"
)

func TestNew(t *testing.T) {
	for _, name := range Names() {
		s, err := New(name, Options{Jitter: solver.NoJitter(), Seed: 1})
		if err != nil || s == nil {
			t.Fatalf("name=%s s=%v err=%v", name, s, err)
		}
	}
	if _, err := New("astar", Options{}); err == nil {
		t.Fatalf("unknown solver accepted")
	}
}
