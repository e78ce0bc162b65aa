// Package catalog builds solvers by name for the binaries.
package catalog

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/arduano/snake-solver/solver"
	"github.com/arduano/snake-solver/solver/randomtree"
	"github.com/arduano/snake-solver/solver/spantree"
	"github.com/arduano/snake-solver/solver/zigzag"
)

const (
	SpanningTree = "spantree"
	ZigZag       = "zigzag"
	RandomTree   = "randomtree"
)

// Names lists every known solver.
func Names() []string { return []string{SpanningTree, ZigZag, RandomTree} }

type Options struct {
	Jitter solver.Jitter
	Seed   int64
	Logger *slog.Logger
}

func New(name string, opts Options) (solver.Solver, error) {
	rng := rand.New(rand.NewSource(opts.Seed))
	switch name {
	case SpanningTree:
		sopts := []spantree.Option{spantree.WithRand(rng)}
		if opts.Logger != nil {
			sopts = append(sopts, spantree.WithLogger(opts.Logger))
		}
		return spantree.New(opts.Jitter, sopts...), nil
	case ZigZag:
		return zigzag.New(), nil
	case RandomTree:
		return randomtree.New(rng), nil
	default:
		return nil, fmt.Errorf("unknown solver %q (want one of %v)", name, Names())
	}
}
