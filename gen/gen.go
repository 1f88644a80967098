package gen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/steinerx/arcgraph"
)

var (
	// ErrTooFewNodes indicates a size parameter below the constructor's
	// minimum.
	ErrTooFewNodes = errors.New("gen: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("gen: probability out of range")
)

const (
	minStarNodes  = 2
	minCycleNodes = 3
)

// Star builds a hub-and-spokes instance: node 0 is the prize-free hub, nodes
// 1..n-1 are prized leaves. Spokes carry the same cost in both directions.
func Star(n int, opts ...Option) (*arcgraph.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	g := arcgraph.New(cfg.kind, n, 2*(n-1))
	g.KnotAdd(arcgraph.TermNone)
	g.Prize[0] = 0.0
	for leaf := 1; leaf < n; leaf++ {
		g.KnotAdd(arcgraph.TermNone)
		g.Prize[leaf] = cfg.prizeFn(cfg.rng)
		cost := cfg.costFn(cfg.rng)
		g.EdgeAdd(0, leaf, cost, cost)
	}

	return g, nil
}

// Cycle builds a ring of n nodes where every other node carries a prize, so
// solutions must weigh shortcuts through prize-free stretches.
func Cycle(n int, opts ...Option) (*arcgraph.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	g := arcgraph.New(cfg.kind, n, 2*n)
	for k := 0; k < n; k++ {
		g.KnotAdd(arcgraph.TermNone)
		if k%2 == 0 {
			g.Prize[k] = cfg.prizeFn(cfg.rng)
		} else {
			g.Prize[k] = 0.0
		}
	}
	for k := 0; k < n; k++ {
		cost := cfg.costFn(cfg.rng)
		g.EdgeAdd(k, (k+1)%n, cost, cost)
	}

	return g, nil
}

// terminalShare is the expected fraction of prized nodes in RandomSparse.
const terminalShare = 0.3

// RandomSparse builds a connected instance on n nodes: a spanning path
// guarantees connectivity, every remaining pair joins with probability p,
// and roughly a terminalShare fraction of the nodes receive prizes.
func RandomSparse(n int, p float64, opts ...Option) (*arcgraph.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)

	g := arcgraph.New(cfg.kind, n, 2*n+int(p*float64(n*n)))
	for k := 0; k < n; k++ {
		g.KnotAdd(arcgraph.TermNone)
		if cfg.rng.Float64() < terminalShare {
			g.Prize[k] = cfg.prizeFn(cfg.rng)
		} else {
			g.Prize[k] = 0.0
		}
	}
	for k := 1; k < n; k++ {
		cost := cfg.costFn(cfg.rng)
		g.EdgeAdd(k-1, k, cost, cost)
	}
	for u := 0; u < n; u++ {
		for v := u + 2; v < n; v++ {
			if cfg.rng.Float64() < p {
				cost := cfg.costFn(cfg.rng)
				g.EdgeAdd(u, v, cost, cost)
			}
		}
	}

	return g, nil
}
