package gen

import (
	"math/rand"

	"github.com/katalvlaran/steinerx/arcgraph"
)

// defaultSeed keeps un-configured constructors reproducible.
const defaultSeed = 1

// CostFn draws the cost of the next edge.
type CostFn func(*rand.Rand) float64

// PrizeFn draws the prize of the next terminal.
type PrizeFn func(*rand.Rand) float64

// Option customizes a constructor by mutating its config before any node is
// emitted.
type Option func(*config)

type config struct {
	rng     *rand.Rand
	kind    arcgraph.GraphKind
	costFn  CostFn
	prizeFn PrizeFn
}

func newConfig(opts ...Option) config {
	cfg := config{
		rng:     rand.New(rand.NewSource(defaultSeed)),
		kind:    arcgraph.KindPC,
		costFn:  func(r *rand.Rand) float64 { return 1.0 + 9.0*r.Float64() },
		prizeFn: func(r *rand.Rand) float64 { return 1.0 + 9.0*r.Float64() },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed locks all draws to a deterministic seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithKind selects the instance kind (KindPC, KindMW, ...). Panics on a kind
// without prize machinery.
func WithKind(kind arcgraph.GraphKind) Option {
	if !kind.IsPcMw() {
		panic("gen: WithKind requires a prize-collecting kind")
	}

	return func(c *config) { c.kind = kind }
}

// WithCostFn overrides the per-edge cost generator. Panics on nil.
func WithCostFn(fn CostFn) Option {
	if fn == nil {
		panic("gen: WithCostFn(nil)")
	}

	return func(c *config) { c.costFn = fn }
}

// WithPrizeFn overrides the per-terminal prize generator. Panics on nil.
func WithPrizeFn(fn PrizeFn) Option {
	if fn == nil {
		panic("gen: WithPrizeFn(nil)")
	}

	return func(c *config) { c.prizeFn = fn }
}
