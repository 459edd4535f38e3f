package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvtree/core"
)

var (
	// ErrTooFewVertices indicates a size parameter smaller than allowed, or a
	// topology that does not fit the graph's vertex count.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates the graph rejected a generated edge.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

// Constructor adds one topology to g, over vertices [0, k) for the k the
// topology needs.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuilderOption configures the generators before BuildGraph runs them.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	directed bool
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil, // no RNG unless explicitly set
		weightFn: ConstantWeightFn(DefaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed attaches a new *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches r. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithDirected stores each generated edge once, from the lower to the
// higher index, instead of in both directions.
func WithDirected() BuilderOption {
	return func(c *builderConfig) {
		c.directed = true
	}
}

// BuildGraph creates a graph with n vertices and applies cons in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// need checks that size is at least min and that g holds size vertices.
func need(g *core.Graph, method string, size, min int) error {
	if size < min {
		return fmt.Errorf("%s: size %d < min %d: %w", method, size, min, ErrTooFewVertices)
	}
	if size > g.NumVertices() {
		return fmt.Errorf("%s: needs %d vertices, graph has %d: %w",
			method, size, g.NumVertices(), ErrTooFewVertices)
	}

	return nil
}

// connect adds u—v (or u→v when directed) with a fresh weight. An edge
// that is already present is left alone.
func connect(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	var err error
	if cfg.directed {
		err = g.AddEdge(u, v, w)
	} else {
		err = g.AddUndirectedEdge(u, v, w)
	}
	switch {
	case err == nil, errors.Is(err, core.ErrMultiEdgeNotAllowed):
		return nil
	default:
		return fmt.Errorf("%s: edge %d-%d: %w: %w", method, u, v, ErrConstructFailed, err)
	}
}
