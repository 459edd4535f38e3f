// Package planner answers repeated tree and path queries over one graph.
//
// A Planner snapshots the graph it is given and caches one Dijkstra
// distance tree per source in a 2Q LRU cache, so answering many paths from
// the same source costs a single traversal. Cached trees stay valid because
// the snapshot never changes. A Planner is safe for concurrent use.
package planner

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/dijkstra"
	"github.com/katalvlaran/lvtree/prim_kruskal"
)

// DefaultCacheSize is the number of distance trees kept when no
// WithCacheSize option is given.
const DefaultCacheSize = 128

var (
	// ErrNilGraph indicates NewPlanner was called without a graph.
	ErrNilGraph = errors.New("planner: graph is nil")

	// ErrBadCacheSize indicates a cache size below 1.
	ErrBadCacheSize = errors.New("planner: cache size must be positive")
)

// Options configures a Planner.
type Options struct {
	CacheSize int
	Logger    *zap.Logger
}

// Option represents a functional option for configuring a Planner.
type Option func(*Options)

// WithCacheSize bounds the number of cached distance trees.
func WithCacheSize(n int) Option {
	return func(o *Options) { o.CacheSize = n }
}

// WithLogger sets the logger for cache events; it is also handed to the
// traversals. A nil logger keeps the default (no-op).
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// DefaultOptions returns DefaultCacheSize and a no-op logger.
func DefaultOptions() Options {
	return Options{CacheSize: DefaultCacheSize, Logger: zap.NewNop()}
}

// Planner serves shortest-path and spanning-tree queries on a fixed graph.
type Planner struct {
	g     *core.Graph
	cache *lru.TwoQueueCache
	log   *zap.Logger
}

// SpanningTree is the result of SpanningTree: the tree edges in the order
// they were added and their total weight.
type SpanningTree struct {
	Root   int
	Edges  []core.Edge
	Weight int64
}

// NewPlanner snapshots g and prepares an empty tree cache.
// Later changes to g are not seen by the Planner.
func NewPlanner(g *core.Graph, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.CacheSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadCacheSize, cfg.CacheSize)
	}

	cache, err := lru.New2Q(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("planner: cache: %w", err)
	}

	return &Planner{g: g.Clone(), cache: cache, log: cfg.Logger}, nil
}

// NumVertices returns the vertex count of the snapshot.
func (p *Planner) NumVertices() int { return p.g.NumVertices() }

// Tree returns the shortest-path tree rooted at source, computing it on
// the first request and serving it from the cache afterwards.
//
// Two goroutines missing the cache for the same source may both compute
// the tree; the results are identical, so the second Add is harmless.
func (p *Planner) Tree(source int) (*dijkstra.DistanceTree, error) {
	if v, ok := p.cache.Get(source); ok {
		p.log.Debug("planner: cache hit", zap.Int("source", source))
		return v.(*dijkstra.DistanceTree), nil
	}

	tree, err := dijkstra.Dijkstra(p.g, source, dijkstra.WithLogger(p.log))
	if err != nil {
		return nil, err
	}
	p.cache.Add(source, tree)
	p.log.Debug("planner: cached tree", zap.Int("source", source), zap.Int("cached", p.cache.Len()))

	return tree, nil
}

// Path returns the shortest path from source to target.
// It returns dijkstra.ErrUnreachable (wrapped) when none exists.
func (p *Planner) Path(source, target int) (dijkstra.Path, error) {
	tree, err := p.Tree(source)
	if err != nil {
		return dijkstra.Path{}, err
	}
	edges, err := dijkstra.ReconstructPath(tree, source, target)
	if err != nil {
		return dijkstra.Path{Target: target}, err
	}

	return dijkstra.Path{Target: target, Edges: edges, Reachable: true}, nil
}

// AllPaths returns the shortest path from source to every vertex.
func (p *Planner) AllPaths(source int) ([]dijkstra.Path, error) {
	tree, err := p.Tree(source)
	if err != nil {
		return nil, err
	}

	return dijkstra.ReconstructAllPaths(tree, source)
}

// SpanningTree runs Prim from root on the snapshot. The result is not cached.
func (p *Planner) SpanningTree(root int) (SpanningTree, error) {
	edges, total, err := prim_kruskal.Prim(p.g, root, prim_kruskal.WithLogger(p.log))
	if err != nil {
		return SpanningTree{}, err
	}

	return SpanningTree{Root: root, Edges: edges, Weight: total}, nil
}

// Purge drops every cached tree.
func (p *Planner) Purge() { p.cache.Purge() }

// Cached reports how many distance trees are currently cached.
func (p *Planner) Cached() int { return p.cache.Len() }
