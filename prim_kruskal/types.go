// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Prim and Kruskal via MSTOptions.
package prim_kruskal

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtree/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrEmptyGraph indicates a graph with zero vertices; there is no root to grow from.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no vertices")

// ErrInvalidRoot indicates a root vertex outside [0, NumVertices()).
var ErrInvalidRoot = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that Kruskal could not connect every vertex.
// Prim never returns it: Prim spans only the root's component.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates MSTOptions.Method is neither MethodPrim nor MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using the indexed min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Options configures a single Prim run.
type Options struct {
	// Logger receives per-extraction debug events and a final records dump.
	Logger *zap.Logger
}

// Option represents a functional option for configuring Prim.
type Option func(*Options)

// WithLogger routes debug events to log. A nil logger keeps the default (no-op).
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// MSTOptions configures which MST algorithm to run, and for Prim, which root to use.
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   int:    start vertex for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// DefaultMSTOptions returns MSTOptions for Prim rooted at vertex 0.
func DefaultMSTOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
// Returns the tree edges (len is the edge count), the total weight and an error.
func Compute(graph *core.Graph, opts MSTOptions, primOpts ...Option) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root, primOpts...)
	default:
		return nil, 0, ErrUnknownMethod
	}
}
