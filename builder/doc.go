// Package builder generates deterministic fixture graphs over dense vertex
// ids: paths, cycles, stars, wheels, complete graphs, grids and random
// sparse graphs. It is used by benchmarks, tests and the `lvtree gen`
// command.
//
// Usage:
//
//	g, err := builder.BuildGraph(9,
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 10))},
//		builder.Grid(3, 3))
//
// Guarantees:
//
//   - Determinism: the same vertex count, options, seed and constructor
//     order always yield the same graph.
//   - Idempotent composition: an edge already present is skipped, so
//     constructors may overlap (e.g. Path then Cycle).
//   - Constructors never panic; they return the sentinel errors below
//     wrapped with the constructor name. Option constructors panic on
//     meaningless input (nil functions, inverted ranges).
//
// Errors:
//
//   - ErrTooFewVertices: a size parameter is below its minimum, or the
//     topology needs more vertices than the graph has.
//   - ErrInvalidProbability: p outside [0,1].
//   - ErrNeedRandSource: a stochastic constructor without WithSeed/WithRand.
//   - ErrConstructFailed: nil constructor or a rejected edge.
package builder
