package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minWheelNodes = 4
	minGridDim    = 1
)

// Path connects 0—1—…—(n-1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := need(g, methodPath, n, minPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := connect(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle is Path(n) closed by (n-1)—0.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := need(g, methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star connects hub 0 to every vertex in [1, n).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := need(g, methodStar, n, minStarNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel is a Star(n) whose rim 1—2—…—(n-1)—1 is also a cycle.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := need(g, methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		if err := Star(n)(g, cfg); err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := connect(g, cfg, methodWheel, 1+i, 1+(i+1)%rim); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete connects every pair i<j in [0, n).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := need(g, methodComplete, n, 1); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid lays out rows×cols vertices in row-major order (cell (r,c) is
// r*cols+c) and connects each cell to its right and bottom neighbors.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := need(g, methodGrid, rows*cols, 1); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := connect(g, cfg, methodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, methodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse includes each pair i<j in [0, n) independently with
// probability p. Trials run in (i asc, j asc) order, so a fixed seed
// yields a fixed graph. p in {0, 1} needs no RNG.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := need(g, methodRandomSparse, n, 1); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				if err := connect(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
