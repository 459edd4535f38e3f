// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/dijkstra"
)

// ExampleDijkstra_triangle computes shortest distances on a triangle.
// The direct 0–2 edge (5) loses to the detour 0→1→2 (3).
func ExampleDijkstra_triangle() {
	g, _ := core.NewGraph(3)
	_ = g.AddUndirectedEdge(0, 1, 1)
	_ = g.AddUndirectedEdge(1, 2, 2)
	_ = g.AddUndirectedEdge(0, 2, 5)

	tree, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tree.Distances())
	// Output: [0 1 3]
}

// ExampleReconstructPath walks the tree back from a target and prints the
// hops in travel order.
func ExampleReconstructPath() {
	g, _ := core.NewGraph(4)
	_ = g.AddUndirectedEdge(0, 1, 4)
	_ = g.AddUndirectedEdge(0, 2, 1)
	_ = g.AddUndirectedEdge(2, 1, 2)
	_ = g.AddUndirectedEdge(1, 3, 1)
	_ = g.AddUndirectedEdge(2, 3, 5)

	tree, _ := dijkstra.Dijkstra(g, 0)
	path, err := dijkstra.ReconstructPath(tree, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output: [(0,2,1) (2,1,2) (1,3,1)]
}

// ExampleReconstructPath_unreachable shows the error for a vertex with no
// incoming path.
func ExampleReconstructPath_unreachable() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 7)

	tree, _ := dijkstra.Dijkstra(g, 0)
	_, err := dijkstra.ReconstructPath(tree, 0, 2)
	fmt.Println(errors.Is(err, dijkstra.ErrUnreachable), tree.Predecessor(2))
	// Output: true -1
}
