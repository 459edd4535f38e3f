// Command lvtree builds minimum spanning trees and shortest-path trees from
// graph files and prints paths recovered from them.
/*
Usage:
  lvtree [command]

Available Commands:
  mst         Minimum spanning tree (Prim or Kruskal)
  spt         Shortest-path tree from a source
  path        Shortest path between two vertices
  paths       Shortest paths from a source to every vertex
  gen         Generate a graph file
  version     Version information

Flags:
      --config string   directory holding lvtree.yaml (default ".")
      --graph string    graph file (YAML)
  -h, --help            help for lvtree

Graph files look like:

	vertices: 4
	undirected: true
	edges:
	  - {from: 0, to: 1, weight: 4}
	  - {from: 0, to: 2, weight: 1}
*/
package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	a := newApp()
	if err := a.rootCmd().Execute(); err != nil {
		a.log.Error("command failed", zap.Error(err))
		_ = a.log.Sync()
		os.Exit(1)
	}
}
