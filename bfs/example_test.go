package bfs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphplot/bfs"
	"github.com/katalvlaran/graphplot/core"
)

// ExampleShortestPath runs the sample query on the five-edge graph
// (1,2),(1,3),(2,3),(2,4),(3,4). Two 2-hop paths exist; insertion order picks 2.
func ExampleShortestPath() {
	g := core.NewGraph[int]()
	for _, e := range [][2]int{{1, 2}, {1, 3}, {2, 3}, {2, 4}, {3, 4}} {
		_ = g.AddEdge(e[0], e[1])
	}

	path, err := bfs.ShortestPath(g, 1, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, "hops:", path.Hops())

	// An isolated vertex is unreachable
	g.AddVertex(5)
	_, err = bfs.ShortestPath(g, 1, 5)
	fmt.Println(errors.Is(err, bfs.ErrPathNotFound))
	// Output:
	// [1 2 4] hops: 2
	// true
}

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
// We expect to see the start at "0_0", then its 2 neighbors {"0_1","1_0"}, then the next frontier, etc.
func ExampleBFS_gridTraversal() {
	// Build a 3×3 undirected grid: vertices "i_j" for 0 ≤ i,j < 3
	g := core.NewGraph[string]()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// connect to right neighbor
			if j+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			// connect to down neighbor
			if i+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}

	// BFS from top-left corner
	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Print the visit order; should follow non-decreasing Manhattan distance
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleShortestPath_network finds the fewest-hop path in a network of 11 vertices.
// Two competing routes exist from "A" to "K": one of length 4, another length 3.
func ExampleShortestPath_network() {
	g := core.NewGraph[string]()
	// Route1: A–B–C–D–K (4 hops)
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "D")
	_ = g.AddEdge("D", "K")
	// Route2: A–E–F–K (3 hops)
	_ = g.AddEdge("A", "E")
	_ = g.AddEdge("E", "F")
	_ = g.AddEdge("F", "K")
	// Some extra branches to other nodes
	_ = g.AddEdge("C", "G")
	_ = g.AddEdge("G", "H")
	_ = g.AddEdge("D", "I")
	_ = g.AddEdge("I", "J")

	path, err := bfs.ShortestPath(g, "A", "K")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [A E F K]
}

// ExampleBFS_depthLimitOnChain shows applying WithMaxDepth to a linear chain of 10 vertices.
// With depth=2 we only visit the first three nodes.
func ExampleBFS_depthLimitOnChain() {
	// Build a chain v0–v1–...–v9 (10 vertices)
	g := core.NewGraph[string]()
	for i := 0; i < 9; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	// Limit depth to 2: should see v0, v1, v2 only
	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth[string](2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [v0 v1 v2]
}
