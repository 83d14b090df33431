// Package graphplot finds shortest paths in small undirected graphs and
// draws them, together with sampled 3D surfaces.
//
// 🚀 What is graphplot?
//
//	A thread-safe graph core plus two demos built on top of it:
//		• Core primitives: generic undirected Graph with insertion-ordered adjacency
//		• Traversal: BFS with hooks, depth limits and early stop
//		• Shortest paths: fewest-hop path with deterministic tie-break
//		• Surfaces: z = f(x, y) sampled on a square grid (gonum/mat)
//		• Layout: circular and Fruchterman–Reingold spring layouts
//		• Rendering: Plotly HTML, Graphviz DOT, terminal tables
//
// Under the hood, everything is organized under these subpackages:
//
//	core/           Graph, Edge and the thread-safe primitives
//	bfs/            BFS walker, ShortestPath, Distances
//	surface/        Linspace, Generate, Grid
//	layout/         Circular, Spring
//	render/         scenes, renderers, WriteFile, Open
//	config/         YAML configuration with the sample as defaults
//	logging/        slog logger construction
//	cmd/graphplot/  the command line front-end
//
// Quick ASCII example:
//
//	  1───2
//	  │ ╱ │
//	  3───4
//
// ShortestPath(g, 1, 4) returns [1 2 4]: neighbors are expanded in the order
// their edges were added, so 2 is reached before 3.
//
//	go install github.com/katalvlaran/graphplot/cmd/graphplot@latest
package graphplot
