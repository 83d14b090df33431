// Package core provides a small, thread-safe, generic in-memory Graph.
//
// The Graph G = (V,E) is undirected and unweighted. Vertex IDs may be of any
// comparable type (ints, strings, small structs), so callers keep their own
// identifiers instead of stringifying them.
//
// Why use core.Graph?
//
//   - Generic IDs: Graph[int], Graph[string], Graph[RouterID] all work.
//   - Deterministic iteration: Nodes(), Edges() and Neighbors() return
//     results in insertion order, which is what makes BFS tie-breaking
//     reproducible.
//   - Set semantics: AddEdge(u,v) twice, or AddEdge(v,u) after AddEdge(u,v),
//     leaves the graph unchanged.
//   - Concurrency: a single sync.RWMutex guards all state; reads run in parallel.
//
// Configuration Options (GraphOption):
//
//	– WithoutLoops()
//	    Rejects AddEdge(v,v) with ErrLoopNotAllowed. Loops are allowed by default.
//
// Core Methods:
//
//	AddVertex(id K)                 // O(1)
//	AddEdge(u, v K) error           // O(1)
//	HasVertex(id K) bool            // O(1)
//	HasEdge(u, v K) bool            // O(1), symmetric
//	Neighbors(id K) ([]K, error)    // O(d), insertion order
//	Degree(id K) (int, error)       // O(1)
//	Nodes() []K                     // O(V), insertion order
//	Edges() []Edge[K]               // O(E), insertion order, each edge once
//	VertexCount(), EdgeCount() int  // O(1)
//
// Errors:
//
//	ErrVertexNotFound – missing vertex
//	ErrLoopNotAllowed – self-loop when loops disabled
//
// Quick ASCII example:
//
//	    1───2
//	    │ ╱ │
//	    3───4
//
//	g := core.NewGraph[int]()
//	for _, e := range [][2]int{{1, 2}, {1, 3}, {2, 3}, {2, 4}, {3, 4}} {
//		_ = g.AddEdge(e[0], e[1])
//	}
//	nbrs, _ := g.Neighbors(2) // [1 3 4]
package core
