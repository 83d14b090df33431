// Package bfs provides breadth-first search over a core.Graph and the
// unweighted shortest-path query built on it.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - BFS returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - ShortestPath returns the minimum-hop Path between two vertices,
//     stopping as soon as the target is discovered.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	core.Graph.Neighbors returns neighbors in edge insertion order and BFS
//	enqueues them in that order, keeping the first parent that discovers a
//	vertex. The visit sequence, and therefore the path chosen among several
//	shortest ones, is fully reproducible.
//
// Implementation
//
//	The walker keeps an explicit slice queue and a visited set; nothing
//	recurses, so graph size is bounded by memory and not by stack depth.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	path, err := bfs.ShortestPath(g, 1, 4)
//	switch {
//	case errors.Is(err, core.ErrVertexNotFound):
//		// source or target missing
//	case errors.Is(err, bfs.ErrPathNotFound):
//		// disconnected
//	}
//
//	res, err := bfs.BFS(g, "start",
//		bfs.WithContext[string](ctx),
//		bfs.WithMaxDepth[string](3),
//		bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - core.ErrVertexNotFound  if a start/source/target vertex does not exist.
//   - ErrPathNotFound         if the target is unreachable.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
