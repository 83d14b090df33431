package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphplot/core"
)

// Path is an ordered vertex sequence from a source to a target in which
// consecutive vertices are adjacent.
type Path[K comparable] []K

// Hops returns the number of edges on the path (0 for a single vertex).
func (p Path[K]) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Edges returns the consecutive vertex pairs of the path.
func (p Path[K]) Edges() []core.Edge[K] {
	if len(p) < 2 {
		return nil
	}
	out := make([]core.Edge[K], 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		out = append(out, core.Edge[K]{From: p[i-1], To: p[i]})
	}

	return out
}

// Contains reports whether u and v appear next to each other on the path,
// in either direction.
func (p Path[K]) Contains(u, v K) bool {
	for i := 1; i < len(p); i++ {
		if (p[i-1] == u && p[i] == v) || (p[i-1] == v && p[i] == u) {
			return true
		}
	}

	return false
}

// ShortestPath returns a minimum-hop path from source to target.
//
// Ties between equal-length paths are broken by edge insertion order: the
// search expands neighbors in the order core.Graph.Neighbors returns them and
// keeps the first parent that discovers each vertex. On the sample graph
// (1,2),(1,3),(2,3),(2,4),(3,4) the path 1→4 is therefore [1 2 4].
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - core.ErrVertexNotFound (wrapped, naming the vertex) if source or target is absent.
//   - ErrPathNotFound (wrapped, naming both endpoints) if target is unreachable.
//   - ctx.Err() when a WithContext option is cancelled.
//
// The graph is not modified.
func ShortestPath[K comparable](g *core.Graph[K], source, target K, opts ...Option[K]) (Path[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("bfs: source %v: %w", source, core.ErrVertexNotFound)
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("bfs: target %v: %w", target, core.ErrVertexNotFound)
	}
	if source == target {
		return Path[K]{source}, nil
	}

	all := make([]Option[K], 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithStopAt(target))

	res, err := BFS(g, source, all...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(target)
}

// Distances returns the hop distance from source to every reachable vertex.
func Distances[K comparable](g *core.Graph[K], source K) (map[K]int, error) {
	res, err := BFS(g, source)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}
