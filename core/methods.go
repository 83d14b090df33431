// File: methods.go
// Role: Vertex and edge mutation plus the read APIs used by traversal code.
// Determinism:
//   - Nodes() returns vertices in first-insertion order.
//   - Neighbors() returns adjacent IDs in the order their edges were inserted.
//   - Edges() returns each undirected edge once, in first-insertion order.
// Concurrency:
//   - Mutators hold mu for writing; queries hold mu for reading.
//   - Every returned slice is a fresh copy and never aliases internal state.

package core

// AddVertex inserts id if it is not present yet. Re-adding is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(id K) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)
}

// ensureVertex must be called with mu held for writing.
func (g *Graph[K]) ensureVertex(id K) *adjacency[K] {
	if a, ok := g.adj[id]; ok {
		return a
	}
	a := newAdjacency[K]()
	g.adj[id] = a
	g.order = append(g.order, id)

	return a
}

// AddEdge inserts an undirected edge between u and v, adding either endpoint
// if missing. Inserting the same edge again, in either orientation, leaves
// the graph unchanged.
//
// Returns ErrLoopNotAllowed for u == v when the graph was built WithoutLoops.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(u, v K) error {
	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	au := g.ensureVertex(u)
	av := g.ensureVertex(v)

	// Set semantics: the u side decides whether the edge is new.
	if !au.add(v) {
		return nil
	}
	// Mirror for the reverse direction (a loop only needs one entry)
	if u != v {
		av.add(u)
	}
	g.edges = append(g.edges, Edge[K]{From: u, To: v})

	return nil
}

// HasVertex reports whether id exists in the graph.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(id K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// HasEdge reports whether u and v are adjacent. Symmetric in its arguments.
// Complexity: O(1).
func (g *Graph[K]) HasEdge(u, v K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a, ok := g.adj[u]
	if !ok {
		return false
	}

	return a.has(v)
}

// Neighbors returns the adjacency set of id, ordered by edge insertion.
// Returns ErrVertexNotFound if id was never added.
// Complexity: O(d) where d is the degree of id.
func (g *Graph[K]) Neighbors(id K) ([]K, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]K, len(a.order))
	copy(out, a.order)

	return out, nil
}

// Degree returns the number of distinct neighbors of id (a self-loop counts once).
func (g *Graph[K]) Degree(id K) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a, ok := g.adj[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(a.order), nil
}

// Nodes returns every vertex ID in first-insertion order.
// Complexity: O(V).
func (g *Graph[K]) Nodes() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns every undirected edge once, in first-insertion order.
// Complexity: O(E).
func (g *Graph[K]) Edges() []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[K], len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns |V|.
func (g *Graph[K]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns |E|, counting each undirected edge once.
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
