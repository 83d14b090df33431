// Package core defines the generic undirected Graph type, its options,
// and the sentinel errors shared by every package built on top of it.
//
// Errors:
//
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrLoopNotAllowed  - self-loop when the graph was built WithoutLoops.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected connection between two vertices, kept in the
// orientation it was first inserted with.
type Edge[K comparable] struct {
	// From is the first endpoint passed to AddEdge.
	From K

	// To is the second endpoint passed to AddEdge.
	To K
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	allowLoops bool
}

// WithoutLoops rejects self-loops (u == v) with ErrLoopNotAllowed.
// By default self-loops are stored and u appears once in its own adjacency set.
func WithoutLoops() GraphOption {
	return func(o *graphOptions) { o.allowLoops = false }
}

// adjacency is an insertion-ordered set of neighbor IDs.
type adjacency[K comparable] struct {
	order []K
	set   map[K]struct{}
}

func newAdjacency[K comparable]() *adjacency[K] {
	return &adjacency[K]{set: make(map[K]struct{})}
}

// add inserts id and reports whether it was new.
func (a *adjacency[K]) add(id K) bool {
	if _, ok := a.set[id]; ok {
		return false
	}
	a.set[id] = struct{}{}
	a.order = append(a.order, id)

	return true
}

func (a *adjacency[K]) has(id K) bool {
	_, ok := a.set[id]

	return ok
}

// Graph is an in-memory undirected, unweighted graph keyed by any comparable type.
//
// Vertices, edges and every adjacency set remember insertion order, so all
// read APIs (Nodes, Edges, Neighbors) are deterministic across runs.
// mu guards every field below it.
type Graph[K comparable] struct {
	mu sync.RWMutex

	allowLoops bool

	// Storage
	order []K                 // vertex IDs in first-insertion order
	adj   map[K]*adjacency[K] // vertex ID → neighbor set
	edges []Edge[K]           // undirected edges in first-insertion order
}

// NewGraph creates an empty Graph with the given options.
// By default self-loops are allowed.
// Complexity: O(1)
func NewGraph[K comparable](opts ...GraphOption) *Graph[K] {
	o := graphOptions{allowLoops: true}
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[K]{
		allowLoops: o.allowLoops,
		adj:        make(map[K]*adjacency[K]),
	}
}
