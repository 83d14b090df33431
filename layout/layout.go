// Package layout assigns 2D drawing coordinates to the vertices of a core.Graph.
//
// Two layouts are provided:
//
//   - Circular: vertices evenly spaced on a circle, in Nodes() order.
//   - Spring: Fruchterman–Reingold force-directed placement, seeded so that
//     the same graph and options always produce the same picture.
//
// Both return Positions rescaled into [-scale, scale] on each axis.
package layout

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/graphplot/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("layout: graph is nil")

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("layout: invalid option supplied")

// Positions maps each vertex to its drawing coordinates.
type Positions[K comparable] map[K]r2.Vec

// Options tunes the spring layout.
type Options struct {
	// Iterations is the number of cooling steps (default 50).
	Iterations int
	// Seed feeds the initial random placement (default 42).
	Seed int64
	// Scale is the half-width of the output box (default 1).
	Scale float64

	err error
}

// Option configures a layout call.
type Option func(*Options)

// DefaultOptions returns 50 iterations, seed 42, scale 1.
func DefaultOptions() Options {
	return Options{Iterations: 50, Seed: 42, Scale: 1}
}

// WithIterations sets the number of force iterations (must be > 0).
func WithIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.Iterations = n
	}
}

// WithSeed sets the seed of the initial random placement.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithScale sets the half-width of the bounding box (must be > 0).
func WithScale(scale float64) Option {
	return func(o *Options) {
		if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
			o.err = ErrOptionViolation
			return
		}
		o.Scale = scale
	}
}

// Circular places nodes evenly on a circle of the given radius, starting at
// angle 0 and proceeding counter-clockwise. A single node sits at the origin.
func Circular[K comparable](nodes []K, radius float64) Positions[K] {
	pos := make(Positions[K], len(nodes))
	if len(nodes) == 1 {
		pos[nodes[0]] = r2.Vec{}
		return pos
	}
	step := 2 * math.Pi / float64(len(nodes))
	for i, id := range nodes {
		theta := step * float64(i)
		pos[id] = r2.Scale(radius, r2.Vec{X: math.Cos(theta), Y: math.Sin(theta)})
	}

	return pos
}

// Spring computes a Fruchterman–Reingold layout of g.
//
// Implementation:
//   - Stage 1: place vertices uniformly in the unit square using Seed.
//   - Stage 2: for each iteration, accumulate repulsion k²/d between every
//     pair and attraction d²/k along every edge, then move each vertex by at
//     most the current temperature, which cools linearly to zero.
//   - Stage 3: center on the mean and rescale into [-Scale, Scale].
//
// Complexity: O(Iterations · V²) time, O(V) memory.
func Spring[K comparable](g *core.Graph[K], opts ...Option) (Positions[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	nodes := g.Nodes()
	n := len(nodes)
	switch n {
	case 0:
		return Positions[K]{}, nil
	case 1:
		return Positions[K]{nodes[0]: {}}, nil
	}

	index := make(map[K]int, n)
	for i, id := range nodes {
		index[id] = i
	}
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		adj[u][v], adj[v][u] = true, true
	}

	rng := rand.New(rand.NewSource(o.Seed))
	pos := make([]r2.Vec, n)
	for i := range pos {
		pos[i] = r2.Vec{X: rng.Float64(), Y: rng.Float64()}
	}

	k := math.Sqrt(1 / float64(n))
	temp := 0.1 * span(pos)
	cool := temp / float64(o.Iterations+1)
	disp := make([]r2.Vec, n)

	for it := 0; it < o.Iterations; it++ {
		for i := range disp {
			disp[i] = r2.Vec{}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				delta := r2.Sub(pos[i], pos[j])
				d := math.Max(r2.Norm(delta), 0.01)
				force := k * k / d
				if adj[i][j] {
					force -= d * d / k
				}
				disp[i] = r2.Add(disp[i], r2.Scale(force/d, delta))
			}
		}
		for i := range pos {
			length := math.Max(r2.Norm(disp[i]), 0.01)
			pos[i] = r2.Add(pos[i], r2.Scale(temp/length, disp[i]))
		}
		temp -= cool
	}

	rescale(pos, o.Scale)

	out := make(Positions[K], n)
	for i, id := range nodes {
		out[id] = pos[i]
	}

	return out, nil
}

// span returns the larger side of the bounding box of pos.
func span(pos []r2.Vec) float64 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pos {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	return math.Max(maxX-minX, maxY-minY)
}

// rescale centers pos on its mean and scales the largest |coordinate| to scale.
func rescale(pos []r2.Vec, scale float64) {
	var mean r2.Vec
	for _, p := range pos {
		mean = r2.Add(mean, p)
	}
	mean = r2.Scale(1/float64(len(pos)), mean)

	lim := 0.0
	for i := range pos {
		pos[i] = r2.Sub(pos[i], mean)
		lim = math.Max(lim, math.Max(math.Abs(pos[i].X), math.Abs(pos[i].Y)))
	}
	if lim == 0 {
		return
	}
	for i := range pos {
		pos[i] = r2.Scale(scale/lim, pos[i])
	}
}
