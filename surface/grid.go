// Package surface samples a height function over a square grid.
package surface

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Linspace returns n evenly spaced values over [lo, hi], both included.
// Complexity: O(n).
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if err := (Spec{Min: lo, Max: hi, Points: n}).Validate(); err != nil {
		return nil, err
	}

	xs := floats.Span(make([]float64, n), lo, hi)
	xs[n-1] = hi // pin the endpoint against rounding in lo+i·step

	return xs, nil
}

// Generate samples f over the grid described by spec. A nil f samples CosSin.
//
// Implementation:
//   - Stage 1: validate spec and build the shared axis with Linspace.
//   - Stage 2: fill X (row-constant) and Y (column-constant), i.e. the outer
//     product of the axis with a ones vector and its transpose.
//   - Stage 3: evaluate Z element-wise from X and Y.
//
// Complexity: O(n²) time and memory.
func Generate(spec Spec, f Func) (*Grid, error) {
	axis, err := Linspace(spec.Min, spec.Max, spec.Points)
	if err != nil {
		return nil, err
	}
	if f == nil {
		f = CosSin
	}

	n := spec.Points
	x := mat.NewDense(n, n, nil)
	y := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x.Set(i, j, axis[i])
			y.Set(i, j, axis[j])
		}
	}

	z := mat.NewDense(n, n, nil)
	z.Apply(func(i, j int, _ float64) float64 {
		return f(x.At(i, j), y.At(i, j))
	}, z)

	return &Grid{Axis: axis, X: x, Y: y, Z: z}, nil
}

// Size returns the number of samples per axis.
func (g *Grid) Size() int {
	return len(g.Axis)
}

// Bounds returns the minimum and maximum of Z.
func (g *Grid) Bounds() (lo, hi float64) {
	return mat.Min(g.Z), mat.Max(g.Z)
}

// Rows returns the grid as nested slices in [i][j] order, the shape plotting
// front-ends expect.
func Rows(m *mat.Dense) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = mat.Row(nil, i, m)
	}

	return out
}
