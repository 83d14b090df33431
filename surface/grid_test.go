package surface_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/graphplot/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const eps = 1e-12

// TestLinspace_Endpoints checks both ends are included and spacing is uniform.
func TestLinspace_Endpoints(t *testing.T) {
	xs, err := surface.Linspace(-2, 2, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-2, -1, 0, 1, 2}, xs, eps)

	xs, err = surface.Linspace(-2, 2, 30)
	require.NoError(t, err)
	require.Len(t, xs, 30)
	assert.Equal(t, -2.0, xs[0])
	assert.InDelta(t, 2.0, xs[29], 1e-9)
	step := 4.0 / 29
	for i := 1; i < len(xs); i++ {
		assert.InDelta(t, step, xs[i]-xs[i-1], 1e-9)
	}
}

// TestLinspace_Errors covers the validation rules.
func TestLinspace_Errors(t *testing.T) {
	_, err := surface.Linspace(0, 1, 1)
	require.ErrorIs(t, err, surface.ErrTooFewPoints)

	_, err = surface.Linspace(1, 1, 10)
	require.ErrorIs(t, err, surface.ErrBadBounds)

	_, err = surface.Linspace(2, -2, 10)
	require.ErrorIs(t, err, surface.ErrBadBounds)

	_, err = surface.Linspace(math.NaN(), 1, 10)
	require.ErrorIs(t, err, surface.ErrBadBounds)

	_, err = surface.Linspace(0, math.Inf(1), 10)
	require.ErrorIs(t, err, surface.ErrBadBounds)
}

// TestGenerate_DefaultShape checks the default 30×30 grid and its values.
func TestGenerate_DefaultShape(t *testing.T) {
	g, err := surface.Generate(surface.DefaultSpec(), nil)
	require.NoError(t, err)
	require.Equal(t, 30, g.Size())

	for _, m := range []*mat.Dense{g.X, g.Y, g.Z} {
		r, c := m.Dims()
		assert.Equal(t, 30, r)
		assert.Equal(t, 30, c)
	}

	// X is row-constant, Y is column-constant, Y = Xᵀ
	assert.True(t, mat.Equal(g.Y, g.X.T()))
	assert.Equal(t, -2.0, g.X.At(0, 29))
	assert.InDelta(t, 2.0, g.Y.At(0, 29), 1e-9)

	// z = cos(x)·sin(y) everywhere
	for i := 0; i < 30; i++ {
		for j := 0; j < 30; j++ {
			want := math.Cos(g.X.At(i, j)) * math.Sin(g.Y.At(i, j))
			require.InDelta(t, want, g.Z.At(i, j), eps, "z[%d][%d]", i, j)
		}
	}

	// corner checks
	assert.InDelta(t, math.Cos(-2)*math.Sin(-2), g.Z.At(0, 0), eps)
	assert.InDelta(t, math.Cos(2)*math.Sin(2), g.Z.At(29, 29), eps)
}

// TestGenerate_CustomFunc evaluates a caller-supplied function.
func TestGenerate_CustomFunc(t *testing.T) {
	g, err := surface.Generate(surface.Spec{Min: 0, Max: 1, Points: 3}, func(x, y float64) float64 {
		return x + 10*y
	})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 5, 10},
		{0.5, 5.5, 10.5},
		{1, 6, 11},
	}, surface.Rows(g.Z))

	lo, hi := g.Bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 11.0, hi)
}

// TestGenerate_InvalidSpec propagates validation errors.
func TestGenerate_InvalidSpec(t *testing.T) {
	_, err := surface.Generate(surface.Spec{Min: -2, Max: 2, Points: 0}, nil)
	require.ErrorIs(t, err, surface.ErrTooFewPoints)
}

// TestBounds_CosSin stays within [-1, 1] for the default grid.
func TestBounds_CosSin(t *testing.T) {
	g, err := surface.Generate(surface.DefaultSpec(), surface.CosSin)
	require.NoError(t, err)
	lo, hi := g.Bounds()
	assert.GreaterOrEqual(t, lo, -1.0)
	assert.LessOrEqual(t, hi, 1.0)
	assert.Less(t, lo, 0.0)
	assert.Greater(t, hi, 0.0)
}
