// Package surface defines the sampling Spec, the Grid it produces, and the
// sentinel errors for grid generation.
package surface

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for grid generation.
var (
	// ErrTooFewPoints indicates fewer than two samples per axis were requested.
	ErrTooFewPoints = errors.New("surface: at least two points per axis required")

	// ErrBadBounds indicates min >= max or a non-finite bound.
	ErrBadBounds = errors.New("surface: bounds must be finite with min < max")
)

// Func is a closed-form height function z = f(x, y).
type Func func(x, y float64) float64

// CosSin is z = cos(x)·sin(y).
func CosSin(x, y float64) float64 {
	return math.Cos(x) * math.Sin(y)
}

// Spec describes a square sampling grid: Points samples per axis spaced
// linearly over [Min, Max], both ends included.
type Spec struct {
	Min    float64
	Max    float64
	Points int
}

// DefaultSpec returns the 30×30 grid over [-2, 2].
func DefaultSpec() Spec {
	return Spec{Min: -2, Max: 2, Points: 30}
}

// Validate reports ErrTooFewPoints or ErrBadBounds.
func (s Spec) Validate() error {
	if s.Points < 2 {
		return ErrTooFewPoints
	}
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || math.IsInf(s.Min, 0) || math.IsInf(s.Max, 0) {
		return ErrBadBounds
	}
	if s.Min >= s.Max {
		return ErrBadBounds
	}

	return nil
}

// Grid holds the sampled surface. X, Y and Z share the same n×n shape:
// X varies along rows (X[i][j] = Axis[i]), Y along columns (Y[i][j] = Axis[j]),
// and Z[i][j] = f(X[i][j], Y[i][j]).
type Grid struct {
	Axis []float64
	X    *mat.Dense
	Y    *mat.Dense
	Z    *mat.Dense
}
