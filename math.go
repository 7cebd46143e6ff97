package planetsim

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// norm returns the norm of a given vector which is supposed to be 2x1.
func norm(v []float64) float64 {
	return math.Hypot(v[0], v[1])
}

// dot performs the inner product via mat64/BLAS.
func dot(a, b []float64) float64 {
	return mat64.Dot(mat64.NewVector(len(a), a), mat64.NewVector(len(b), b))
}
