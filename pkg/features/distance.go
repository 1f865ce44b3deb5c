package features

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Distance is the Minkowski distance of order p between the full descriptor
// vectors. p == 0 selects the Chebyshev (max absolute difference) distance.
func Distance(f0, f1 Features, p int) float64 {
	return MinkowskiDistance(f0.Vector(), f1.Vector(), p)
}

// MinkowskiDistance works on raw vectors of equal length.
func MinkowskiDistance(a, b []float64, p int) float64 {
	if p == 0 {
		return floats.Distance(a, b, math.Inf(1))
	}
	return floats.Distance(a, b, float64(p))
}
