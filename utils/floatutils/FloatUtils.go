// Package floatutils provides utilities for working with floats
package floatutils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// RMSE returns the root mean squared error between two slices. RMSE
// panics if the slices have different lengths, and returns 0 for
// empty slices.
func RMSE(estimate, target []float64) float64 {
	if len(estimate) != len(target) {
		panic(fmt.Sprintf("rmse: slices of different lengths (%d, %d)",
			len(estimate), len(target)))
	}
	if len(estimate) == 0 {
		return 0
	}
	dist := floats.Distance(estimate, target, 2)
	return dist / math.Sqrt(float64(len(estimate)))
}

// MaxError returns the largest absolute difference between two slices
// and the index at which it occurs. MaxError panics if the slices have
// different lengths, and returns (0, -1) for empty slices.
func MaxError(estimate, target []float64) (float64, int) {
	if len(estimate) != len(target) {
		panic(fmt.Sprintf("maxError: slices of different lengths (%d, %d)",
			len(estimate), len(target)))
	}
	if len(estimate) == 0 {
		return 0, -1
	}

	diff := make([]float64, len(estimate))
	floats.SubTo(diff, estimate, target)
	for i := range diff {
		diff[i] = math.Abs(diff[i])
	}
	ind := floats.MaxIdx(diff)
	return diff[ind], ind
}
