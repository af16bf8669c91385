// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FormatVec formats a vector as a single row for printing, with prec
// digits after the decimal point
func FormatVec(v mat.Vector, prec int) string {
	fa := mat.Formatted(v.T(), mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%.*f", prec, fa)
}
