package matutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestFormatVec(t *testing.T) {
	v := mat.NewVecDense(3, []float64{0, 0.5, 1})
	s := FormatVec(v, 2)

	assert.True(t, strings.HasPrefix(s, "["), s)
	assert.True(t, strings.HasSuffix(s, "]"), s)
	assert.NotContains(t, s, "\n")
	assert.Equal(t, []string{"0.00", "0.50", "1.00"},
		strings.Fields(strings.Trim(s, "[]")))
}
