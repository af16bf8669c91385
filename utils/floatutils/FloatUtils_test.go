package floatutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRMSE(t *testing.T) {
	assert.Equal(t, 0.0, RMSE(nil, nil))
	assert.Equal(t, 0.0, RMSE([]float64{1, 2}, []float64{1, 2}))
	assert.InDelta(t, math.Sqrt(2.5), RMSE([]float64{1, 0}, []float64{0, 2}),
		1e-12)
	assert.Panics(t, func() { RMSE([]float64{1}, nil) })
}

func TestMaxError(t *testing.T) {
	max, ind := MaxError([]float64{1, 0, 3}, []float64{0.5, 2, 3})
	assert.InDelta(t, 2.0, max, 1e-12)
	assert.Equal(t, 1, ind)

	max, ind = MaxError(nil, nil)
	assert.Equal(t, 0.0, max)
	assert.Equal(t, -1, ind)

	assert.Panics(t, func() { MaxError([]float64{1}, []float64{1, 2}) })
}
