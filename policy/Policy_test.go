package policy

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/gopredict/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepIn(state int) timestep.TimeStep {
	return timestep.New(timestep.Mid, 0, 1, state, 1)
}

func TestTabularSamplesDistribution(t *testing.T) {
	p, err := NewTabular([][]float64{
		{1, 0, 0},
		{0.25, 0.25, 0.5},
	}, 11)
	require.NoError(t, err)
	assert.Equal(t, 2, p.NumStates())
	assert.Equal(t, 3, p.NumActions())
	assert.Equal(t, uint64(11), p.Seed())

	for i := 0; i < 50; i++ {
		a, err := p.SelectAction(stepIn(0))
		require.NoError(t, err)
		assert.Equal(t, 0, a)
	}

	const n = 8000
	counts := make([]float64, 3)
	for i := 0; i < n; i++ {
		a, err := p.SelectAction(stepIn(1))
		require.NoError(t, err)
		counts[a]++
	}
	assert.InDelta(t, 0.25, counts[0]/n, 0.03)
	assert.InDelta(t, 0.25, counts[1]/n, 0.03)
	assert.InDelta(t, 0.5, counts[2]/n, 0.03)
}

func TestTabularReproducible(t *testing.T) {
	a, err := NewUniform(3, 4, 99)
	require.NoError(t, err)
	b, err := NewUniform(3, 4, 99)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		x, _ := a.SelectAction(stepIn(i % 3))
		y, _ := b.SelectAction(stepIn(i % 3))
		require.Equal(t, x, y)
	}
}

func TestTabularInvalid(t *testing.T) {
	_, err := NewTabular(nil, 0)
	assert.Error(t, err)

	_, err = NewTabular([][]float64{{0.5, 0.4}}, 0)
	assert.Error(t, err)

	_, err = NewTabular([][]float64{{1.5, -0.5}}, 0)
	assert.Error(t, err)

	_, err = NewTabular([][]float64{{1, 0}, {1}}, 0)
	assert.Error(t, err)

	_, err = NewUniform(0, 2, 0)
	assert.Error(t, err)
}

func TestTabularProbabilityTolerance(t *testing.T) {
	_, err := NewTabular([][]float64{{0.5, 0.5 + 1e-8}}, 0)
	assert.NoError(t, err)

	_, err = NewTabular([][]float64{{0.5, 0.5 + 1e-4}}, 0)
	assert.Error(t, err)
}

func TestUnknownStatePropagates(t *testing.T) {
	p, err := NewUniform(2, 2, 0)
	require.NoError(t, err)

	_, err = p.SelectAction(stepIn(2))
	assert.True(t, errors.Is(err, ErrUnknownState))

	_, err = p.Probabilities(-1)
	assert.True(t, errors.Is(err, ErrUnknownState))

	d, err := NewDeterministic([]int{0}, 1)
	require.NoError(t, err)
	_, err = d.SelectAction(stepIn(1))
	assert.True(t, errors.Is(err, ErrUnknownState))
}

func TestProbabilitiesAreCopies(t *testing.T) {
	p, err := NewTabular([][]float64{{0.5, 0.5}}, 0)
	require.NoError(t, err)

	probs, err := p.Probabilities(0)
	require.NoError(t, err)
	probs[0] = 1

	again, err := p.Probabilities(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, again)
}

func TestDeterministic(t *testing.T) {
	d, err := NewDeterministic([]int{1, 0, 2}, 3)
	require.NoError(t, err)

	a, err := d.SelectAction(stepIn(2))
	require.NoError(t, err)
	assert.Equal(t, 2, a)

	probs, err := d.Probabilities(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, probs)

	_, err = NewDeterministic([]int{3}, 3)
	assert.Error(t, err)
}

func TestConfigCreate(t *testing.T) {
	c := Config{Name: "right", Type: DeterministicPolicy, Actions: []int{1, 1}}
	p, err := c.Create(2, 2, 0)
	require.NoError(t, err)
	assert.IsType(t, &Deterministic{}, p)

	c = Config{Name: "uniform", Type: UniformPolicy}
	p, err = c.Create(4, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, p.NumStates())

	c = Config{Name: "tab", Type: TabularPolicy,
		Probabilities: [][]float64{{1, 0}}}
	_, err = c.Create(2, 2, 0)
	assert.Error(t, err, "state count mismatch should fail")

	assert.Error(t, Config{Type: UniformPolicy}.Validate())
	assert.Error(t, Config{Name: "x", Type: "Softmax"}.Validate())
	assert.Error(t, Config{Name: "x", Type: TabularPolicy}.Validate())
}
