package environment

import (
	"fmt"
	"testing"

	"github.com/samuelfneumann/gopredict/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoricalStarterOnlySamplesSupport(t *testing.T) {
	s, err := NewCategoricalStarter([]float64{0, 2, 0, 1}, 42)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())

	counts := make([]int, 4)
	for i := 0; i < 3000; i++ {
		counts[s.Start()]++
	}

	assert.Zero(t, counts[0])
	assert.Zero(t, counts[2])
	assert.InDelta(t, 2.0/3.0, float64(counts[1])/3000, 0.05)
}

func TestCategoricalStarterSeeded(t *testing.T) {
	a, err := NewCategoricalStarter([]float64{1, 1, 1, 1, 1}, 7)
	require.NoError(t, err)
	b, err := NewCategoricalStarter([]float64{1, 1, 1, 1, 1}, 7)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Start(), b.Start())
	}
}

func TestCategoricalStarterInvalid(t *testing.T) {
	_, err := NewCategoricalStarter(nil, 0)
	assert.Error(t, err)

	_, err = NewCategoricalStarter([]float64{0, 0}, 0)
	assert.Error(t, err)

	_, err = NewCategoricalStarter([]float64{1, -1}, 0)
	assert.Error(t, err)

	_, err = NewUniformStarter([]int{5}, 3, 0)
	assert.Error(t, err)
}

func TestUniformStarter(t *testing.T) {
	s, err := NewUniformStarter([]int{1, 3}, 5, 1)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		start := s.Start()
		assert.Contains(t, []int{1, 3}, start)
	}
}

func TestSingleStarter(t *testing.T) {
	assert.Equal(t, 4, NewSingleStarter(4).Start())
}

func TestStepLimit(t *testing.T) {
	limit := NewStepLimit(3)
	assert.Equal(t, 3, limit.Limit())

	step := timestep.New(timestep.Mid, 0, 1, 0, 2)
	assert.False(t, limit.End(&step))
	assert.Equal(t, timestep.Mid, step.StepType)

	step.Number = 3
	assert.True(t, limit.End(&step))
	assert.True(t, step.Last())
	assert.Equal(t, timestep.Timeout, step.EndType())
}

func TestErrors(t *testing.T) {
	err := fmt.Errorf("evaluate: %w", &Error{Op: "step", Err: ErrInvalidAction})

	assert.True(t, IsInvalidAction(err))
	assert.False(t, IsInvalidState(err))
	assert.False(t, IsEpisodeOver(err))
	assert.Equal(t, "evaluate: step: invalid action", err.Error())

	var envErr *Error
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, "step", envErr.Op)
}
