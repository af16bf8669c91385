package gridworld

import (
	"testing"

	env "github.com/samuelfneumann/gopredict/environment"
	"github.com/samuelfneumann/gopredict/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovement(t *testing.T) {
	c := Config{Rows: 2, Cols: 3, Goals: []Position{{2, 1}}, StepReward: -1,
		GoalReward: 10, Discount: 1}
	g, err := New(c, env.NewSingleStarter(Index(Position{0, 0}, 3)), 0)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NumStates())
	assert.Equal(t, Actions, g.NumActions())

	step, err := g.Reset()
	require.NoError(t, err)
	assert.Equal(t, 0, step.State)

	// Walls leave the agent in place
	step, done, err := g.Step(Left)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 0, step.State)
	assert.Equal(t, -1.0, step.Reward)

	step, _, err = g.Step(Up)
	require.NoError(t, err)
	assert.Equal(t, Index(Position{0, 1}, 3), step.State)

	step, _, err = g.Step(Right)
	require.NoError(t, err)
	assert.Equal(t, Index(Position{1, 1}, 3), step.State)

	step, done, err = g.Step(Right)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 10.0, step.Reward)
}

func TestDefaultStarterAvoidsGoals(t *testing.T) {
	c := Config{Rows: 3, Cols: 3, Goals: []Position{{0, 0}, {2, 2}},
		StepReward: -1, Discount: 1}
	g, err := New(c, nil, 4)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		step, err := g.Reset()
		require.NoError(t, err)
		assert.False(t, g.Terminal(step.State))
	}
}

func TestShortestPathValues(t *testing.T) {
	c := Config{Rows: 1, Cols: 4, Goals: []Position{{3, 0}},
		StepReward: -1, GoalReward: -1, Discount: 1}
	g, err := New(c, nil, 0)
	require.NoError(t, err)

	right := []int{Right, Right, Right, Right}
	p, err := policy.NewDeterministic(right, Actions)
	require.NoError(t, err)

	v, err := g.Value(p)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-3, -2, -1, 0}, v.RawVector().Data,
		1e-9)
}

func TestInvalidConfig(t *testing.T) {
	_, err := New(Config{Rows: 0, Cols: 2, Goals: []Position{{0, 0}}}, nil, 0)
	assert.Error(t, err)

	_, err = New(Config{Rows: 2, Cols: 2}, nil, 0)
	assert.Error(t, err)

	_, err = New(Config{Rows: 2, Cols: 2, Goals: []Position{{2, 0}}}, nil, 0)
	assert.Error(t, err)

	_, err = New(Config{Rows: 1, Cols: 1, Goals: []Position{{0, 0}}}, nil, 0)
	assert.Error(t, err)
}
