package evaluator_test

import (
	"encoding/json"
	"testing"

	"github.com/samuelfneumann/gopredict/environment/mdp"
	"github.com/samuelfneumann/gopredict/evaluator"
	"github.com/samuelfneumann/gopredict/evaluator/montecarlo"
	"github.com/samuelfneumann/gopredict/evaluator/td"
	"github.com/samuelfneumann/gopredict/evaluator/tdlambda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const configs = `
- name: mc
  type: MonteCarlo
  config:
    every_visit: true
- type: TD
  config:
    learning_rate: 0.1
- name: td-lambda
  type: TDLambda
  config:
    learning_rate: 0.05
    lambda: 0.9
    trace: Replacing
`

func TestTypedConfigYAML(t *testing.T) {
	var typed []evaluator.TypedConfig
	require.NoError(t, yaml.Unmarshal([]byte(configs), &typed))
	require.Len(t, typed, 3)

	assert.Equal(t, "mc", typed[0].String())
	assert.Equal(t, montecarlo.Config{EveryVisit: true}, typed[0].Config)

	assert.Equal(t, "TD", typed[1].String())
	assert.Equal(t, td.Config{LearningRate: 0.1}, typed[1].Config)

	assert.Equal(t, tdlambda.Config{LearningRate: 0.05, Lambda: 0.9,
		Trace: tdlambda.Replacing}, typed[2].Config)

	for _, c := range typed {
		assert.NoError(t, c.Validate())
	}
}

func TestTypedConfigJSON(t *testing.T) {
	in := []evaluator.TypedConfig{
		evaluator.NewTypedConfig("td", td.Config{LearningRate: 0.2}),
		evaluator.NewTypedConfig("", tdlambda.Config{LearningRate: 0.1,
			Lambda: 0.5}),
		evaluator.NewTypedConfig("mc", montecarlo.Config{}),
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out []evaluator.TypedConfig
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestTypedConfigErrors(t *testing.T) {
	var typed evaluator.TypedConfig
	assert.Error(t, yaml.Unmarshal([]byte("type: Sarsa\n"), &typed))
	assert.Error(t, json.Unmarshal([]byte(`{"type": "Sarsa"}`), &typed))

	// Missing config decodes to the zero Config, which may be invalid
	require.NoError(t, yaml.Unmarshal([]byte("type: TD\n"), &typed))
	assert.Error(t, typed.Validate())

	mismatched := evaluator.TypedConfig{Type: evaluator.TD,
		Config: montecarlo.Config{}}
	assert.Error(t, mismatched.Validate())
	assert.Error(t, evaluator.TypedConfig{Type: evaluator.TD}.Validate())
}

func TestCreateEvaluator(t *testing.T) {
	chain, err := mdp.NewChain(4, 1, 1, 1)
	require.NoError(t, err)

	for _, c := range []evaluator.Config{
		montecarlo.Config{},
		td.Config{LearningRate: 0.1},
		tdlambda.Config{LearningRate: 0.1, Lambda: 0.5},
	} {
		e, err := c.CreateEvaluator(chain)
		require.NoError(t, err, c.Type())
		_, ok := e.(evaluator.Registerer)
		assert.True(t, ok, c.Type())
	}

	_, err = td.Config{}.CreateEvaluator(chain)
	assert.Error(t, err)
}

func TestCheckState(t *testing.T) {
	assert.NoError(t, evaluator.CheckState(0, 1))
	assert.Error(t, evaluator.CheckState(1, 1))
	assert.Error(t, evaluator.CheckState(-1, 1))
}
