package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gopredict/timestep"
	"gonum.org/v1/gonum/stat/distuv"
)

// Tabular implements a stochastic policy which stores a separate
// categorical distribution over actions for each state
type Tabular struct {
	probs [][]float64
	dists []distuv.Categorical
	seed  uint64
}

// NewTabular returns a new Tabular policy where probs[s][a] is the
// probability of taking action a in state s. All distributions share a
// single source of randomness seeded with seed.
func NewTabular(probs [][]float64, seed uint64) (*Tabular, error) {
	if len(probs) == 0 {
		return nil, fmt.Errorf("newTabular: no states")
	}

	numActions := len(probs[0])
	if numActions == 0 {
		return nil, fmt.Errorf("newTabular: no actions")
	}

	source := rand.NewSource(seed)
	p := make([][]float64, len(probs))
	dists := make([]distuv.Categorical, len(probs))
	for s := range probs {
		if err := validateDistribution(probs[s], numActions); err != nil {
			return nil, fmt.Errorf("newTabular: state %d: %v", s, err)
		}

		p[s] = make([]float64, numActions)
		copy(p[s], probs[s])
		dists[s] = distuv.NewCategorical(p[s], source)
	}

	return &Tabular{probs: p, dists: dists, seed: seed}, nil
}

// NewUniform returns a Tabular policy which selects each action with
// equal probability in every state
func NewUniform(numStates, numActions int, seed uint64) (*Tabular, error) {
	if numStates <= 0 || numActions <= 0 {
		return nil, fmt.Errorf("newUniform: need at least one state and "+
			"action, got %d states and %d actions", numStates, numActions)
	}

	probs := make([][]float64, numStates)
	for s := range probs {
		probs[s] = make([]float64, numActions)
		for a := range probs[s] {
			probs[s][a] = 1.0 / float64(numActions)
		}
	}
	return NewTabular(probs, seed)
}

// SelectAction samples an action from the policy in the state of the
// argument TimeStep
func (t *Tabular) SelectAction(step timestep.TimeStep) (int, error) {
	if step.State < 0 || step.State >= len(t.dists) {
		return 0, unknownState("selectAction", step.State, len(t.dists))
	}
	return int(t.dists[step.State].Rand()), nil
}

// Probabilities returns a copy of the action probabilities in state
func (t *Tabular) Probabilities(state int) ([]float64, error) {
	if state < 0 || state >= len(t.probs) {
		return nil, unknownState("probabilities", state, len(t.probs))
	}

	probs := make([]float64, len(t.probs[state]))
	copy(probs, t.probs[state])
	return probs, nil
}

// NumStates returns the number of states the policy is defined over
func (t *Tabular) NumStates() int {
	return len(t.probs)
}

// NumActions returns the number of actions the policy selects between
func (t *Tabular) NumActions() int {
	return len(t.probs[0])
}

// Seed returns the seed of the policy's source of randomness
func (t *Tabular) Seed() uint64 {
	return t.seed
}
