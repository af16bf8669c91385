package policy

import (
	"fmt"

	"github.com/samuelfneumann/gopredict/timestep"
)

// Deterministic implements a policy which always selects the same
// action in a given state
type Deterministic struct {
	actions    []int
	numActions int
}

// NewDeterministic returns a new Deterministic policy that selects
// action actions[s] in state s
func NewDeterministic(actions []int, numActions int) (*Deterministic,
	error) {
	if len(actions) == 0 {
		return nil, fmt.Errorf("newDeterministic: no states")
	}
	for s, a := range actions {
		if a < 0 || a >= numActions {
			return nil, fmt.Errorf("newDeterministic: action %d in state "+
				"%d not in [0, %d)", a, s, numActions)
		}
	}

	acts := make([]int, len(actions))
	copy(acts, actions)
	return &Deterministic{acts, numActions}, nil
}

// SelectAction returns the action of the policy in the state of the
// argument TimeStep
func (d *Deterministic) SelectAction(t timestep.TimeStep) (int, error) {
	if t.State < 0 || t.State >= len(d.actions) {
		return 0, unknownState("selectAction", t.State, len(d.actions))
	}
	return d.actions[t.State], nil
}

// Probabilities returns the one-hot action distribution in state
func (d *Deterministic) Probabilities(state int) ([]float64, error) {
	if state < 0 || state >= len(d.actions) {
		return nil, unknownState("probabilities", state, len(d.actions))
	}

	probs := make([]float64, d.numActions)
	probs[d.actions[state]] = 1.0
	return probs, nil
}

// NumStates returns the number of states the policy is defined over
func (d *Deterministic) NumStates() int {
	return len(d.actions)
}

// NumActions returns the number of actions the policy selects between
func (d *Deterministic) NumActions() int {
	return d.numActions
}
