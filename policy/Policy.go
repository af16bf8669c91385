// Package policy implements fixed policies over discrete state and
// action spaces.
//
// Policies in this package are never updated: they are the target of
// prediction, not of control. Each policy that samples actions owns
// its own source of randomness, seeded explicitly on construction, so
// that evaluation runs are reproducible.
package policy

import (
	"errors"
	"fmt"

	"github.com/samuelfneumann/gopredict/timestep"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// probTolerance is the tolerance used when checking that action
// probabilities sum to 1
const probTolerance = 1e-6

// ErrUnknownState is returned when a policy is queried in a state it
// has no action distribution for
var ErrUnknownState = errors.New("unknown state")

// Policy selects actions in states
type Policy interface {
	// SelectAction samples an action from π(·|s), where s is the state
	// of the argument TimeStep
	SelectAction(t timestep.TimeStep) (int, error)
}

// Distribution is a Policy whose action probabilities are known
type Distribution interface {
	Policy

	// Probabilities returns π(·|state)
	Probabilities(state int) ([]float64, error)

	NumStates() int
	NumActions() int
}

// validateDistribution returns an error if probs is not a valid
// probability distribution over numActions actions
func validateDistribution(probs []float64, numActions int) error {
	if len(probs) != numActions {
		return fmt.Errorf("expected %d action probabilities, got %d",
			numActions, len(probs))
	}
	for a, p := range probs {
		if p < 0 {
			return fmt.Errorf("action %d has negative probability %v", a, p)
		}
	}
	if sum := floats.Sum(probs); !scalar.EqualWithinAbs(sum, 1.0,
		probTolerance) {
		return fmt.Errorf("action probabilities sum to %v", sum)
	}
	return nil
}

func unknownState(op string, state, numStates int) error {
	return fmt.Errorf("%v: %w: %d not in [0, %d)", op, ErrUnknownState,
		state, numStates)
}
