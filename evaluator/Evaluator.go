// Package evaluator defines the interface of model-free prediction
// algorithms, which estimate the state-value function of a fixed
// policy from sampled episodes only.
//
// Each Evaluator owns its value table exclusively. The table is reset
// to zero at the start of every call to Evaluate and updated in place
// while episodes are run, so concurrent calls to Evaluate on the same
// Evaluator are unsafe. Separate Evaluators are independent.
package evaluator

import (
	"fmt"

	env "github.com/samuelfneumann/gopredict/environment"
	"github.com/samuelfneumann/gopredict/experiment/tracker"
	"github.com/samuelfneumann/gopredict/policy"
	ts "github.com/samuelfneumann/gopredict/timestep"
	"gonum.org/v1/gonum/mat"
)

// Evaluator estimates the state-value function of a policy
type Evaluator interface {
	// Evaluate runs episodes episodes of the policy in the Evaluator's
	// environment and returns the estimated value of each state. The
	// returned vector has one entry per environment state and is not
	// modified by later calls to Evaluate.
	//
	// Any error from the environment or policy ends evaluation and is
	// returned; no partial estimate is returned.
	Evaluate(p policy.Policy, episodes int) (*mat.VecDense, error)
}

// Tracked implements functionality for registering Trackers with an
// Evaluator. Evaluators which embed Tracked send every TimeStep they
// see to each registered Tracker.
type Tracked struct {
	trackers []tracker.Tracker
}

// Register registers a Tracker so that it receives every TimeStep
// generated during evaluation
func (t *Tracked) Register(tr tracker.Tracker) {
	t.trackers = append(t.trackers, tr)
}

// Track sends the argument TimeStep to all registered Trackers
func (t *Tracked) Track(step ts.TimeStep) {
	for _, tr := range t.trackers {
		tr.Track(step)
	}
}

// Registerer is an Evaluator which can have Trackers registered
type Registerer interface {
	Evaluator
	Register(tracker.Tracker)
}

// CheckEpisodes returns an error if episodes is not a valid number of
// episodes to evaluate for
func CheckEpisodes(episodes int) error {
	if episodes < 0 {
		return fmt.Errorf("cannot evaluate for a negative number of "+
			"episodes (%d)", episodes)
	}
	return nil
}

// CheckState returns an error if state is not a valid index into a
// value table of length numStates
func CheckState(state, numStates int) error {
	if state < 0 || state >= numStates {
		return &env.Error{Op: "index", Err: fmt.Errorf("%w: %d not in "+
			"[0, %d)", env.ErrInvalidState, state, numStates)}
	}
	return nil
}

// CheckEnvironment returns an error if the environment cannot be used
// for tabular prediction
func CheckEnvironment(e env.Environment) error {
	if e == nil {
		return fmt.Errorf("nil environment")
	}
	if e.NumStates() <= 0 {
		return fmt.Errorf("environment has no states")
	}
	if d := e.DiscountFactor(); d < 0 || d > 1 {
		return fmt.Errorf("discount factor %v not in [0, 1]", d)
	}
	return nil
}
