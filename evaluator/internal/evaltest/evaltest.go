// Package evaltest provides environments and policies for testing
// evaluators
package evaltest

import (
	"errors"

	env "github.com/samuelfneumann/gopredict/environment"
	ts "github.com/samuelfneumann/gopredict/timestep"
)

// ErrPolicy is returned by FailingPolicy
var ErrPolicy = errors.New("policy failure")

// Scripted is an environment which replays the same episode every time
// it is reset, regardless of the actions taken. Episodes visit
// States[0], States[1], ..., States[len(States)-1], where the last
// state ends the episode, and Rewards[i] is the reward for the
// transition into States[i+1].
type Scripted struct {
	States   []int
	Rewards  []float64
	Discount float64
	N        int // number of states

	t int
}

// Reset implements the environment.Environment interface
func (s *Scripted) Reset() (ts.TimeStep, error) {
	s.t = 0
	return ts.New(ts.First, 0, s.Discount, s.States[0], 0), nil
}

// Step implements the environment.Environment interface
func (s *Scripted) Step(int) (ts.TimeStep, bool, error) {
	if s.t >= len(s.States)-1 {
		return ts.TimeStep{}, true, &env.Error{Op: "step",
			Err: env.ErrEpisodeOver}
	}

	s.t++
	stepType := ts.Mid
	if s.t == len(s.States)-1 {
		stepType = ts.Last
	}
	step := ts.New(stepType, s.Rewards[s.t-1], s.Discount, s.States[s.t], s.t)
	return step, step.Last(), nil
}

// DiscountFactor implements the environment.Environment interface
func (s *Scripted) DiscountFactor() float64 { return s.Discount }

// NumStates implements the environment.Environment interface
func (s *Scripted) NumStates() int { return s.N }

// NumActions implements the environment.Environment interface
func (s *Scripted) NumActions() int { return 1 }

// Failing is an environment whose Reset or Step fails with Err
type Failing struct {
	Err       error
	FailReset bool
}

// Reset implements the environment.Environment interface
func (f *Failing) Reset() (ts.TimeStep, error) {
	if f.FailReset {
		return ts.TimeStep{}, f.Err
	}
	return ts.New(ts.First, 0, 1, 0, 0), nil
}

// Step implements the environment.Environment interface
func (f *Failing) Step(int) (ts.TimeStep, bool, error) {
	return ts.TimeStep{}, false, f.Err
}

// DiscountFactor implements the environment.Environment interface
func (f *Failing) DiscountFactor() float64 { return 1 }

// NumStates implements the environment.Environment interface
func (f *Failing) NumStates() int { return 2 }

// NumActions implements the environment.Environment interface
func (f *Failing) NumActions() int { return 1 }

// Fixed is a policy which always selects Action
type Fixed struct {
	Action int
}

// SelectAction implements the policy.Policy interface
func (f Fixed) SelectAction(ts.TimeStep) (int, error) { return f.Action, nil }

// FailingPolicy is a policy which always fails with ErrPolicy
type FailingPolicy struct{}

// SelectAction implements the policy.Policy interface
func (FailingPolicy) SelectAction(ts.TimeStep) (int, error) {
	return 0, ErrPolicy
}
