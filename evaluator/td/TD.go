// Package td implements the one-step temporal difference prediction
// algorithm, TD(0).
//
// After each environment step, the value of the state the step was
// taken from is moved towards the bootstrapped target
//
//	r + γ V(s')
//
// where the bootstrapped term is dropped when s' ends the episode.
package td

import (
	"fmt"

	env "github.com/samuelfneumann/gopredict/environment"
	"github.com/samuelfneumann/gopredict/evaluator"
	"github.com/samuelfneumann/gopredict/policy"
	ts "github.com/samuelfneumann/gopredict/timestep"
	"gonum.org/v1/gonum/mat"
)

// TD implements the TD(0) prediction algorithm
type TD struct {
	evaluator.Tracked
	env          env.Environment
	learningRate float64
	valueFn      *mat.VecDense
}

// New creates a new TD(0) evaluator for the environment e
func New(e env.Environment, c Config) (*TD, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}
	if err := evaluator.CheckEnvironment(e); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	return &TD{
		env:          e,
		learningRate: c.LearningRate,
		valueFn:      mat.NewVecDense(e.NumStates(), nil),
	}, nil
}

// Evaluate estimates the state-value function of the policy p from
// episodes episodes
func (t *TD) Evaluate(p policy.Policy, episodes int) (*mat.VecDense, error) {
	if err := evaluator.CheckEpisodes(episodes); err != nil {
		return nil, fmt.Errorf("evaluate: %v", err)
	}

	t.valueFn.Zero()
	for i := 0; i < episodes; i++ {
		if err := t.runEpisode(p); err != nil {
			return nil, fmt.Errorf("evaluate: episode %d: %w", i, err)
		}
	}

	return mat.VecDenseCopyOf(t.valueFn), nil
}

// runEpisode runs a single episode, updating the value function after
// each step
func (t *TD) runEpisode(p policy.Policy) error {
	step, err := t.env.Reset()
	if err != nil {
		return err
	}
	t.Track(step)

	numStates := t.valueFn.Len()
	for {
		if err := evaluator.CheckState(step.State, numStates); err != nil {
			return err
		}

		action, err := p.SelectAction(step)
		if err != nil {
			return err
		}

		nextStep, done, err := t.env.Step(action)
		if err != nil {
			return err
		}
		t.Track(nextStep)

		if !done {
			if err := evaluator.CheckState(nextStep.State,
				numStates); err != nil {
				return err
			}
		}

		tdError := t.TdError(step, nextStep, done)
		state := step.State
		t.valueFn.SetVec(state, t.valueFn.AtVec(state)+t.learningRate*tdError)

		// The TimeStep is a value, so the retained step cannot change
		// when the environment steps again
		step = nextStep

		if done {
			return nil
		}
	}
}

// TdError returns the TD error of the transition from step to nextStep
// under the current value estimates. If done is true, nextStep ends
// the episode and its value is not bootstrapped from.
func (t *TD) TdError(step, nextStep ts.TimeStep, done bool) float64 {
	target := nextStep.Reward
	if !done {
		target += t.env.DiscountFactor() * t.valueFn.AtVec(nextStep.State)
	}
	return target - t.valueFn.AtVec(step.State)
}
