// Package tdlambda implements the TD(λ) prediction algorithm with
// eligibility traces.
//
// Each state carries an eligibility trace which is bumped when the
// state is visited and decays by γλ after every step. The TD error of
// each step updates every state in proportion to its trace:
//
//	δ = r + γ V(s') - V(s)
//	E(s) = E(s) + 1
//	V = V + α δ E
//	E = γ λ E
//
// The decay is applied once per step, after all values have been
// updated with the undecayed traces. With λ = 0 this is TD(0), and with
// λ = 1 the updates of an episode sum to the Monte Carlo update.
package tdlambda

import (
	"fmt"

	env "github.com/samuelfneumann/gopredict/environment"
	"github.com/samuelfneumann/gopredict/evaluator"
	"github.com/samuelfneumann/gopredict/policy"
	"gonum.org/v1/gonum/mat"
)

// TDLambda implements the TD(λ) prediction algorithm
type TDLambda struct {
	evaluator.Tracked
	env          env.Environment
	learningRate float64
	lambda       float64
	replacing    bool

	valueFn *mat.VecDense
	traces  *mat.VecDense
}

// New creates a new TD(λ) evaluator for the environment e
func New(e env.Environment, c Config) (*TDLambda, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}
	if err := evaluator.CheckEnvironment(e); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	numStates := e.NumStates()
	return &TDLambda{
		env:          e,
		learningRate: c.LearningRate,
		lambda:       c.Lambda,
		replacing:    c.Trace == Replacing,
		valueFn:      mat.NewVecDense(numStates, nil),
		traces:       mat.NewVecDense(numStates, nil),
	}, nil
}

// Evaluate estimates the state-value function of the policy p from
// episodes episodes
func (t *TDLambda) Evaluate(p policy.Policy, episodes int) (*mat.VecDense,
	error) {
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

// runEpisode runs a single episode, updating the value function of all
// states after each step
func (t *TDLambda) runEpisode(p policy.Policy) error {
	step, err := t.env.Reset()
	if err != nil {
		return err
	}
	t.Track(step)
	t.traces.Zero()

	discount := t.env.DiscountFactor()
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

		state := step.State
		target := nextStep.Reward
		if !done {
			if err := evaluator.CheckState(nextStep.State,
				numStates); err != nil {
				return err
			}
			target += discount * t.valueFn.AtVec(nextStep.State)
		}
		tdError := target - t.valueFn.AtVec(state)

		if t.replacing {
			t.traces.SetVec(state, 1.0)
		} else {
			t.traces.SetVec(state, t.traces.AtVec(state)+1.0)
		}

		t.valueFn.AddScaledVec(t.valueFn, t.learningRate*tdError, t.traces)
		t.traces.ScaleVec(discount*t.lambda, t.traces)

		step = nextStep

		if done {
			return nil
		}
	}
}

// Traces returns a copy of the current eligibility traces
func (t *TDLambda) Traces() *mat.VecDense {
	return mat.VecDenseCopyOf(t.traces)
}

// Lambda returns the trace decay parameter of the evaluator
func (t *TDLambda) Lambda() float64 {
	return t.lambda
}
