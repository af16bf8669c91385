// Package montecarlo implements Monte Carlo prediction.
//
// Each episode is run to completion, after which the discounted return
// following the first visit (or every visit) of each state is computed
// and the state's value is moved towards it. Values are never
// bootstrapped from other estimates, and states that are never visited
// keep a value of 0.
package montecarlo

import (
	"fmt"

	env "github.com/samuelfneumann/gopredict/environment"
	"github.com/samuelfneumann/gopredict/evaluator"
	"github.com/samuelfneumann/gopredict/policy"
	ts "github.com/samuelfneumann/gopredict/timestep"
	"gonum.org/v1/gonum/mat"
)

// MonteCarlo implements first-visit and every-visit Monte Carlo
// prediction
type MonteCarlo struct {
	evaluator.Tracked
	env          env.Environment
	learningRate float64
	everyVisit   bool

	valueFn *mat.VecDense
	visits  []int

	// Episode buffer, reused between episodes
	episode    []ts.Transition
	firstVisit []int
}

// New creates a new Monte Carlo evaluator for the environment e
func New(e env.Environment, c Config) (*MonteCarlo, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}
	if err := evaluator.CheckEnvironment(e); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	numStates := e.NumStates()
	return &MonteCarlo{
		env:          e,
		learningRate: c.LearningRate,
		everyVisit:   c.EveryVisit,
		valueFn:      mat.NewVecDense(numStates, nil),
		visits:       make([]int, numStates),
		firstVisit:   make([]int, numStates),
	}, nil
}

// Evaluate estimates the state-value function of the policy p from
// episodes episodes
func (m *MonteCarlo) Evaluate(p policy.Policy, episodes int) (*mat.VecDense,
	error) {
	if err := evaluator.CheckEpisodes(episodes); err != nil {
		return nil, fmt.Errorf("evaluate: %v", err)
	}

	m.valueFn.Zero()
	for i := range m.visits {
		m.visits[i] = 0
	}

	for i := 0; i < episodes; i++ {
		if err := m.rollout(p); err != nil {
			return nil, fmt.Errorf("evaluate: episode %d: %w", i, err)
		}
		m.update()
	}

	return mat.VecDenseCopyOf(m.valueFn), nil
}

// rollout runs a full episode, storing each transition
func (m *MonteCarlo) rollout(p policy.Policy) error {
	m.episode = m.episode[:0]
	for i := range m.firstVisit {
		m.firstVisit[i] = -1
	}

	step, err := m.env.Reset()
	if err != nil {
		return err
	}
	m.Track(step)

	numStates := m.valueFn.Len()
	for {
		if err := evaluator.CheckState(step.State, numStates); err != nil {
			return err
		}
		if m.firstVisit[step.State] < 0 {
			m.firstVisit[step.State] = len(m.episode)
		}

		action, err := p.SelectAction(step)
		if err != nil {
			return err
		}

		nextStep, done, err := m.env.Step(action)
		if err != nil {
			return err
		}
		m.Track(nextStep)

		m.episode = append(m.episode, ts.NewTransition(step, action, nextStep))
		step = nextStep

		if done {
			return nil
		}
	}
}

// update updates the value function using the returns of the last
// episode
func (m *MonteCarlo) update() {
	discount := m.env.DiscountFactor()

	var g float64
	for t := len(m.episode) - 1; t >= 0; t-- {
		g = m.episode[t].Reward + discount*g

		state := m.episode[t].State
		if !m.everyVisit && m.firstVisit[state] != t {
			continue
		}

		m.visits[state]++
		stepSize := m.learningRate
		if stepSize == 0 {
			stepSize = 1.0 / float64(m.visits[state])
		}

		v := m.valueFn.AtVec(state)
		m.valueFn.SetVec(state, v+stepSize*(g-v))
	}
}

// Visits returns the number of returns that have been averaged into the
// value of each state during the last call to Evaluate
func (m *MonteCarlo) Visits() []int {
	visits := make([]int, len(m.visits))
	copy(visits, m.visits)
	return visits
}
