// Package mdp implements environments described by tabular Markov
// Decision Processes.
//
// An MDP stores its full transition and reward tables so that it can
// both be sampled from, like any other environment, and solved exactly
// for the value of a known policy. The exact values are only ever used
// to measure the accuracy of sample-based estimates.
package mdp

import (
	"fmt"

	"golang.org/x/exp/rand"

	env "github.com/samuelfneumann/gopredict/environment"
	ts "github.com/samuelfneumann/gopredict/timestep"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/distuv"
)

// probTolerance is the tolerance used when checking that transition
// probabilities sum to 1
const probTolerance = 1e-6

// MDP is an environment defined by tabular dynamics.
//
// transitions[s][a][s'] is the probability of transitioning to s' when
// taking action a in state s, and rewards[s][a][s'] is the reward for
// that transition. An episode ends when a terminal state is entered.
type MDP struct {
	env.Starter
	ender env.Ender

	transitions [][][]float64
	rewards     [][][]float64
	terminal    []bool
	dists       [][]distuv.Categorical

	discount    float64
	seed        uint64
	currentStep ts.TimeStep
	started     bool
}

// StarterSeed returns the seed for the Starter of an MDP whose
// transitions are sampled with seed. Sources seeded alike produce the
// same draws, which would tie the start state to the first transition.
func StarterSeed(seed uint64) uint64 {
	return seed + 1
}

// New returns a new MDP. If rewards is nil, all rewards are 0. The
// starter determines the distribution of starting states and must never
// start an episode in a terminal state.
func New(transitions, rewards [][][]float64, terminal []int,
	starter env.Starter, discount float64, seed uint64) (*MDP, error) {
	if discount < 0 || discount > 1 {
		return nil, fmt.Errorf("new: discount %v not in [0, 1]", discount)
	}
	if starter == nil {
		return nil, fmt.Errorf("new: nil starter")
	}

	numStates := len(transitions)
	if numStates == 0 {
		return nil, fmt.Errorf("new: no states")
	}
	numActions := len(transitions[0])
	if numActions == 0 {
		return nil, fmt.Errorf("new: no actions")
	}

	if rewards == nil {
		rewards = zeroRewards(numStates, numActions)
	} else if len(rewards) != numStates {
		return nil, fmt.Errorf("new: rewards defined for %d states, "+
			"transitions for %d", len(rewards), numStates)
	}

	source := rand.NewSource(seed)
	t := make([][][]float64, numStates)
	r := make([][][]float64, numStates)
	dists := make([][]distuv.Categorical, numStates)
	for s := range transitions {
		if len(transitions[s]) != numActions {
			return nil, fmt.Errorf("new: state %d has %d actions, "+
				"expected %d", s, len(transitions[s]), numActions)
		}
		if len(rewards[s]) != numActions {
			return nil, fmt.Errorf("new: rewards for state %d have %d "+
				"actions, expected %d", s, len(rewards[s]), numActions)
		}

		t[s] = make([][]float64, numActions)
		r[s] = make([][]float64, numActions)
		dists[s] = make([]distuv.Categorical, numActions)
		for a := range transitions[s] {
			if err := validateRow(transitions[s][a], numStates); err != nil {
				return nil, fmt.Errorf("new: transitions from state %d "+
					"with action %d: %v", s, a, err)
			}
			if len(rewards[s][a]) != numStates {
				return nil, fmt.Errorf("new: rewards from state %d with "+
					"action %d defined for %d next states, expected %d",
					s, a, len(rewards[s][a]), numStates)
			}

			t[s][a] = append([]float64(nil), transitions[s][a]...)
			r[s][a] = append([]float64(nil), rewards[s][a]...)
			dists[s][a] = distuv.NewCategorical(t[s][a], source)
		}
	}

	term := make([]bool, numStates)
	for _, s := range terminal {
		if s < 0 || s >= numStates {
			return nil, fmt.Errorf("new: terminal state %d not in [0, %d)",
				s, numStates)
		}
		term[s] = true
	}

	return &MDP{
		Starter:     starter,
		transitions: t,
		rewards:     r,
		terminal:    term,
		dists:       dists,
		discount:    discount,
		seed:        seed,
	}, nil
}

// validateRow returns an error if row is not a probability distribution
// over numStates next states
func validateRow(row []float64, numStates int) error {
	if len(row) != numStates {
		return fmt.Errorf("expected %d next state probabilities, got %d",
			numStates, len(row))
	}
	for i, p := range row {
		if p < 0 {
			return fmt.Errorf("next state %d has negative probability %v",
				i, p)
		}
	}
	if sum := floats.Sum(row); !scalar.EqualWithinAbs(sum, 1.0,
		probTolerance) {
		return fmt.Errorf("next state probabilities sum to %v", sum)
	}
	return nil
}

func zeroRewards(numStates, numActions int) [][][]float64 {
	r := make([][][]float64, numStates)
	for s := range r {
		r[s] = make([][]float64, numActions)
		for a := range r[s] {
			r[s][a] = make([]float64, numStates)
		}
	}
	return r
}

// SetEnder sets an Ender which can end episodes before a terminal state
// is reached, for example env.StepLimit. A nil Ender removes any
// previously set Ender.
func (m *MDP) SetEnder(e env.Ender) {
	m.ender = e
}

// Reset starts a new episode in a state sampled from the MDP's Starter
func (m *MDP) Reset() (ts.TimeStep, error) {
	state := m.Start()
	if state < 0 || state >= len(m.transitions) {
		return ts.TimeStep{}, &env.Error{Op: "reset", Err: fmt.Errorf(
			"%w: start state %d not in [0, %d)", env.ErrInvalidState,
			state, len(m.transitions))}
	}
	if m.terminal[state] {
		return ts.TimeStep{}, &env.Error{Op: "reset", Err: fmt.Errorf(
			"%w: start state %d is terminal", env.ErrInvalidState, state)}
	}

	m.currentStep = ts.New(ts.First, 0, m.discount, state, 0)
	m.started = true
	return m.currentStep, nil
}

// Step takes one step in the MDP, sampling the next state from the
// transition distribution of the current state and action
func (m *MDP) Step(action int) (ts.TimeStep, bool, error) {
	if !m.started || m.currentStep.Last() {
		return ts.TimeStep{}, true, &env.Error{Op: "step",
			Err: env.ErrEpisodeOver}
	}
	if action < 0 || action >= m.NumActions() {
		return ts.TimeStep{}, false, &env.Error{Op: "step", Err: fmt.Errorf(
			"%w: %d not in [0, %d)", env.ErrInvalidAction, action,
			m.NumActions())}
	}

	state := m.currentStep.State
	next := int(m.dists[state][action].Rand())
	reward := m.rewards[state][action][next]

	step := ts.New(ts.Mid, reward, m.discount, next, m.currentStep.Number+1)
	if m.terminal[next] {
		step.StepType = ts.Last
		step.SetEnd(ts.TerminalStateReached)
	} else if m.ender != nil {
		m.ender.End(&step)
	}

	m.currentStep = step
	return step, step.Last(), nil
}

// CurrentTimeStep returns the last TimeStep generated by the MDP
func (m *MDP) CurrentTimeStep() ts.TimeStep {
	return m.currentStep
}

// DiscountFactor returns the discount factor of the MDP
func (m *MDP) DiscountFactor() float64 {
	return m.discount
}

// NumStates returns the number of states in the MDP, including
// terminal states
func (m *MDP) NumStates() int {
	return len(m.transitions)
}

// NumActions returns the number of actions in each state
func (m *MDP) NumActions() int {
	return len(m.transitions[0])
}

// Terminal returns whether or not state is a terminal state
func (m *MDP) Terminal(state int) bool {
	return m.terminal[state]
}

// Seed returns the seed used to sample transitions
func (m *MDP) Seed() uint64 {
	return m.seed
}

func (m *MDP) String() string {
	return fmt.Sprintf("MDP | States: %d  |  Actions: %d  |  Discount: %.2f",
		m.NumStates(), m.NumActions(), m.discount)
}
