package mdp

import (
	"fmt"

	env "github.com/samuelfneumann/gopredict/environment"
)

// Actions in a RandomWalk
const (
	Left int = iota
	Right
)

// NewChain returns a deterministic chain MDP with n states
// 0 -> 1 -> ... -> n-1, where state n-1 is terminal. There is a single
// action, every episode starts in state 0, and the only non-zero reward
// is given on the transition into the terminal state.
func NewChain(n int, reward, discount float64, seed uint64) (*MDP, error) {
	if n < 2 {
		return nil, fmt.Errorf("newChain: need at least 2 states, got %d", n)
	}

	transitions := make([][][]float64, n)
	rewards := zeroRewards(n, 1)
	for s := range transitions {
		next := s + 1
		if s == n-1 {
			next = s
		}
		transitions[s] = [][]float64{oneHot(n, next)}
	}
	rewards[n-2][0][n-1] = reward

	return New(transitions, rewards, []int{n - 1}, env.NewSingleStarter(0),
		discount, seed)
}

// NewRandomWalk returns the random walk MDP with n non-terminal states
// laid out in a line between two terminal states, so that the MDP has
// n+2 states in total with states 0 and n+1 terminal. Action Left moves
// one state to the left and action Right one state to the right.
// Episodes start in the middle state, and a reward of reward is given
// when entering the right terminal state.
func NewRandomWalk(n int, reward, discount float64,
	seed uint64) (*MDP, error) {
	if n < 1 {
		return nil, fmt.Errorf("newRandomWalk: need at least 1 "+
			"non-terminal state, got %d", n)
	}

	states := n + 2
	transitions := make([][][]float64, states)
	rewards := zeroRewards(states, 2)
	for s := range transitions {
		if s == 0 || s == states-1 {
			transitions[s] = [][]float64{oneHot(states, s),
				oneHot(states, s)}
			continue
		}
		transitions[s] = [][]float64{
			Left:  oneHot(states, s-1),
			Right: oneHot(states, s+1),
		}
	}
	rewards[states-2][Right][states-1] = reward

	start := env.NewSingleStarter((n + 1) / 2)
	if n%2 == 0 {
		// No single middle state, start in either of the two middle
		// states with equal probability
		s, err := env.NewUniformStarter([]int{n / 2, n/2 + 1}, states,
			StarterSeed(seed))
		if err != nil {
			return nil, fmt.Errorf("newRandomWalk: %v", err)
		}
		return New(transitions, rewards, []int{0, states - 1}, s,
			discount, seed)
	}

	return New(transitions, rewards, []int{0, states - 1}, start, discount,
		seed)
}

func oneHot(n, i int) []float64 {
	v := make([]float64, n)
	v[i] = 1.0
	return v
}
