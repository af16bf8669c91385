package mdp

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gopredict/policy"
	"gonum.org/v1/gonum/mat"
)

// Value computes the exact state-value function of a policy in the MDP
// by solving the Bellman equations
//
//	(I - γ P_π) v = r_π
//
// over the non-terminal states. Terminal states have value 0. Episode
// truncation by an Ender set with SetEnder is not taken into account.
//
// If γ = 1, the policy must reach a terminal state with probability 1
// from every state, otherwise the system is singular and an error is
// returned.
func (m *MDP) Value(p policy.Distribution) (*mat.VecDense, error) {
	n := m.NumStates()
	if p.NumStates() != n || p.NumActions() != m.NumActions() {
		return nil, fmt.Errorf("value: policy is defined over %d states "+
			"and %d actions, MDP has %d states and %d actions",
			p.NumStates(), p.NumActions(), n, m.NumActions())
	}

	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	for s := 0; s < n; s++ {
		a.Set(s, s, 1.0)
		if m.terminal[s] {
			continue
		}

		probs, err := p.Probabilities(s)
		if err != nil {
			return nil, fmt.Errorf("value: %w", err)
		}

		var expectedReward float64
		for action, prob := range probs {
			if prob == 0 {
				continue
			}
			for next, tProb := range m.transitions[s][action] {
				expectedReward += prob * tProb * m.rewards[s][action][next]

				// Terminal states have value 0, so they never contribute
				// to the bootstrapped part of the equation
				if !m.terminal[next] {
					a.Set(s, next, a.At(s, next)-m.discount*prob*tProb)
				}
			}
		}
		b.SetVec(s, expectedReward)
	}

	v := mat.NewVecDense(n, nil)
	if err := v.SolveVec(a, b); err != nil {
		// An ill-conditioned but non-singular system still has a usable
		// solution
		if c, ok := err.(mat.Condition); !ok || math.IsInf(float64(c), 1) {
			return nil, fmt.Errorf("value: could not solve Bellman "+
				"equations: %v", err)
		}
	}
	return v, nil
}
