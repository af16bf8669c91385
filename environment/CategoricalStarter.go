package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states sampled from a categorical
// distribution over state indices.
type CategoricalStarter struct {
	seed uint64
	rand distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter, sampling
// state i with probability weights[i] / sum(weights).
func NewCategoricalStarter(weights []float64,
	seed uint64) (*CategoricalStarter, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("newCategoricalStarter: no start weights")
	}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("newCategoricalStarter: weight %d "+
				"is negative (%v)", i, w)
		}
	}
	if floats.Sum(weights) <= 0 {
		return nil, fmt.Errorf("newCategoricalStarter: weights sum to 0")
	}

	source := rand.NewSource(seed)
	w := make([]float64, len(weights))
	copy(w, weights)

	return &CategoricalStarter{seed, distuv.NewCategorical(w, source)}, nil
}

// NewUniformStarter returns a new CategoricalStarter which samples
// each of the argument states with equal probability
func NewUniformStarter(states []int, numStates int,
	seed uint64) (*CategoricalStarter, error) {
	weights := make([]float64, numStates)
	for _, s := range states {
		if s < 0 || s >= numStates {
			return nil, fmt.Errorf("newUniformStarter: state %d out of "+
				"range [0, %d)", s, numStates)
		}
		weights[s] = 1.0
	}

	return NewCategoricalStarter(weights, seed)
}

// Start returns a starting state
func (c *CategoricalStarter) Start() int {
	return int(c.rand.Rand())
}

// Len returns the number of states the starter samples from
func (c *CategoricalStarter) Len() int {
	return c.rand.Len()
}

// SingleStarter always starts episodes in the same state
type SingleStarter struct {
	state int
}

// NewSingleStarter returns a Starter which always starts in state
func NewSingleStarter(state int) SingleStarter {
	return SingleStarter{state}
}

// Start returns the starting state
func (s SingleStarter) Start() int {
	return s.state
}
