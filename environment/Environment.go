// Package environment outlines the interfaces and structs needed to
// implement concrete environments with discrete state spaces.
//
// Environments are only ever interacted with through sampling: an
// evaluator resets the environment, chooses actions, and observes the
// next TimeStep. No transition or reward model is exposed through the
// Environment interface.
package environment

import (
	"github.com/samuelfneumann/gopredict/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() int
}

// Ender determines when episodes should end. If End returns true, the
// argument TimeStep will have been modified so that its StepType is
// timestep.Last and its EndType is the reason the episode ended.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Environment implements a simulated environment with a finite number
// of discrete states and actions.
//
// Episodes are assumed to be finite: an Environment that never returns
// a Last TimeStep causes callers that run until the end of an episode
// to run forever.
type Environment interface {
	// Reset starts a new episode and returns its first TimeStep
	Reset() (timestep.TimeStep, error)

	// Step takes an action in the environment, returning the next
	// TimeStep and whether or not the episode has ended
	Step(action int) (timestep.TimeStep, bool, error)

	// DiscountFactor returns the discount factor γ ∈ [0, 1]
	DiscountFactor() float64

	NumStates() int
	NumActions() int
}
