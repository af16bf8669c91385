// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either a
// first environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType denotes the reason an episode ended
type EndType int

const (
	// NotEnded is the EndType of a TimeStep that is not the last in an
	// episode
	NotEnded EndType = iota

	// TerminalStateReached denotes an episode that ended by entering a
	// terminal state of the environment
	TerminalStateReached

	// Timeout denotes an episode that was cut off by a step limit
	Timeout
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "NotEnded"
	}
}

// TimeStep packages together a single timestep in an environment.
//
// States are discrete and represented by their index in the
// environment's state space. Since the index is a plain value, a
// TimeStep can be retained across environment steps without the
// environment being able to change it underneath the caller.
type TimeStep struct {
	StepType
	Reward   float64
	Discount float64
	State    int
	Number   int
	end      EndType
}

// New returns a new TimeStep
func New(t StepType, r, d float64, s, n int) TimeStep {
	return TimeStep{
		StepType: t,
		Reward:   r,
		Discount: d,
		State:    s,
		Number:   n,
	}
}

// SetEnd sets the reason the episode ended on the TimeStep
func (t *TimeStep) SetEnd(e EndType) {
	t.end = e
}

// EndType returns the reason the episode ended. If the TimeStep is not
// the last in the episode, NotEnded is returned.
func (t TimeStep) EndType() EndType {
	return t.end
}

// First returns whether a TimeStep is the first in an environment
func (t TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t TimeStep) Last() bool {
	return t.StepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  State: %d  |  Reward:  %.2f  |  " +
		"Discount: %.2f  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.State, t.Reward, t.Discount,
		t.Number)
}

// Transition represents a single SARS transition between two TimeSteps
type Transition struct {
	State     int
	Action    int
	Reward    float64
	Discount  float64
	NextState int
}

// NewTransition creates and returns the transition from step to
// nextStep when action is taken in step
func NewTransition(step TimeStep, action int, nextStep TimeStep) Transition {
	return Transition{
		State:     step.State,
		Action:    action,
		Reward:    nextStep.Reward,
		Discount:  nextStep.Discount,
		NextState: nextStep.State,
	}
}

func (t Transition) String() string {
	return fmt.Sprintf("Transition | %d --(%d)--> %d  |  Reward: %.2f  |  "+
		"Discount: %.2f", t.State, t.Action, t.NextState, t.Reward,
		t.Discount)
}
