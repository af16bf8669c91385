// Package trackers implements concrete Trackers
package trackers

import (
	"fmt"

	"github.com/samuelfneumann/gopredict/experiment/tracker"
	ts "github.com/samuelfneumann/gopredict/timestep"
)

// Return tracks and saves the discounted episodic return, that is the
// return from the first state of each episode,
//
//	G = R_1 + γ R_2 + γ² R_3 + ...
//
// where the discount of each step is taken from the TimeStep itself.
// The average of these returns is a Monte Carlo estimate of the value
// of the starting state distribution.
//
// Note: An episode must finish for this Tracker to save its data.
// If the last episode in an experiment does not finish, that episode's
// return will not be saved.
type Return struct {
	lastTimeStep   int
	currentReturn  float64
	discount       float64
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker which saves its
// data to filename. If filename is empty, Save is a no-op.
func NewReturn(filename string) *Return {
	return &Return{
		lastTimeStep: -1,
		discount:     1.0,
		filename:     filename,
	}
}

// Track tracks the rewards seen on a timestep. When a new episode
// starts, this method will automatically detect this and start
// accumulating the rewards for this new episode separately from the
// rewards seen on previous episodes.
//
// Track panics if it is called for non-sequential timesteps
func (r *Return) Track(step ts.TimeStep) {
	if step.First() {
		r.currentReturn = 0.0
		r.discount = 1.0
		r.lastTimeStep = step.Number
		return
	}

	// Ensure that Track is called on sequential timesteps
	if r.lastTimeStep+1 != step.Number {
		msg := fmt.Sprintf("track: last two timesteps tracked are not "+
			"sequential: timestep %v --> timestep %v were tracked",
			r.lastTimeStep, step.Number)
		panic(msg)
	}

	r.currentReturn += r.discount * step.Reward
	r.discount *= step.Discount
	r.lastTimeStep = step.Number

	// Episode has ended, cache the return and reset tracking
	// variables for the next episode
	if step.Last() {
		r.episodeReturns = append(r.episodeReturns, r.currentReturn)
		r.currentReturn = 0.0
		r.discount = 1.0
		r.lastTimeStep = -1
	}
}

// Data returns the returns of all completed episodes
func (r *Return) Data() []float64 {
	return r.episodeReturns
}

// Save saves the data tracked by the Return Tracker to disk.
func (r *Return) Save() error {
	if r.filename == "" {
		return nil
	}
	return tracker.SaveData(r.filename, r.episodeReturns)
}
