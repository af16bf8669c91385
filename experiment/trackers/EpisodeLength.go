package trackers

import (
	"github.com/samuelfneumann/gopredict/experiment/tracker"
	"github.com/samuelfneumann/gopredict/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment.
// Note that an episode must finish for this Tracker to save its data.
// If the last episode in an experiment does not finish, that episode's
// length will not be saved.
type EpisodeLength struct {
	episodeLengths []float64
	timeouts       int
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength saver which will save
// its data at the specified location filename. If filename is empty,
// Save is a no-op.
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track tracks the episode lengths in an experiment. When this function
// is called, it caches the episode length if the timestep passed to it
// is the last timestep in the episode.
func (e *EpisodeLength) Track(t timestep.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, float64(t.Number))
		if t.EndType() == timestep.Timeout {
			e.timeouts++
		}
	}
}

// Data returns the lengths of all completed episodes
func (e *EpisodeLength) Data() []float64 {
	return e.episodeLengths
}

// Timeouts returns the number of episodes cut off by a step limit
func (e *EpisodeLength) Timeouts() int {
	return e.timeouts
}

// Save saves the data tracked by the EpisodeLength Tracker to disk.
func (e *EpisodeLength) Save() error {
	if e.filename == "" {
		return nil
	}
	return tracker.SaveData(e.filename, e.episodeLengths)
}
