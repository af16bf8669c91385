package trackers

import (
	"io"

	ts "github.com/samuelfneumann/gopredict/timestep"
	"github.com/samuelfneumann/gopredict/utils/progressbar"
)

// Progress displays a progress bar which advances each time an episode
// ends. The bar is redrawn every displayEvery episodes.
type Progress struct {
	bar          *progressbar.ManualProgressBar
	displayEvery int
	episodes     int
}

// NewProgress returns a new Progress tracker for the given number of
// episodes, writing the progress bar to out
func NewProgress(out io.Writer, width, episodes,
	displayEvery int) *Progress {
	if displayEvery <= 0 {
		displayEvery = 1
	}
	return &Progress{
		bar:          progressbar.NewManualProgressBarTo(out, width, episodes),
		displayEvery: displayEvery,
	}
}

// Track increments the progress bar at the end of each episode
func (p *Progress) Track(t ts.TimeStep) {
	if !t.Last() {
		return
	}

	p.bar.Increment()
	p.episodes++
	if p.episodes%p.displayEvery == 0 || p.bar.Done() {
		p.bar.Display()
	}
}

// Save finishes displaying the progress bar
func (p *Progress) Save() error {
	p.bar.Close()
	return nil
}
