// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

// ManualProgressBar implement progress bar functionality that must
// be manually managed. That is, the Display() function must be called
// whenever an updated progress bar should be printed to the screen.
//
// ManualProgressBar does not use concurrency.
type ManualProgressBar struct {
	width           float64
	maxProgress     float64
	currentProgress float64
	bar             strings.Builder
	startTime       time.Time
	out             io.Writer
}

// NewManualProgressBarTo returns a new ManualProgressBar which prints
// to out
func NewManualProgressBarTo(out io.Writer, width,
	max int) *ManualProgressBar {
	if max <= 0 {
		max = 1
	}
	return &ManualProgressBar{
		width:           float64(width),
		maxProgress:     float64(max),
		currentProgress: 0,
		startTime:       time.Now(),
		out:             out,
	}
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ManualProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// Progress returns the current and maximum progress
func (p *ManualProgressBar) Progress() (current, max int) {
	return int(p.currentProgress), int(p.maxProgress)
}

// Done returns whether the progress bar has reached 100%
func (p *ManualProgressBar) Done() bool {
	return p.currentProgress >= p.maxProgress
}

// String returns the progress bar without any terminal control
// characters
func (p *ManualProgressBar) String() string {
	p.bar.Reset()
	p.bar.WriteString("|")

	currentProg := math.Floor(p.currentProgress / p.maxProgress * p.width)
	for i := 0.0; i < currentProg; i++ {
		p.bar.WriteString("█")
	}
	for i := currentProg; i < p.width; i++ {
		p.bar.WriteString(" ")
	}
	p.bar.WriteString(fmt.Sprintf("| [%.2f%v | elapsed: %v]",
		p.currentProgress/p.maxProgress*100, "%",
		time.Since(p.startTime).Truncate(time.Second)))

	return p.bar.String()
}

// Display displays the progress bar, overwriting the previously
// displayed bar on the same line
func (p *ManualProgressBar) Display() {
	fmt.Fprintf(p.out, "\n\033[1A\033[K%v", p.String())
}

// Close jumps to the next line after the last displayed bar
func (p *ManualProgressBar) Close() {
	fmt.Fprintln(p.out)
}
