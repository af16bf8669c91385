package trackers

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gopredict/experiment/tracker"
	ts "github.com/samuelfneumann/gopredict/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// episode returns the TimeSteps of an episode with the argument rewards
func episode(discount float64, rewards ...float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, discount, 0, 0)}
	for i, r := range rewards {
		stepType := ts.Mid
		if i == len(rewards)-1 {
			stepType = ts.Last
		}
		steps = append(steps, ts.New(stepType, r, discount, i+1, i+1))
	}
	return steps
}

func TestReturnDiscounts(t *testing.T) {
	r := NewReturn("")
	for _, step := range episode(0.5, 1, 2, 4) {
		r.Track(step)
	}
	for _, step := range episode(0.5, 3) {
		r.Track(step)
	}

	assert.InDeltaSlice(t, []float64{1 + 0.5*2 + 0.25*4, 3}, r.Data(), 1e-12)
	assert.NoError(t, r.Save())
}

func TestReturnPanicsOnSkippedStep(t *testing.T) {
	r := NewReturn("")
	steps := episode(1, 1, 1, 1)
	r.Track(steps[0])
	r.Track(steps[1])

	assert.Panics(t, func() { r.Track(steps[3]) })
}

func TestReturnSaveAndLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "returns.bin")
	r := NewReturn(filename)
	for _, step := range episode(1, 1, 1) {
		r.Track(step)
	}
	require.NoError(t, r.Save())

	data, err := tracker.LoadData(filename)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, data)
}

func TestEpisodeLength(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "lengths.bin")
	e := NewEpisodeLength(filename)
	for _, step := range episode(1, 0, 0, 0) {
		e.Track(step)
	}

	timeout := ts.New(ts.Last, 0, 1, 0, 1)
	timeout.SetEnd(ts.Timeout)
	e.Track(ts.New(ts.First, 0, 1, 0, 0))
	e.Track(timeout)

	assert.Equal(t, []float64{3, 1}, e.Data())
	assert.Equal(t, 1, e.Timeouts())

	require.NoError(t, e.Save())
	data, err := tracker.LoadData(filename)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1}, data)
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 10, 2, 1)

	for _, step := range episode(1, 0, 0) {
		p.Track(step)
	}
	assert.Contains(t, buf.String(), "50.00%")

	for _, step := range episode(1, 0) {
		p.Track(step)
	}
	require.NoError(t, p.Save())
	assert.Contains(t, buf.String(), "100.00%")
}

func TestLoadDataMissingFile(t *testing.T) {
	_, err := tracker.LoadData(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}
