package progressbar

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestIncrementStopsAtMax(t *testing.T) {
	p := NewManualProgressBarTo(&bytes.Buffer{}, 10, 3)
	for i := 0; i < 5; i++ {
		p.Increment()
	}

	current, max := p.Progress()
	assert.Equal(t, 3, current)
	assert.Equal(t, 3, max)
	assert.True(t, p.Done())
}

func TestString(t *testing.T) {
	p := NewManualProgressBarTo(&bytes.Buffer{}, 4, 4)
	p.Increment()
	p.Increment()

	bar := p.String()
	assert.True(t, strings.HasPrefix(bar, "|██  |"), bar)
	assert.Contains(t, bar, "[50.00%")
}

func TestStringFractionalWidth(t *testing.T) {
	p := NewManualProgressBarTo(&bytes.Buffer{}, 3, 2)
	p.Increment()

	bar := p.String()
	cells := strings.SplitN(bar, "|", 3)[1]
	assert.Equal(t, 3, utf8.RuneCountInString(cells), bar)
	assert.Equal(t, "█  ", cells)
}

func TestDisplayWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewManualProgressBarTo(&buf, 2, 1)
	p.Increment()
	p.Display()
	p.Close()

	assert.Contains(t, buf.String(), "100.00%")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}
