package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_Update(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTracker(ProgressConfig{Writer: &buf, BarWidth: 10})

	p.Update(3, 12)
	out := buf.String()
	assert.Contains(t, out, "(3/12)")
	assert.Contains(t, out, "25%")
}

func TestProgressTracker_IgnoresStaleUpdates(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTracker(ProgressConfig{Writer: &buf, BarWidth: 10})

	p.Update(8, 12)
	buf.Reset()
	p.Update(5, 12)

	assert.Empty(t, buf.String())
	assert.Equal(t, 8, p.done)
}

func TestProgressTracker_Finish(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTracker(ProgressConfig{Writer: &buf, BarWidth: 10})

	p.Update(12, 12)
	p.Finish()
	assert.Contains(t, buf.String(), "Fetched 12 amenity signals")
}

func TestProgressTracker_Quiet(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTracker(ProgressConfig{Writer: &buf, Quiet: true})

	p.Update(1, 2)
	p.Finish()
	assert.Empty(t, strings.TrimSpace(buf.String()))
}
