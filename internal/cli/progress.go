// Package cli provides command-line display utilities for Haik,
// including fetch progress tracking.
package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// ProgressConfig configures progress display behavior.
type ProgressConfig struct {
	// Writer is where progress output is written (default: os.Stdout).
	Writer io.Writer

	// Quiet disables all progress output.
	Quiet bool

	// BarWidth is the character width of the progress bar.
	BarWidth int
}

// ProgressTracker renders incremental done/total progress for the
// amenity fetch stage. Safe for concurrent updates.
type ProgressTracker struct {
	config ProgressConfig
	mu     sync.Mutex

	startTime time.Time
	done      int
	total     int

	cyan *color.Color
	gray *color.Color
	bold *color.Color
}

// NewProgressTracker creates a progress tracker.
func NewProgressTracker(config ProgressConfig) *ProgressTracker {
	if config.BarWidth <= 0 {
		config.BarWidth = 24
	}
	return &ProgressTracker{
		config:    config,
		startTime: time.Now(),
		cyan:      color.New(color.FgCyan),
		gray:      color.New(color.FgHiBlack),
		bold:      color.New(color.Bold),
	}
}

// Update records batch progress and redraws the bar. Matches the
// amenity.ProgressFunc signature.
func (p *ProgressTracker) Update(done, total int) {
	if p.config.Quiet || p.config.Writer == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Out-of-order callbacks can deliver a stale counter.
	if done < p.done {
		return
	}
	p.done = done
	p.total = total

	p.render()
}

// Finish terminates the progress line with a summary.
func (p *ProgressTracker) Finish() {
	if p.config.Quiet || p.config.Writer == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.config.Writer, "\r%s\r", strings.Repeat(" ", p.config.BarWidth+40))
	p.bold.Fprintf(p.config.Writer, "Fetched %d amenity signals in %s\n",
		p.total, time.Since(p.startTime).Round(time.Millisecond))
}

func (p *ProgressTracker) render() {
	pct := 0.0
	if p.total > 0 {
		pct = float64(p.done) / float64(p.total)
	}
	filled := int(pct * float64(p.config.BarWidth))
	if filled > p.config.BarWidth {
		filled = p.config.BarWidth
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", p.config.BarWidth-filled)

	fmt.Fprint(p.config.Writer, "\r")
	p.cyan.Fprintf(p.config.Writer, "%s", bar)
	fmt.Fprintf(p.config.Writer, " %3.0f%% ", pct*100)
	p.gray.Fprintf(p.config.Writer, "(%d/%d)", p.done, p.total)
}
