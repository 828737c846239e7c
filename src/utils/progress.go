package utils

import (
	"fmt"
	"os"
	"time"
)

// AttemptBar reports progress through a bounded number of discrete attempts
// (Pollard-Rho retries, prime-generation resamples) rather than a byte or
// squaring count. It throttles its own redraws so a fast inner loop doesn't
// flood the terminal.
type AttemptBar struct {
	total     int
	current   int
	label     string
	startTime time.Time
	lastPrint time.Time
	width     int
}

// NewAttemptBar creates a bar for a budget of `total` attempts at a task
// described by `label` (e.g. "factoring n").
func NewAttemptBar(total int, label string) *AttemptBar {
	return &AttemptBar{
		total:     total,
		label:     label,
		startTime: time.Now(),
		lastPrint: time.Now(),
		width:     30,
	}
}

// Update advances the bar to `current` out of total, redrawing at most every
// 100ms except that reaching total always redraws.
func (b *AttemptBar) Update(current int) {
	b.current = current

	now := time.Now()
	if now.Sub(b.lastPrint) < 100*time.Millisecond && current < b.total {
		return
	}
	b.lastPrint = now
	b.print()
}

// Finish draws the bar at 100% and moves to a new line.
func (b *AttemptBar) Finish() {
	b.current = b.total
	b.print()
	fmt.Fprintln(os.Stderr)
}

// print writes to stderr, not stdout: this is diagnostic narration, and must
// never share a stream with the single-line protocol result a command prints
// on success.
func (b *AttemptBar) print() {
	if b.total <= 0 {
		return
	}
	filled := b.width * b.current / b.total
	if filled > b.width {
		filled = b.width
	}

	bar := make([]byte, b.width)
	for i := range bar {
		switch {
		case i < filled:
			bar[i] = '='
		case i == filled:
			bar[i] = '>'
		default:
			bar[i] = ' '
		}
	}

	fmt.Fprintf(os.Stderr, "\r%s [%s] %d/%d attempts (%v elapsed)",
		b.label, string(bar), b.current, b.total, time.Since(b.startTime).Round(time.Millisecond))
}

// EstimateTime extrapolates how long `operations` more units of work will
// take given a measured rate of opsPerSecond.
func EstimateTime(operations uint64, opsPerSecond float64) time.Duration {
	if opsPerSecond <= 0 {
		return 0
	}
	seconds := float64(operations) / opsPerSecond
	return time.Duration(seconds * float64(time.Second))
}

// FormatDuration renders a duration at a human-appropriate unit.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%.1fm", d.Minutes())
	case d < 24*time.Hour:
		return fmt.Sprintf("%.1fh", d.Hours())
	default:
		return fmt.Sprintf("%.1fd", d.Hours()/24)
	}
}
