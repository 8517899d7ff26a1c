package ssdrefresh

import (
	"fmt"
	"time"
)

// Progress is the state of the reading pass.
// It is owned by a single reading loop.
type Progress struct {
	Processed int
	Total     int
	Start     time.Time
}

// NewProgress ...
func NewProgress(total int, start time.Time) *Progress {
	return &Progress{Total: total, Start: start}
}

// Advance marks one more file as processed
func (p *Progress) Advance() {
	p.Processed++
}

// Elapsed returns the seconds since the reading pass started
func (p Progress) Elapsed(now time.Time) float64 {
	elapsed := now.Sub(p.Start).Seconds()
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Percent of processed files, clamped to [0, 100] in case the tree grew after counting
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 100
	}
	percent := 100 * float64(p.Processed) / float64(p.Total)
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}

// ETA extrapolates the average time per processed file over the remaining files
func (p Progress) ETA(now time.Time) float64 {
	if p.Processed <= 0 {
		return 0
	}
	remaining := p.Total - p.Processed
	if remaining < 0 {
		remaining = 0
	}
	return (p.Elapsed(now) / float64(p.Processed)) * float64(remaining)
}

// Status formats percent, elapsed time and ETA
func (p Progress) Status(now time.Time) string {
	return fmt.Sprintf("Progress: %6.2f%% | Elapsed: %s | ETA: %s",
		p.Percent(), FormatDuration(p.Elapsed(now)), FormatDuration(p.ETA(now)))
}
