// Package metrics provides runtime rendering metrics.
package metrics

import "time"

// Meter counts events inside a sliding time window. The engine records one
// event per presented frame, so the count over a one-second window is the
// effective frame rate.
type Meter struct {
	window time.Duration
	stamps []time.Time
}

// NewMeter creates a meter with the given window. A nonpositive window
// falls back to one second.
func NewMeter(window time.Duration) *Meter {
	if window <= 0 {
		window = time.Second
	}
	return &Meter{window: window}
}

// Tick records an event at the given time and returns the number of events
// inside the window ending at that time, including this one.
func (m *Meter) Tick(now time.Time) int {
	m.stamps = append(m.stamps, now)

	cutoff := now.Add(-m.window)
	drop := 0
	for drop < len(m.stamps) && m.stamps[drop].Before(cutoff) {
		drop++
	}
	if drop > 0 {
		m.stamps = append(m.stamps[:0], m.stamps[drop:]...)
	}
	return len(m.stamps)
}

// Rate returns the current event count inside the window ending at now,
// without recording an event.
func (m *Meter) Rate(now time.Time) int {
	cutoff := now.Add(-m.window)
	n := 0
	for i := len(m.stamps) - 1; i >= 0; i-- {
		if m.stamps[i].Before(cutoff) {
			break
		}
		n++
	}
	return n
}
