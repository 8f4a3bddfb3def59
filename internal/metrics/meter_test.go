package metrics

import (
	"testing"
	"time"
)

func TestMeterCountsEventsInWindow(t *testing.T) {
	m := NewMeter(time.Second)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		got := m.Tick(base.Add(time.Duration(i) * 100 * time.Millisecond))
		if got != i+1 {
			t.Errorf("Tick %d = %d, expected %d", i, got, i+1)
		}
	}
}

func TestMeterDropsExpiredEvents(t *testing.T) {
	m := NewMeter(time.Second)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	m.Tick(base)
	m.Tick(base.Add(100 * time.Millisecond))
	m.Tick(base.Add(200 * time.Millisecond))

	// 1.5s later only this event remains inside the window
	got := m.Tick(base.Add(1500 * time.Millisecond))
	if got != 1 {
		t.Errorf("Tick after window expiry = %d, expected 1", got)
	}
}

func TestMeterRateDoesNotRecord(t *testing.T) {
	m := NewMeter(time.Second)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	m.Tick(base)
	m.Tick(base.Add(50 * time.Millisecond))

	now := base.Add(100 * time.Millisecond)
	if got := m.Rate(now); got != 2 {
		t.Errorf("Rate = %d, expected 2", got)
	}
	// Rate must not have added an event
	if got := m.Rate(now); got != 2 {
		t.Errorf("repeated Rate = %d, expected 2", got)
	}
}

func TestMeterDefaultWindow(t *testing.T) {
	m := NewMeter(0)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	m.Tick(base)
	if got := m.Tick(base.Add(999 * time.Millisecond)); got != 2 {
		t.Errorf("Tick inside default window = %d, expected 2", got)
	}
	if got := m.Tick(base.Add(2500 * time.Millisecond)); got != 1 {
		t.Errorf("Tick outside default window = %d, expected 1", got)
	}
}
