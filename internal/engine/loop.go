// Package engine drives the per-frame render sequence: clear the frame
// buffer, execute the frame's blit requests in order, and hand the result
// to a presenter. The engine owns the buffer and never schedules itself;
// an external timer decides when Tick runs.
package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blit/internal/core"
	"github.com/vovakirdan/tui-blit/internal/metrics"
)

// State is the lifecycle state of a render loop.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

var (
	// ErrNotRunning indicates Tick was called outside the Running state.
	ErrNotRunning = errors.New("engine: loop is not running")

	// ErrAlreadyStarted indicates Start was called more than once. A stopped
	// loop does not restart; create a new one.
	ErrAlreadyStarted = errors.New("engine: loop already started")
)

// PresentationError wraps a display surface rejection. The loop treats it
// as unrecoverable and transitions to Stopped; any retry policy belongs to
// the caller.
type PresentationError struct {
	Err error
}

func (e *PresentationError) Error() string {
	return fmt.Sprintf("engine: presentation failed: %v", e.Err)
}

func (e *PresentationError) Unwrap() error {
	return e.Err
}

// Presenter is the display surface boundary. Present converts the buffer
// into the surface's native format and submits it; the conversion must not
// mutate the buffer.
type Presenter interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Present submits the buffer for display. Called exactly once per
	// completed frame.
	Present(buf *core.PixelBuffer) error
}

// Frame is the scene payload for one tick: a background fill and the
// ordered blit requests to composite over it. Order is front-to-back
// visual order as supplied by the scene; the loop never reorders blits.
type Frame struct {
	Background core.Pixel
	Blits      []core.BlitRequest
}

// Stats is a snapshot of loop counters.
type Stats struct {
	Frames  uint64        // Frames presented since Start
	FPS     int           // Presentations in the last second
	Elapsed time.Duration // Time since Start
}

// Loop owns the pixel buffer and renders frames into it. It is not safe
// for concurrent use: the buffer is exclusively owned by the loop for the
// duration of a tick, and one tick completes fully before the next begins.
type Loop struct {
	presenter Presenter
	logger    *log.Logger
	buf       *core.PixelBuffer
	state     State
	meter     *metrics.Meter
	frames    uint64
	started   time.Time
}

// New creates a render loop bound to a presenter. A nil logger discards
// log output.
func New(p Presenter, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		presenter: p,
		logger:    logger,
		meter:     metrics.NewMeter(time.Second),
	}
}

// State returns the loop's current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Buffer returns the loop's frame buffer, or nil before Start.
func (l *Loop) Buffer() *core.PixelBuffer {
	return l.buf
}

// Start transitions the loop from Idle to Running, allocating the frame
// buffer sized to the presenter's current surface.
func (l *Loop) Start() error {
	if l.state != StateIdle {
		return ErrAlreadyStarted
	}

	w, h := l.presenter.Size()
	buf, err := core.NewPixelBuffer(w, h, core.Black)
	if err != nil {
		return fmt.Errorf("engine: cannot allocate %dx%d frame buffer: %w", w, h, err)
	}

	l.buf = buf
	l.state = StateRunning
	l.started = time.Now()
	l.logger.Info("render loop started", "width", w, "height", h)
	return nil
}

// Tick renders one frame: clear, blit, present, in that order. The
// sequence runs synchronously and completes before Tick returns.
//
// Blit errors are caller bugs; they surface immediately, the frame is not
// presented, and the loop stays Running. A presentation failure stops the
// loop for good and is returned wrapped in PresentationError.
func (l *Loop) Tick(frame Frame) error {
	if l.state != StateRunning {
		return ErrNotRunning
	}

	l.buf.Clear(frame.Background)

	for i, req := range frame.Blits {
		if err := req.Execute(l.buf); err != nil {
			return fmt.Errorf("engine: blit %d failed: %w", i, err)
		}
	}

	if err := l.presenter.Present(l.buf); err != nil {
		l.state = StateStopped
		l.logger.Error("presentation failed, stopping loop", "error", err, "frames", l.frames)
		return &PresentationError{Err: err}
	}

	l.frames++
	l.meter.Tick(time.Now())
	return nil
}

// Stop transitions the loop to Stopped. Safe to call in any state and
// idempotent. Callers running on a timer must invoke Stop between ticks;
// a tick in progress always completes its clear/blit/present sequence.
func (l *Loop) Stop() {
	if l.state == StateStopped {
		return
	}
	l.state = StateStopped
	l.logger.Info("render loop stopped", "frames", l.frames)
}

// Stats returns a snapshot of the loop's frame counters.
func (l *Loop) Stats() Stats {
	var elapsed time.Duration
	if !l.started.IsZero() {
		elapsed = time.Since(l.started)
	}
	return Stats{
		Frames:  l.frames,
		FPS:     l.meter.Rate(time.Now()),
		Elapsed: elapsed,
	}
}
