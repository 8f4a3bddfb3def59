package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blit/internal/core"
)

// ErrSurfaceClosed indicates a present against a closed surface.
var ErrSurfaceClosed = errors.New("tui: surface is closed")

// halfBlock renders two vertically stacked pixels per terminal cell:
// the glyph's foreground is the top pixel, its background the bottom.
const halfBlock = "▀"

// Surface is a terminal display surface implementing engine.Presenter.
// One terminal cell shows two vertically stacked pixels, so a surface of
// C columns and R rows exposes a C x 2R pixel area.
//
// Present converts the buffer into a styled string; the Bubble Tea view
// hands that string to the terminal. The conversion never mutates the
// buffer, and the same buffer contents always produce the same string.
type Surface struct {
	width  int // Pixel width (terminal columns)
	height int // Pixel height (2x terminal rows)
	frame  string
	closed bool
}

// NewSurface creates a surface with the given pixel dimensions. An odd
// height is rounded up to the next cell row; the missing bottom pixels
// render black.
func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Frame returns the most recently presented frame as a styled string.
func (s *Surface) Frame() string {
	return s.frame
}

// Close marks the surface as gone. Further presents fail.
func (s *Surface) Close() {
	s.closed = true
}

// Present converts the buffer to half-block rows and stores the result
// for the next View. It rejects presents after Close and buffers whose
// dimensions do not match the surface.
func (s *Surface) Present(buf *core.PixelBuffer) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if buf.Width() != s.width || buf.Height() != s.height {
		return fmt.Errorf("tui: buffer %dx%d does not match surface %dx%d",
			buf.Width(), buf.Height(), s.width, s.height)
	}

	s.frame = renderHalfBlocks(buf)
	return nil
}

// colorRun is a horizontal run of cells sharing the same top and bottom
// pixel colors.
type colorRun struct {
	top    string // Hex color of the upper pixel
	bottom string // Hex color of the lower pixel
	count  int
}

// pairRuns groups a cell row (one pixel row pair) into color runs to
// minimize ANSI escape sequences, like grouping same-colored cells in a
// character screen. bottom may be nil for an odd final pixel row.
func pairRuns(top, bottom []core.Pixel) []colorRun {
	runs := make([]colorRun, 0, 8)
	for x := 0; x < len(top); x++ {
		t := top[x].Hex()
		b := core.Black.Hex()
		if bottom != nil {
			b = bottom[x].Hex()
		}

		if n := len(runs); n > 0 && runs[n-1].top == t && runs[n-1].bottom == b {
			runs[n-1].count++
			continue
		}
		runs = append(runs, colorRun{top: t, bottom: b, count: 1})
	}
	return runs
}

// renderHalfBlocks converts the buffer into styled terminal rows.
func renderHalfBlocks(buf *core.PixelBuffer) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(buf.Width()*buf.Height()*2 + buf.Height())

	rows := (buf.Height() + 1) / 2
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteRune('\n')
		}

		top := buf.Row(r * 2)
		bottom := buf.Row(r*2 + 1) // nil on an odd final row

		for _, run := range pairRuns(top, bottom) {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(run.top)).
				Background(lipgloss.Color(run.bottom))
			sb.WriteString(style.Render(strings.Repeat(halfBlock, run.count)))
		}
	}
	return sb.String()
}
