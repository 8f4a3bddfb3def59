// Package blank provides the simplest possible scene: a solid background
// with no sprites. Useful for sanity-checking a presenter.
package blank

import (
	"github.com/vovakirdan/tui-blit/internal/core"
	"github.com/vovakirdan/tui-blit/internal/engine"
	"github.com/vovakirdan/tui-blit/internal/registry"
)

// Scene renders a static background color.
type Scene struct {
	background core.Pixel
}

// New creates a blank scene with a dark blue background.
func New() *Scene {
	return &Scene{background: core.RGB(16, 24, 48)}
}

func init() {
	registry.Register("blank", func() registry.Scene {
		return New()
	})
}

// ID returns the scene identifier.
func (s *Scene) ID() string {
	return "blank"
}

// Title returns the display name.
func (s *Scene) Title() string {
	return "Blank Canvas"
}

// Reset implements registry.Scene. The blank scene has no state.
func (s *Scene) Reset(cfg core.SceneConfig) {}

// Step returns the same frame every tick.
func (s *Scene) Step(tick int) engine.Frame {
	return engine.Frame{Background: s.background}
}
