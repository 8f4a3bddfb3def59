// Package cycle provides a scene whose background hue rotates over time.
// It exercises the per-frame full clear without any blitting.
package cycle

import (
	"github.com/vovakirdan/tui-blit/internal/core"
	"github.com/vovakirdan/tui-blit/internal/engine"
	"github.com/vovakirdan/tui-blit/internal/registry"
)

// Scene cycles the background through the full hue circle.
type Scene struct {
	tickRate int
}

// New creates a color cycle scene.
func New() *Scene {
	return &Scene{tickRate: 60}
}

func init() {
	registry.Register("cycle", func() registry.Scene {
		return New()
	})
}

// ID returns the scene identifier.
func (s *Scene) ID() string {
	return "cycle"
}

// Title returns the display name.
func (s *Scene) Title() string {
	return "Color Cycle"
}

// Reset implements registry.Scene.
func (s *Scene) Reset(cfg core.SceneConfig) {
	if cfg.TickRate > 0 {
		s.tickRate = cfg.TickRate
	}
}

// Step returns a frame whose background completes a full hue rotation
// every ten seconds.
func (s *Scene) Step(tick int) engine.Frame {
	period := s.tickRate * 10
	hue := float64(tick%period) / float64(period) * 360.0
	return engine.Frame{Background: hueToRGB(hue)}
}

// hueToRGB converts a hue in [0,360) at full saturation and value.
func hueToRGB(hue float64) core.Pixel {
	h := hue / 60.0
	sector := int(h) % 6
	f := h - float64(int(h))

	v := uint8(255)
	q := uint8(255 * (1 - f))
	t := uint8(255 * f)

	switch sector {
	case 0:
		return core.RGB(v, t, 0)
	case 1:
		return core.RGB(q, v, 0)
	case 2:
		return core.RGB(0, v, t)
	case 3:
		return core.RGB(0, q, v)
	case 4:
		return core.RGB(t, 0, v)
	default:
		return core.RGB(v, 0, q)
	}
}
