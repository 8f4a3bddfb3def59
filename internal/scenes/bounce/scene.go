// Package bounce provides a scene with a single square sprite sweeping
// across the buffer. The sprite starts partially off the left edge and
// wraps past the right edge, so every run exercises negative-origin and
// far-edge destination clipping.
package bounce

import (
	"github.com/vovakirdan/tui-blit/internal/core"
	"github.com/vovakirdan/tui-blit/internal/engine"
	"github.com/vovakirdan/tui-blit/internal/registry"
)

const spriteSize = 12

// Scene moves a soft-edged square horizontally with wraparound and
// bounces it vertically off the buffer edges.
type Scene struct {
	width  int
	height int
	sprite *core.Sprite
	vy     int
}

// New creates a bounce scene.
func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register("bounce", func() registry.Scene {
		return New()
	})
}

// ID returns the scene identifier.
func (s *Scene) ID() string {
	return "bounce"
}

// Title returns the display name.
func (s *Scene) Title() string {
	return "Bouncing Square"
}

// Reset implements registry.Scene.
func (s *Scene) Reset(cfg core.SceneConfig) {
	s.width = cfg.Width
	s.height = cfg.Height
	s.vy = 1

	img := squareImage(spriteSize, core.RGB(220, 60, 60))
	// Start with only the sprite's rightmost column visible
	s.sprite = core.NewSprite(img, 1-spriteSize, cfg.Height/3)
}

// Step advances the sprite one pixel right and one vertically, wrapping
// horizontally and bouncing off the top and bottom edges.
func (s *Scene) Step(tick int) engine.Frame {
	if s.sprite.X > s.width {
		s.sprite.X = 1 - spriteSize
	} else {
		s.sprite.X++
	}

	s.sprite.Y += s.vy
	if s.sprite.Y <= 0 || s.sprite.Y+spriteSize >= s.height {
		s.vy = -s.vy
		s.sprite.Y = core.Clamp(s.sprite.Y, 0, core.Max(0, s.height-spriteSize))
	}

	req, err := s.sprite.Request()
	if err != nil {
		// Single hardcoded frame key; cannot fail after Reset
		return engine.Frame{Background: core.Black}
	}

	return engine.Frame{
		Background: core.RGB(12, 12, 20),
		Blits:      []core.BlitRequest{req},
	}
}

// squareImage builds a solid square with a one-pixel translucent border,
// so the sprite exercises both the opaque row-copy path and per-pixel
// compositing at its edges.
func squareImage(size int, color core.Pixel) *core.SpriteImage {
	pix := make([]core.Pixel, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := color
			if x == 0 || y == 0 || x == size-1 || y == size-1 {
				p.A = 128
			}
			pix[y*size+x] = p
		}
	}
	img, err := core.NewSpriteImage(size, size, pix)
	if err != nil {
		panic(err) // size is a positive constant
	}
	return img
}
