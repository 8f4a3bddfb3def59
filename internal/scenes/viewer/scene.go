// Package viewer provides a scene that displays a single loaded image,
// centered on the buffer. It is constructed around an image rather than
// registered, since the image comes from the command line.
package viewer

import (
	"github.com/vovakirdan/tui-blit/internal/core"
	"github.com/vovakirdan/tui-blit/internal/engine"
)

// Scene shows one static image centered on a background color. Images
// larger than the buffer are cropped to the visible center region.
type Scene struct {
	title      string
	img        *core.SpriteImage
	sprite     *core.Sprite
	background core.Pixel
}

// New creates a viewer scene for the given image. The title is shown in
// the status line, typically the file name. The background fills the
// area around the image; transparent image pixels composite over it.
func New(img *core.SpriteImage, title string, background core.Pixel) *Scene {
	return &Scene{title: title, img: img, background: background}
}

// ID returns the scene identifier.
func (s *Scene) ID() string {
	return "viewer"
}

// Title returns the display name.
func (s *Scene) Title() string {
	return s.title
}

// Reset centers the image for the buffer size.
func (s *Scene) Reset(cfg core.SceneConfig) {
	x := (cfg.Width - s.img.Width()) / 2
	y := (cfg.Height - s.img.Height()) / 2
	s.sprite = core.NewSprite(s.img, x, y)
}

// Step returns the same centered frame every tick.
func (s *Scene) Step(tick int) engine.Frame {
	req, err := s.sprite.Request()
	if err != nil {
		return engine.Frame{Background: s.background}
	}

	return engine.Frame{
		Background: s.background,
		Blits:      []core.BlitRequest{req},
	}
}
