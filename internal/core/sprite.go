package core

import "fmt"

// SpriteImage is an immutable rectangular pixel image used as a blit
// source. A blit never mutates its sprite, so one image may back any
// number of blit requests in the same frame.
type SpriteImage struct {
	width  int
	height int
	pix    []Pixel
	opaque bool
}

// NewSpriteImage creates a sprite image from row-major pixel data.
// The pixel slice is copied, so the caller may reuse its backing array.
// Returns ErrInvalidDimension for nonpositive dimensions and an error if
// the data length does not match width*height.
func NewSpriteImage(width, height int, pix []Pixel) (*SpriteImage, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("core: sprite pixel data has length %d, want %d", len(pix), width*height)
	}

	owned := make([]Pixel, len(pix))
	copy(owned, pix)

	opaque := true
	for _, p := range owned {
		if p.A != 255 {
			opaque = false
			break
		}
	}

	return &SpriteImage{
		width:  width,
		height: height,
		pix:    owned,
		opaque: opaque,
	}, nil
}

// NewSolidSprite creates a sprite of a single uniform color.
func NewSolidSprite(width, height int, p Pixel) (*SpriteImage, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}
	pix := make([]Pixel, width*height)
	for i := range pix {
		pix[i] = p
	}
	return NewSpriteImage(width, height, pix)
}

// Width returns the sprite width in pixels.
func (s *SpriteImage) Width() int {
	return s.width
}

// Height returns the sprite height in pixels.
func (s *SpriteImage) Height() int {
	return s.height
}

// Bounds returns the sprite extent as a rectangle at the origin.
func (s *SpriteImage) Bounds() Rect {
	return Rect{W: s.width, H: s.height}
}

// Opaque reports whether every pixel is fully opaque. Opaque sprites take
// the straight row-copy path in Blit instead of per-pixel compositing.
func (s *SpriteImage) Opaque() bool {
	return s.opaque
}

// At returns the pixel at (x, y). Out-of-range coordinates return a
// transparent pixel; the blit path never requests them.
func (s *SpriteImage) At(x, y int) Pixel {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	return s.pix[y*s.width+x]
}

// row returns the pixels of row y within the given column range.
func (s *SpriteImage) row(y, x0, x1 int) []Pixel {
	base := y * s.width
	return s.pix[base+x0 : base+x1]
}

// Sprite is a positioned set of named image frames with one frame active
// at a time. Scenes flip the active key to animate and move the sprite by
// updating X and Y; the frames themselves stay immutable.
type Sprite struct {
	Frames    map[string]*SpriteImage
	ActiveKey string
	X, Y      int
}

// NewSprite creates a sprite with a single frame keyed on "".
func NewSprite(img *SpriteImage, x, y int) *Sprite {
	return &Sprite{
		Frames:    map[string]*SpriteImage{"": img},
		ActiveKey: "",
		X:         x,
		Y:         y,
	}
}

// Active returns the currently active frame.
func (s *Sprite) Active() (*SpriteImage, error) {
	img, ok := s.Frames[s.ActiveKey]
	if !ok {
		return nil, fmt.Errorf("core: sprite has no frame %q", s.ActiveKey)
	}
	return img, nil
}

// Request builds a full-image blit request for the active frame at the
// sprite's current position.
func (s *Sprite) Request() (BlitRequest, error) {
	img, err := s.Active()
	if err != nil {
		return BlitRequest{}, err
	}
	return BlitRequest{Sprite: img, X: s.X, Y: s.Y}, nil
}
