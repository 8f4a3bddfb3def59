package core

import (
	"errors"
	"testing"
)

func TestNewSpriteImageValidation(t *testing.T) {
	if _, err := NewSpriteImage(0, 4, nil); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("zero width error = %v, expected ErrInvalidDimension", err)
	}
	if _, err := NewSpriteImage(4, -1, nil); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("negative height error = %v, expected ErrInvalidDimension", err)
	}
	if _, err := NewSpriteImage(2, 2, make([]Pixel, 3)); err == nil {
		t.Error("mismatched pixel data length should fail")
	}
}

func TestSpriteImageCopiesData(t *testing.T) {
	pix := []Pixel{RGB(1, 1, 1), RGB(2, 2, 2), RGB(3, 3, 3), RGB(4, 4, 4)}
	s, err := NewSpriteImage(2, 2, pix)
	if err != nil {
		t.Fatalf("NewSpriteImage returned error: %v", err)
	}

	// Mutating the caller's slice must not affect the sprite
	pix[0] = White
	if s.At(0, 0) != RGB(1, 1, 1) {
		t.Errorf("sprite shares backing array with caller: At(0, 0) = %v", s.At(0, 0))
	}
}

func TestSpriteImageOpaque(t *testing.T) {
	opaque, _ := NewSolidSprite(2, 2, RGB(5, 5, 5))
	if !opaque.Opaque() {
		t.Error("solid RGB sprite should be opaque")
	}

	translucent, _ := NewSolidSprite(2, 2, RGBA(5, 5, 5, 254))
	if translucent.Opaque() {
		t.Error("sprite with alpha < 255 should not be opaque")
	}
}

func TestSpriteActiveFrame(t *testing.T) {
	idle, _ := NewSolidSprite(2, 2, RGB(1, 0, 0))
	walk, _ := NewSolidSprite(2, 2, RGB(0, 1, 0))

	s := &Sprite{
		Frames:    map[string]*SpriteImage{"idle": idle, "walk": walk},
		ActiveKey: "idle",
		X:         3,
		Y:         4,
	}

	img, err := s.Active()
	if err != nil {
		t.Fatalf("Active returned error: %v", err)
	}
	if img != idle {
		t.Error("Active should return the frame for the active key")
	}

	req, err := s.Request()
	if err != nil {
		t.Fatalf("Request returned error: %v", err)
	}
	if req.Sprite != idle || req.X != 3 || req.Y != 4 || req.Src != nil {
		t.Errorf("Request = %+v, expected full-image request for idle frame at (3, 4)", req)
	}

	s.ActiveKey = "missing"
	if _, err := s.Active(); err == nil {
		t.Error("Active with unknown key should fail")
	}
}
