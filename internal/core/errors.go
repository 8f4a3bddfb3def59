package core

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension indicates a buffer or sprite was constructed with a
// nonpositive width or height.
var ErrInvalidDimension = errors.New("core: nonpositive dimension")

// OutOfBoundsError indicates a single-pixel access outside the buffer.
// Bounds errors are caller bugs: they are surfaced immediately and never
// silently clamped, because clamping would mask clipping defects in the
// caller.
type OutOfBoundsError struct {
	X, Y int // The offending coordinate
	W, H int // The bounds that were violated
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("core: coordinate (%d,%d) outside buffer bounds %dx%d", e.X, e.Y, e.W, e.H)
}

// InvalidCropRectError indicates a blit source rectangle that does not lie
// within the sprite's own bounds. The blit is not executed.
type InvalidCropRectError struct {
	Src    Rect // The requested source rectangle
	Bounds Rect // The sprite bounds it violated
}

func (e *InvalidCropRectError) Error() string {
	return fmt.Sprintf("core: source rect (%d,%d %dx%d) outside sprite bounds %dx%d",
		e.Src.X, e.Src.Y, e.Src.W, e.Src.H, e.Bounds.W, e.Bounds.H)
}
