package core

// BlitRequest describes one sprite composite for the current frame:
// which image, where on the destination buffer, and optionally which crop
// of the source. Requests are built fresh each frame and discarded after
// the blit executes.
type BlitRequest struct {
	Sprite *SpriteImage
	X, Y   int   // Destination origin in buffer coordinates; may be negative
	Src    *Rect // Optional source crop; nil means the full sprite
}

// Blit composites a rectangular region of sprite into dst at destination
// origin (dx, dy).
//
// The source rectangle defaults to the full sprite and must lie within the
// sprite's own bounds; src.X+src.W == sprite.Width() is valid (exclusive
// upper edge), anything beyond fails with InvalidCropRectError before any
// pixel is written. The destination region is clipped against the buffer
// in a single pass, so negative origins and partially or fully off-buffer
// sprites copy exactly the visible portion. An empty overlap is a
// successful no-op.
//
// Opaque sprites are copied row-by-row; sprites with translucency are
// composited per pixel with Pixel.Over. The sprite is never written to,
// and no read or write touches either buffer outside its bounds.
func Blit(dst *PixelBuffer, sprite *SpriteImage, dx, dy int, src *Rect) error {
	bounds := sprite.Bounds()

	srcRect := bounds
	if src != nil {
		srcRect = *src
		if srcRect.W == 0 || srcRect.H == 0 {
			return nil
		}
		if srcRect.W < 0 || srcRect.H < 0 || srcRect.X < 0 || srcRect.Y < 0 || !srcRect.In(bounds) {
			return &InvalidCropRectError{Src: srcRect, Bounds: bounds}
		}
	}

	// Clip the destination rectangle against the buffer. Everything after
	// this point is guaranteed in-bounds on both sides.
	destRect := Rect{X: dx, Y: dy, W: srcRect.W, H: srcRect.H}
	clipped := destRect.Intersect(dst.Bounds())
	if clipped.Empty() {
		return nil
	}

	// Offset into the source rect for the clipped-away top-left portion.
	sx := srcRect.X + (clipped.X - dx)
	sy := srcRect.Y + (clipped.Y - dy)

	if sprite.Opaque() {
		for r := 0; r < clipped.H; r++ {
			srcRow := sprite.row(sy+r, sx, sx+clipped.W)
			dstRow := dst.Row(clipped.Y + r)
			copy(dstRow[clipped.X:clipped.X+clipped.W], srcRow)
		}
		return nil
	}

	for r := 0; r < clipped.H; r++ {
		srcRow := sprite.row(sy+r, sx, sx+clipped.W)
		dstRow := dst.Row(clipped.Y + r)[clipped.X : clipped.X+clipped.W]
		for c, sp := range srcRow {
			dstRow[c] = sp.Over(dstRow[c])
		}
	}
	return nil
}

// Execute runs a single blit request against dst.
func (r BlitRequest) Execute(dst *PixelBuffer) error {
	return Blit(dst, r.Sprite, r.X, r.Y, r.Src)
}
