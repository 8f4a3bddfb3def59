package core

// PixelBuffer is a 2D RGBA frame buffer, the sole mutable surface of the
// engine. Pixels are stored in row-major order: index = y*W + x.
//
// Unlike a terminal cell screen, out-of-bounds access is an error rather
// than a silent no-op: every write outside bounds is a caller bug, and the
// only sanctioned partial writes go through the clipped Blit path.
type PixelBuffer struct {
	width  int
	height int
	pix    []Pixel // Flat array, length width*height
}

// NewPixelBuffer creates a buffer of exactly width x height pixels, all
// initialized to fill. Returns ErrInvalidDimension if either dimension is
// not positive.
func NewPixelBuffer(width, height int, fill Pixel) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}

	b := &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
	b.Clear(fill)
	return b, nil
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Bounds returns the buffer extent as a rectangle at the origin.
func (b *PixelBuffer) Bounds() Rect {
	return Rect{W: b.width, H: b.height}
}

// index converts a coordinate to a flat array index.
func (b *PixelBuffer) index(x, y int) int {
	return y*b.width + x
}

// inBounds returns true if the coordinate is within the buffer.
func (b *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the pixel stored at (x, y).
func (b *PixelBuffer) At(x, y int) (Pixel, error) {
	if !b.inBounds(x, y) {
		return Pixel{}, &OutOfBoundsError{X: x, Y: y, W: b.width, H: b.height}
	}
	return b.pix[b.index(x, y)], nil
}

// Set stores a pixel at (x, y).
func (b *PixelBuffer) Set(x, y int, p Pixel) error {
	if !b.inBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y, W: b.width, H: b.height}
	}
	b.pix[b.index(x, y)] = p
	return nil
}

// Clear overwrites every pixel with fill. Called once per frame to erase
// the previous frame; this full clear is the dominant per-frame cost.
func (b *PixelBuffer) Clear(fill Pixel) {
	// Fill the first row, then double the filled region with copy.
	// copy compiles to memmove, which beats a per-pixel loop.
	row := b.pix[:b.width]
	for i := range row {
		row[i] = fill
	}
	for filled := b.width; filled < len(b.pix); filled *= 2 {
		copy(b.pix[filled:], b.pix[:filled])
	}
}

// Pix returns the underlying pixel slice in row-major order. Presenters
// read this for format conversion; they must not mutate it.
func (b *PixelBuffer) Pix() []Pixel {
	return b.pix
}

// Row returns the pixels of row y. Returns nil if y is out of range.
func (b *PixelBuffer) Row(y int) []Pixel {
	if y < 0 || y >= b.height {
		return nil
	}
	return b.pix[y*b.width : (y+1)*b.width]
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]Pixel, len(b.pix))
	copy(pix, b.pix)
	return &PixelBuffer{
		width:  b.width,
		height: b.height,
		pix:    pix,
	}
}
