package core

import (
	"errors"
	"testing"
)

func TestNewPixelBuffer(t *testing.T) {
	fill := RGB(10, 20, 30)
	b, err := NewPixelBuffer(16, 9, fill)
	if err != nil {
		t.Fatalf("NewPixelBuffer returned error: %v", err)
	}

	if b.Width() != 16 {
		t.Errorf("Width() = %d, expected 16", b.Width())
	}
	if b.Height() != 9 {
		t.Errorf("Height() = %d, expected 9", b.Height())
	}

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			p, atErr := b.At(x, y)
			if atErr != nil {
				t.Fatalf("At(%d, %d) returned error: %v", x, y, atErr)
			}
			if p != fill {
				t.Errorf("new buffer should contain the fill pixel, got %v at (%d, %d)", p, x, y)
			}
		}
	}
}

func TestNewPixelBufferInvalidDimension(t *testing.T) {
	cases := [][2]int{{0, 10}, {10, 0}, {-1, 10}, {10, -1}, {0, 0}}
	for _, c := range cases {
		if _, err := NewPixelBuffer(c[0], c[1], Black); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewPixelBuffer(%d, %d) error = %v, expected ErrInvalidDimension", c[0], c[1], err)
		}
	}
}

func TestBufferSetAt(t *testing.T) {
	b, _ := NewPixelBuffer(10, 10, Black)

	red := RGB(255, 0, 0)
	if err := b.Set(5, 5, red); err != nil {
		t.Fatalf("Set(5, 5) returned error: %v", err)
	}

	p, err := b.At(5, 5)
	if err != nil {
		t.Fatalf("At(5, 5) returned error: %v", err)
	}
	if p != red {
		t.Errorf("At(5, 5) = %v, expected %v", p, red)
	}

	// Neighbors must be untouched
	for _, xy := range [][2]int{{4, 5}, {6, 5}, {5, 4}, {5, 6}} {
		p, _ := b.At(xy[0], xy[1])
		if p != Black {
			t.Errorf("Set(5, 5) leaked into (%d, %d): got %v", xy[0], xy[1], p)
		}
	}
}

func TestBufferOutOfBounds(t *testing.T) {
	b, _ := NewPixelBuffer(10, 10, Black)

	cases := [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {100, 100}, {-1, -1}}
	for _, c := range cases {
		if _, err := b.At(c[0], c[1]); err == nil {
			t.Errorf("At(%d, %d) should fail out of bounds", c[0], c[1])
		}
		err := b.Set(c[0], c[1], White)
		if err == nil {
			t.Errorf("Set(%d, %d) should fail out of bounds", c[0], c[1])
			continue
		}
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Errorf("Set(%d, %d) error = %T, expected *OutOfBoundsError", c[0], c[1], err)
		}
	}
}

func TestBufferClear(t *testing.T) {
	b, _ := NewPixelBuffer(7, 5, Black)

	// Dirty the buffer with distinct pixels first
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if err := b.Set(x, y, RGB(uint8(x), uint8(y), 0)); err != nil {
				t.Fatalf("Set(%d, %d) returned error: %v", x, y, err)
			}
		}
	}

	fill := RGB(1, 2, 3)
	b.Clear(fill)

	for i, p := range b.Pix() {
		if p != fill {
			t.Errorf("after Clear, pixel %d = %v, expected %v", i, p, fill)
		}
	}
}

func TestBufferClone(t *testing.T) {
	b, _ := NewPixelBuffer(4, 4, Black)
	b.Set(1, 2, White)

	c := b.Clone()
	if c.Width() != b.Width() || c.Height() != b.Height() {
		t.Fatalf("Clone dimensions = %dx%d, expected %dx%d", c.Width(), c.Height(), b.Width(), b.Height())
	}
	p, _ := c.At(1, 2)
	if p != White {
		t.Errorf("Clone did not copy pixel at (1, 2): got %v", p)
	}

	// Mutating the clone must not affect the original
	c.Set(0, 0, White)
	p, _ = b.At(0, 0)
	if p != Black {
		t.Errorf("mutating clone leaked into original: got %v at (0, 0)", p)
	}
}

func TestBufferRow(t *testing.T) {
	b, _ := NewPixelBuffer(3, 2, Black)
	b.Set(2, 1, White)

	row := b.Row(1)
	if len(row) != 3 {
		t.Fatalf("Row(1) length = %d, expected 3", len(row))
	}
	if row[2] != White {
		t.Errorf("Row(1)[2] = %v, expected %v", row[2], White)
	}

	if b.Row(-1) != nil || b.Row(2) != nil {
		t.Error("Row should return nil for out-of-range rows")
	}
}
