package core

import "fmt"

// Pixel is a single RGBA color value. Channels are 8-bit, so every
// representable pixel is in range by construction; no clamping is ever
// needed at the storage layer.
type Pixel struct {
	R, G, B, A uint8
}

// Common colors used by scenes and defaults.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = Pixel{}
)

// RGB returns a fully opaque pixel.
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 255}
}

// RGBA returns a pixel with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: a}
}

// ParseHex parses a "#RRGGBB" or "#RRGGBBAA" color string.
// Used by the YAML renderer config for background colors.
func ParseHex(s string) (Pixel, error) {
	if len(s) == 0 || s[0] != '#' {
		return Pixel{}, fmt.Errorf("core: hex color must start with '#': %q", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Pixel{}, fmt.Errorf("core: hex color must be #RRGGBB or #RRGGBBAA: %q", s)
	}

	var channels [4]uint8
	channels[3] = 255
	for i := 0; i < len(hex)/2; i++ {
		hi, ok1 := hexDigit(hex[i*2])
		lo, ok2 := hexDigit(hex[i*2+1])
		if !ok1 || !ok2 {
			return Pixel{}, fmt.Errorf("core: invalid hex digit in color %q", s)
		}
		channels[i] = hi<<4 | lo
	}

	return Pixel{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Hex returns the pixel as a "#RRGGBB" string, ignoring alpha.
// Presenters use this for truecolor terminal styling.
func (p Pixel) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}

// Opaque reports whether the pixel is fully opaque.
func (p Pixel) Opaque() bool {
	return p.A == 255
}

// Over composites p onto dst using the source alpha:
// out = src*a + dst*(1-a) per channel, rounded to the nearest integer.
// A fully transparent source leaves dst untouched; a fully opaque source
// replaces it.
func (p Pixel) Over(dst Pixel) Pixel {
	switch p.A {
	case 255:
		return p
	case 0:
		return dst
	}

	a := uint32(p.A)
	inv := 255 - a
	return Pixel{
		R: blendChannel(uint32(p.R), uint32(dst.R), a, inv),
		G: blendChannel(uint32(p.G), uint32(dst.G), a, inv),
		B: blendChannel(uint32(p.B), uint32(dst.B), a, inv),
		// Standard over for coverage: out_a = a + dst_a*(1-a).
		A: uint8(a + (uint32(dst.A)*inv+127)/255),
	}
}

// blendChannel computes round((src*a + dst*inv) / 255) in integer math.
// Adding 127 before the division rounds to the nearest integer because
// the numerator is never congruent to 127.5 mod 255.
func blendChannel(src, dst, a, inv uint32) uint8 {
	return uint8((src*a + dst*inv + 127) / 255)
}
