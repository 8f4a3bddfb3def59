// Package assets decodes image files into sprite images. Decoding happens
// before the render loop starts; the engine itself never parses files.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	// Registered decoders for image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/vovakirdan/tui-blit/internal/core"
)

// Load reads and decodes an image file into a sprite image.
// PNG, JPEG, GIF, and BMP are supported.
func Load(path string) (*core.SpriteImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	sprite, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return sprite, nil
}

// Decode reads an encoded image from r into a sprite image.
func Decode(r io.Reader) (*core.SpriteImage, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("assets: decode failed: %w", err)
	}

	sprite, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot convert %s image: %w", format, err)
	}
	return sprite, nil
}

// FromImage converts a decoded image into a sprite image, preserving the
// alpha channel through non-premultiplied RGBA conversion.
func FromImage(img image.Image) (*core.SpriteImage, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, core.ErrInvalidDimension
	}

	pix := make([]core.Pixel, 0, w*h)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix = append(pix, core.RGBA(c.R, c.G, c.B, c.A))
		}
	}

	return core.NewSpriteImage(w, h, pix)
}
