// Package texture loads texture images and generates fallbacks.
package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// MaxSize bounds the longer edge of a loaded texture.
const MaxSize = 2048

// Checker returns a size x size image of cells x cells alternating squares.
func Checker(size, cells int, a, b color.Color) *image.RGBA {
	size = max(size, 1)
	cells = max(cells, 1)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := max(size/cells, 1)
	for y := range size {
		for x := range size {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// Load decodes a PNG, JPEG or BMP file into RGBA with the first row at the
// bottom, matching GL texture coordinates. Images larger than MaxSize are
// scaled down.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening texture: %w", err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", path, err)
	}
	log.Debug().Str("path", path).Str("format", format).
		Int("width", src.Bounds().Dx()).Int("height", src.Bounds().Dy()).
		Msg("loaded texture")

	return flip(fit(src, MaxSize)), nil
}

// OrChecker loads path, falling back to a checkerboard when path is empty or
// unreadable.
func OrChecker(path string) image.Image {
	fallback := func() image.Image {
		return Checker(256, 8, color.RGBA{0xff, 0x80, 0, 0xff}, color.RGBA{0, 0x40, 0xff, 0xff})
	}
	if path == "" {
		return fallback()
	}
	img, err := Load(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("using checkerboard texture")
		return fallback()
	}
	return img
}

// fit converts src to RGBA, scaling it so neither edge exceeds limit.
func fit(src image.Image, limit int) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > limit || h > limit {
		if w >= h {
			w, h = limit, max(h*limit/w, 1)
		} else {
			w, h = max(w*limit/h, 1), limit
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.BiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}
	return dst
}

func flip(img *image.RGBA) *image.RGBA {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := range h / 2 {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
	return img
}
