// Package texture decodes images into GPU-ready RGBA pixels.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
)

// ErrEmpty is returned for images without pixels.
var ErrEmpty = errors.New("texture: empty image")

// Load reads and decodes the image at path.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Decode decodes a PNG, JPEG or BMP image, flipped so that row 0 is the
// bottom row as OpenGL expects.
func Decode(r io.Reader) (*image.RGBA, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w (%s)", ErrEmpty, format)
	}
	return ImageToRGBA(img, true), nil
}

// DecodeBytes is Decode for in-memory data.
func DecodeBytes(data []byte) (*image.RGBA, error) {
	return Decode(bytes.NewReader(data))
}

// ImageToRGBA converts img to RGBA with origin (0,0), optionally flipping it
// vertically.
func ImageToRGBA(img image.Image, flipY bool) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	if !flipY {
		return rgba
	}

	stride := rgba.Stride
	row := make([]byte, stride)
	for top, bottom := 0, b.Dy()-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := rgba.Pix[top*stride : (top+1)*stride]
		bt := rgba.Pix[bottom*stride : (bottom+1)*stride]
		copy(row, t)
		copy(t, bt)
		copy(bt, row)
	}
	return rgba
}

// White returns the 1x1 white fallback image.
func White() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	return img
}
