// Package pngio adapts PNG streams to the flat interleaved 8-bit buffers the
// filter package consumes. Decoding flattens any PNG color type to straight
// (non-premultiplied) RGB and drops alpha; encoding maps 3-channel buffers to
// color PNGs and 1-channel buffers to greyscale PNGs.
package pngio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
)

// ErrInvalidGeometry reports a buffer whose length disagrees with the
// width and height it was handed alongside.
var ErrInvalidGeometry = errors.New("geometry does not match pixel buffer")

// DecodeRGB decodes a PNG stream into an interleaved RGB buffer and its
// geometry. Alpha, when present, is dropped without compositing.
func DecodeRGB(r io.Reader) ([]byte, int, int, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decoding png: %w", err)
	}
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// Normalize to straight 8-bit channels regardless of the decoded type.
	nrgba, ok := src.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)
	}

	rgb := make([]byte, width*height*3)
	di := 0
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < width; x++ {
			si := x * 4
			rgb[di] = row[si]
			rgb[di+1] = row[si+1]
			rgb[di+2] = row[si+2]
			di += 3
		}
	}
	return rgb, width, height, nil
}

// EncodeRGB writes an interleaved RGB buffer as an 8-bit color PNG.
func EncodeRGB(w io.Writer, rgb []byte, width, height int) error {
	if width < 0 || height < 0 || width*height*3 != len(rgb) {
		return fmt.Errorf("%w: %dx%d vs %d bytes", ErrInvalidGeometry, width, height, len(rgb))
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	si, di := 0, 0
	for p := 0; p < width*height; p++ {
		img.Pix[di] = rgb[si]
		img.Pix[di+1] = rgb[si+1]
		img.Pix[di+2] = rgb[si+2]
		img.Pix[di+3] = 0xFF
		si += 3
		di += 4
	}
	return png.Encode(w, img)
}

// EncodeGrey writes a single-channel buffer as an 8-bit greyscale PNG.
func EncodeGrey(w io.Writer, grey []byte, width, height int) error {
	if width < 0 || height < 0 || width*height != len(grey) {
		return fmt.Errorf("%w: %dx%d vs %d bytes", ErrInvalidGeometry, width, height, len(grey))
	}
	img := image.NewGray(image.Rect(0, 0, width, height))
	copy(img.Pix, grey)
	return png.Encode(w, img)
}
