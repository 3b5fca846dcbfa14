package filter

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Rec. 601 luma weights in 8-bit fixed point: y = (77R + 150G + 29B + 128) >> 8
const (
	lumaRed   = 77
	lumaGreen = 150
	lumaBlue  = 29
	lumaHalf  = 128 // rounding term, half of 1<<lumaShift
	lumaShift = 8
)

// Greyscale reduces an interleaved RGB buffer to one luma byte per pixel
// using the fixed-point weighting y = (77R + 150G + 29B + 128) >> 8.
func Greyscale(rgb []byte) ([]byte, error) {
	if err := validateLength(rgb); err != nil {
		return nil, err
	}
	dst := make([]byte, len(rgb)/Channels)
	greyPixels(dst, rgb)
	return dst, nil
}

// luma is the scalar reference for one pixel.
func luma(r, g, b byte) byte {
	return byte((lumaRed*int(r) + lumaGreen*int(g) + lumaBlue*int(b) + lumaHalf) >> lumaShift)
}

// greyPixels fills dst with the luma of each triplet in rgb, a full vector of
// uint16 lanes at a time (8 per 128-bit vector) with a scalar tail. The
// weighted sum peaks at 65408 so uint16 lanes never overflow, and the integer
// math keeps the vector path bit-exact with luma at any lane width.
func greyPixels(dst, rgb []byte) {
	lanes := hwy.MaxLanes[uint16]()
	r := make([]uint16, lanes)
	g := make([]uint16, lanes)
	b := make([]uint16, lanes)
	y := make([]uint16, lanes)
	wr := hwy.Set[uint16](lumaRed)
	wg := hwy.Set[uint16](lumaGreen)
	wb := hwy.Set[uint16](lumaBlue)
	half := hwy.Set[uint16](lumaHalf)

	i := 0
	for ; i+lanes <= len(dst); i += lanes {
		for j := 0; j < lanes; j++ {
			p := (i + j) * Channels
			r[j] = uint16(rgb[p])
			g[j] = uint16(rgb[p+1])
			b[j] = uint16(rgb[p+2])
		}
		sum := hwy.Add(hwy.Mul(hwy.Load(r), wr), hwy.Mul(hwy.Load(g), wg))
		sum = hwy.Add(sum, hwy.Add(hwy.Mul(hwy.Load(b), wb), half))
		hwy.Store(hwy.ShiftRight(sum, lumaShift), y)
		for j := 0; j < lanes; j++ {
			dst[i+j] = byte(y[j])
		}
	}
	for ; i < len(dst); i++ {
		p := i * Channels
		dst[i] = luma(rgb[p], rgb[p+1], rgb[p+2])
	}
}
