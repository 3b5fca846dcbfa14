package filter

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Invert replaces every channel byte with its complement 255 - v.
// Applying it twice restores the original buffer.
func Invert(rgb []byte) ([]byte, error) {
	if err := validateLength(rgb); err != nil {
		return nil, err
	}
	dst := make([]byte, len(rgb))
	invertBytes(dst, rgb)
	return dst, nil
}

// invertBytes complements src into dst a full vector of uint8 lanes at a time
// (16 per 128-bit vector) with a scalar tail. 255 - v cannot wrap, so the
// vector path matches the scalar path bit for bit.
func invertBytes(dst, src []byte) {
	lanes := hwy.MaxLanes[uint8]()
	white := hwy.Set[uint8](255)
	i := 0
	for ; i+lanes <= len(src); i += lanes {
		hwy.Store(hwy.Sub(white, hwy.Load(src[i:i+lanes])), dst[i:i+lanes])
	}
	for ; i < len(src); i++ {
		dst[i] = 255 - src[i]
	}
}
