// Package filter implements point and convolution filters over flat
// interleaved 8-bit RGB buffers. Images are row-major R G B triplets with no
// padding and no alpha; geometry travels alongside the buffer as plain ints.
// All filters are pure: the input is never mutated and a fresh output buffer
// is returned.
package filter

import (
	"errors"
	"fmt"
)

// Channels is the number of interleaved components per pixel.
const Channels = 3

// Common errors
var (
	ErrInvalidLength   = errors.New("pixel buffer length is not a multiple of 3")
	ErrInvalidGeometry = errors.New("geometry does not match pixel buffer")
)

// validateLength checks the interleaving invariant shared by every filter.
func validateLength(rgb []byte) error {
	if len(rgb)%Channels != 0 {
		return fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(rgb))
	}
	return nil
}

// validateGeometry checks that (width, height) describes rgb exactly.
func validateGeometry(rgb []byte, width, height int) error {
	if err := validateLength(rgb); err != nil {
		return err
	}
	if width < 0 || height < 0 || width*height*Channels != len(rgb) {
		return fmt.Errorf("%w: %dx%d vs %d bytes", ErrInvalidGeometry, width, height, len(rgb))
	}
	return nil
}
