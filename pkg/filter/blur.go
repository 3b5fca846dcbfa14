package filter

// blurSigma maps the strength knob to a kernel sigma, floored at 0.1 so tiny
// and non-positive strengths still produce a valid kernel.
func blurSigma(strength int) float64 {
	sigma := float64(strength) / 10
	if sigma < 0.1 {
		sigma = 0.1
	}
	return sigma
}

// GaussianBlur applies a separable Gaussian blur (sigma = strength/10,
// floored at 0.1) to an interleaved RGB buffer with the given geometry. The
// horizontal pass writes an intermediate buffer and the vertical pass reads
// it; each pass accumulates in float64 and re-quantizes with a clamp to
// [0, 255]. Reads beyond the image clamp to the edge.
func GaussianBlur(rgb []byte, width, height, strength int) ([]byte, error) {
	if err := validateGeometry(rgb, width, height); err != nil {
		return nil, err
	}
	weights, radius := GaussianKernel(blurSigma(strength))

	tmp := make([]byte, len(rgb))
	out := make([]byte, len(rgb))

	// horizontal pass: rgb -> tmp
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for c := 0; c < Channels; c++ {
				sum := 0.0
				for k := -radius; k <= radius; k++ {
					sum += weights[k+radius] * float64(sample(rgb, width, height, Channels, x+k, y, c))
				}
				tmp[(y*width+x)*Channels+c] = clampByte(sum)
			}
		}
	}

	// vertical pass: tmp -> out
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for c := 0; c < Channels; c++ {
				sum := 0.0
				for k := -radius; k <= radius; k++ {
					sum += weights[k+radius] * float64(sample(tmp, width, height, Channels, x, y+k, c))
				}
				out[(y*width+x)*Channels+c] = clampByte(sum)
			}
		}
	}

	return out, nil
}

// clampByte truncates a float accumulator into the byte range.
func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
