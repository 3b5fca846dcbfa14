package filter

// clampIndex clamps a coordinate to [0, size-1]. Out-of-range reads during
// convolution resolve to the nearest edge pixel (clamp-to-edge).
func clampIndex(index, size int) int {
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

// sample reads component c of the pixel at (x, y) from a flat interleaved
// buffer, clamping both coordinates to the image bounds. channels is 3 for
// RGB planes and 1 for grey planes; it is the only sampler the filters use.
func sample(buf []byte, width, height, channels, x, y, c int) byte {
	x = clampIndex(x, width)
	y = clampIndex(y, height)
	return buf[(y*width+x)*channels+c]
}
