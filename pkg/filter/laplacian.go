package filter

// LaplacianEdges reduces the buffer to greyscale and convolves the grey plane
// with the 5-point Laplacian stencil 4c - up - down - left - right, taking
// the absolute value and clamping to 255. Neighbors beyond the image clamp to
// the edge, so a constant image yields all zeros everywhere, borders included.
// Output is one byte per pixel.
func LaplacianEdges(rgb []byte, width, height int) ([]byte, error) {
	if err := validateGeometry(rgb, width, height); err != nil {
		return nil, err
	}
	grey, err := Greyscale(rgb)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(grey))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := int(grey[y*width+x])
			up := int(sample(grey, width, height, 1, x, y-1, 0))
			down := int(sample(grey, width, height, 1, x, y+1, 0))
			left := int(sample(grey, width, height, 1, x-1, y, 0))
			right := int(sample(grey, width, height, 1, x+1, y, 0))

			v := 4*c - up - down - left - right
			if v < 0 {
				v = -v
			}
			if v > 255 {
				v = 255
			}
			out[y*width+x] = byte(v)
		}
	}
	return out, nil
}
