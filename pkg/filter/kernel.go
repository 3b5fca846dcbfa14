package filter

import "math"

// GaussianKernel builds the normalized 1D weights for a separable Gaussian
// of the given sigma, which must be positive. The radius is max(1, ceil(3*sigma)),
// covering three standard deviations, so 2*radius+1 weights are returned and
// they sum to 1.
func GaussianKernel(sigma float64) ([]float64, int) {
	radius := int(math.Ceil(3 * sigma))
	if radius < 1 {
		radius = 1
	}
	weights := make([]float64, 2*radius+1)
	sum := 0.0
	for k := -radius; k <= radius; k++ {
		w := math.Exp(-float64(k*k) / (2 * sigma * sigma))
		weights[k+radius] = w
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights, radius
}
