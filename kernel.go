package lumen

import "math"

// MinSigma is the smallest standard deviation used for blurring. Lower values,
// including zero and negative ones, are raised to it.
const MinSigma = 0.1

// MaxBlurStrength is the largest strength GaussianBlur accepts. It bounds the
// kernel radius at 3·MaxSigma.
const MaxBlurStrength = 10000

// MaxSigma is the sigma MaxBlurStrength maps to. GaussianKernel returns no
// kernel above it.
const MaxSigma = MaxBlurStrength / 10

// GaussianKernel builds a normalized 1-D Gaussian kernel and returns its
// weights together with its radius.
//
// The radius is max(1, ceil(3·sigma)), enough to cover 99.7% of the
// distribution, and the kernel has 2·radius+1 weights that sum to 1. For a
// sigma above MaxSigma it returns (nil, 0).
func GaussianKernel(sigma float64) ([]float64, int) {
	if sigma > MaxSigma {
		return nil, 0
	}
	if !(sigma >= MinSigma) {
		sigma = MinSigma
	}

	radius := max(1, int(math.Ceil(sigma*3)))
	size := 2*radius + 1

	kernel := make([]float64, size)
	var sum float64
	for i := 0; i < size; i++ {
		x := float64(i - radius)
		kernel[i] = math.Exp(-(x * x) / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel, radius
}

// blurSigma converts an integer blur strength into a sigma, strength/10,
// never below MinSigma.
func blurSigma(strength int) float64 {
	sigma := float64(strength) / 10
	if sigma < MinSigma {
		sigma = MinSigma
	}
	return sigma
}
