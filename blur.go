package lumen

import "fmt"

// GaussianBlur blurs an RGB buffer of width × height pixels.
//
// The blur strength maps to sigma = strength/10, floored at MinSigma. The
// image is convolved with a 1-D Gaussian kernel twice, horizontally and then
// vertically, which costs O(pixels·radius) rather than O(pixels·radius²).
// Samples outside the image replicate the nearest edge pixel. Each pass
// clamps its sums to [0, 255] and truncates them to bytes.
//
// It returns ErrInvalidShape if len(src) is not a multiple of 3 and
// ErrDimensions if width × height × 3 != len(src). A strength above
// MaxBlurStrength returns ErrBlurStrength before anything is allocated.
func GaussianBlur(src []byte, width, height, strength int) ([]byte, error) {
	if err := checkShape(src, 3); err != nil {
		return nil, err
	}
	if err := checkDims(src, width, height, 3); err != nil {
		return nil, err
	}

	if strength > MaxBlurStrength {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrBlurStrength, strength, MaxBlurStrength)
	}

	kernel, radius := GaussianKernel(blurSigma(strength))

	tmp := make([]byte, len(src))
	blurHorizontal(tmp, src, width, height, kernel, radius)

	dst := make([]byte, len(src))
	blurVertical(dst, tmp, width, height, kernel, radius)

	return dst, nil
}

// blurHorizontal convolves each row of src along x into dst.
func blurHorizontal(dst, src []byte, w, h int, kernel []float64, radius int) {
	const channels = 3
	parallelDo(0, h, func(y int) {
		row := y * w * channels
		for x := 0; x < w; x++ {
			for c := 0; c < channels; c++ {
				var sum float64
				for k := -radius; k <= radius; k++ {
					sum += kernel[k+radius] * float64(sampleClamped(src, x+k, y, w, h, c, channels))
				}
				dst[row+x*channels+c] = truncByte(sum)
			}
		}
	})
}

// blurVertical convolves each column of src along y into dst. src must be
// fully written before this is called.
func blurVertical(dst, src []byte, w, h int, kernel []float64, radius int) {
	const channels = 3
	parallelDo(0, h, func(y int) {
		row := y * w * channels
		for x := 0; x < w; x++ {
			for c := 0; c < channels; c++ {
				var sum float64
				for k := -radius; k <= radius; k++ {
					sum += kernel[k+radius] * float64(sampleClamped(src, x, y+k, w, h, c, channels))
				}
				dst[row+x*channels+c] = truncByte(sum)
			}
		}
	})
}
