package lumen

// Laplacian produces a single-channel edge map from an RGB buffer of
// width × height pixels.
//
// The image is first reduced with Greyscale, then every pixel is replaced by
// the magnitude of the 4-neighbour Laplacian
//
//	[ 0 -1  0]
//	[-1  4 -1]
//	[ 0 -1  0]
//
// clamped to [0, 255]. Neighbours outside the image replicate the edge, so a
// flat image yields all zeros.
func Laplacian(src []byte, width, height int) ([]byte, error) {
	if err := checkShape(src, 3); err != nil {
		return nil, err
	}
	if err := checkDims(src, width, height, 3); err != nil {
		return nil, err
	}

	grey, err := Greyscale(src)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, width*height)
	at := func(x, y int) int {
		return int(sampleClamped(grey, x, y, width, height, 0, 1))
	}
	parallelDo(0, height, func(y int) {
		for x := 0; x < width; x++ {
			sum := 4*at(x, y) - at(x, y-1) - at(x-1, y) - at(x+1, y) - at(x, y+1)
			if sum < 0 {
				sum = -sum
			}
			dst[y*width+x] = byte(min(sum, 255))
		}
	})
	return dst, nil
}
