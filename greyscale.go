package lumen

import "encoding/binary"

// Luminance weights scaled by 256. They sum to 256 so white maps to 255.
const (
	lumaR     = 77
	lumaG     = 150
	lumaB     = 29
	lumaRound = 128
	lumaShift = 8
)

// Greyscale reduces an RGB buffer to one luminance sample per pixel using
// Y = (77·R + 150·G + 29·B + 128) >> 8.
// It returns ErrInvalidShape if len(src) is not a multiple of 3.
func Greyscale(src []byte) ([]byte, error) {
	if err := checkShape(src, 3); err != nil {
		return nil, err
	}

	pixels := len(src) / 3
	dst := make([]byte, pixels)
	greyscaleInto(dst, src, pixels)
	return dst, nil
}

// greyscaleInto writes pixels luminance samples from src into dst.
// Full groups of greyGroup pixels are packed into one word per store; the
// tail goes one pixel at a time through the same luma function.
func greyscaleInto(dst, src []byte, pixels int) {
	i := 0
	for ; i+greyGroup <= pixels; i += greyGroup {
		s := src[i*3 : (i+greyGroup)*3]
		var word uint64
		for j := 0; j < greyGroup; j++ {
			word |= uint64(luma(s[j*3], s[j*3+1], s[j*3+2])) << (8 * j)
		}
		binary.LittleEndian.PutUint64(dst[i:i+greyGroup], word)
	}

	for ; i < pixels; i++ {
		idx := i * 3
		dst[i] = luma(src[idx], src[idx+1], src[idx+2])
	}
}

func luma(r, g, b byte) byte {
	return byte((lumaR*uint32(r) + lumaG*uint32(g) + lumaB*uint32(b) + lumaRound) >> lumaShift)
}
