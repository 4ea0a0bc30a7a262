package lumen

import "math"

// clampIndex returns index clamped to [0, size-1].
func clampIndex(index, size int) int {
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

// sampleClamped returns one channel of the pixel at (x, y), replicating the
// nearest edge pixel for coordinates outside the image.
func sampleClamped(buf []byte, x, y, width, height, channel, channels int) byte {
	x = clampIndex(x, width)
	y = clampIndex(y, height)
	return buf[(y*width+x)*channels+channel]
}

// truncByte clamps v to [0, 255] and truncates toward zero.
func truncByte(v float64) byte {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}
