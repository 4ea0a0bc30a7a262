package lumen

import "encoding/binary"

const allOnes = ^uint64(0)

// Invert complements every sample: out = 255 - in.
//
// The arithmetic does not care about channels, but the buffer must still be
// a whole number of RGB pixels; ErrInvalidShape is returned otherwise. The
// lumen command only ever passes RGB buffers here.
func Invert(src []byte) ([]byte, error) {
	if err := checkShape(src, 3); err != nil {
		return nil, err
	}

	dst := make([]byte, len(src))
	invertInto(dst, src, invertLanes)
	return dst, nil
}

// invertInto complements src into dst in groups of lanes bytes, each group
// handled as 64-bit words subtracted from an all-ones mask. lanes must be a
// positive multiple of 8. The tail is complemented byte by byte.
func invertInto(dst, src []byte, lanes int) {
	n := len(src)
	i := 0
	for ; i+lanes <= n; i += lanes {
		for w := i; w < i+lanes; w += 8 {
			v := binary.LittleEndian.Uint64(src[w : w+8])
			binary.LittleEndian.PutUint64(dst[w:w+8], allOnes-v)
		}
	}

	for ; i < n; i++ {
		dst[i] = 255 - src[i]
	}
}
