package lumen

import (
	"encoding/binary"
	"io"
)

// Orientation is an EXIF orientation tag value.
type Orientation int

const (
	OrientNormal      Orientation = 1
	OrientFlipH       Orientation = 2
	OrientRotate180   Orientation = 3
	OrientFlipV       Orientation = 4
	OrientTranspose   Orientation = 5 // mirror across the main diagonal
	OrientRotate90CW  Orientation = 6
	OrientTransverse  Orientation = 7 // mirror across the anti-diagonal
	OrientRotate270CW Orientation = 8
)

const (
	markerAPP1   = 0xE1
	markerSOS    = 0xDA
	tagOrient    = 0x0112
	typeShort    = 3
	ifdEntrySize = 12
)

// ReadOrientation scans a JPEG stream for the EXIF orientation tag.
// It returns OrientNormal for non-JPEG input or when no tag is present.
// Only IFD0 is inspected.
func ReadOrientation(r io.ReadSeeker) Orientation {
	var hdr [2]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil || hdr[0] != 0xFF || hdr[1] != 0xD8 {
		return OrientNormal
	}

	for {
		marker, size, ok := nextSegment(r)
		if !ok || marker == markerSOS {
			return OrientNormal
		}

		if marker != markerAPP1 {
			if _, err := r.Seek(int64(size), io.SeekCurrent); err != nil {
				return OrientNormal
			}
			continue
		}

		seg := make([]byte, size)
		if _, err := io.ReadFull(r, seg); err != nil {
			return OrientNormal
		}
		// APP1 also carries XMP; keep looking if this is not EXIF.
		if len(seg) >= 6 && string(seg[:6]) == "Exif\x00\x00" {
			return orientationFromTIFF(seg[6:])
		}
	}
}

// nextSegment reads a marker and its payload size, skipping fill bytes.
func nextSegment(r io.Reader) (marker byte, size int, ok bool) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil || b[0] != 0xFF {
		return 0, 0, false
	}
	for b[1] == 0xFF {
		if _, err := io.ReadFull(r, b[1:]); err != nil {
			return 0, 0, false
		}
	}

	var l [2]byte
	if _, err := io.ReadFull(r, l[:]); err != nil {
		return 0, 0, false
	}
	size = int(binary.BigEndian.Uint16(l[:])) - 2
	if size < 0 {
		return 0, 0, false
	}
	return b[1], size, true
}

// orientationFromTIFF reads the orientation entry of IFD0 in a TIFF header.
func orientationFromTIFF(t []byte) Orientation {
	if len(t) < 8 {
		return OrientNormal
	}

	var bo binary.ByteOrder
	switch string(t[:2]) {
	case "II":
		bo = binary.LittleEndian
	case "MM":
		bo = binary.BigEndian
	default:
		return OrientNormal
	}
	if bo.Uint16(t[2:4]) != 42 {
		return OrientNormal
	}

	off := int(bo.Uint32(t[4:8]))
	if off < 8 || off+2 > len(t) {
		return OrientNormal
	}
	n := int(bo.Uint16(t[off : off+2]))
	off += 2

	for i := 0; i < n; i++ {
		e := off + i*ifdEntrySize
		if e+ifdEntrySize > len(t) {
			break
		}
		if bo.Uint16(t[e:e+2]) != tagOrient {
			continue
		}
		if bo.Uint16(t[e+2:e+4]) != typeShort {
			return OrientNormal
		}
		if v := Orientation(bo.Uint16(t[e+8 : e+10])); v >= OrientNormal && v <= OrientRotate270CW {
			return v
		}
		return OrientNormal
	}
	return OrientNormal
}

// ApplyOrientation returns a copy of b transformed so that an image tagged
// with orient displays upright. Buffers with OrientNormal or an unknown value
// are returned unchanged.
func ApplyOrientation(b Buffer, orient Orientation) Buffer {
	w, h := b.Width, b.Height

	// Each case maps a source pixel (x, y) to its destination.
	var (
		dstW, dstH = w, h
		to         func(x, y int) (int, int)
	)
	switch orient {
	case OrientFlipH:
		to = func(x, y int) (int, int) { return w - 1 - x, y }
	case OrientRotate180:
		to = func(x, y int) (int, int) { return w - 1 - x, h - 1 - y }
	case OrientFlipV:
		to = func(x, y int) (int, int) { return x, h - 1 - y }
	case OrientTranspose:
		dstW, dstH = h, w
		to = func(x, y int) (int, int) { return y, x }
	case OrientRotate90CW:
		dstW, dstH = h, w
		to = func(x, y int) (int, int) { return h - 1 - y, x }
	case OrientTransverse:
		dstW, dstH = h, w
		to = func(x, y int) (int, int) { return h - 1 - y, w - 1 - x }
	case OrientRotate270CW:
		dstW, dstH = h, w
		to = func(x, y int) (int, int) { return y, w - 1 - x }
	default:
		return b
	}

	ch := b.Channels
	dst := NewBuffer(dstW, dstH, ch)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := to(x, y)
			s := (y*w + x) * ch
			d := (dy*dstW + dx) * ch
			copy(dst.Pix[d:d+ch], b.Pix[s:s+ch])
		}
	}
	return dst
}
