package lumen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when a buffer length is not a multiple of
	// the channel count a filter expects.
	ErrInvalidShape = errors.New("lumen: invalid buffer shape")

	// ErrDimensions is returned when width × height × channels does not match
	// the buffer length, or a dimension is negative.
	ErrDimensions = errors.New("lumen: dimensions do not match buffer")

	// ErrBlurStrength is returned for a blur strength above MaxBlurStrength.
	ErrBlurStrength = errors.New("lumen: blur strength out of range")

	// ErrUnknownFilter is returned for a filter name or value lumen does not know.
	ErrUnknownFilter = errors.New("lumen: unknown filter")

	// ErrUnsupportedFormat is returned when a file extension has no encoder.
	ErrUnsupportedFormat = errors.New("lumen: unsupported format")
)

// ShapeError describes a buffer whose length does not divide into whole pixels.
type ShapeError struct {
	Len      int
	Channels int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("lumen: buffer of %d bytes is not a multiple of %d channels", e.Len, e.Channels)
}

// Unwrap lets errors.Is match ErrInvalidShape.
func (e *ShapeError) Unwrap() error { return ErrInvalidShape }

// checkShape rejects buffers that do not hold a whole number of pixels.
func checkShape(src []byte, channels int) error {
	if len(src)%channels != 0 {
		return &ShapeError{Len: len(src), Channels: channels}
	}
	return nil
}

// checkDims verifies that src holds exactly width × height pixels.
func checkDims(src []byte, width, height, channels int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrDimensions, width, height)
	}
	if width*height*channels != len(src) {
		return fmt.Errorf("%w: %dx%dx%d != %d", ErrDimensions, width, height, channels, len(src))
	}
	return nil
}
