package lumen

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"time"
)

// Apply runs a single filter over an RGB buffer and returns a new buffer with
// the filter's output channel count and the same dimensions.
func Apply(f Filter, src Buffer, opts Options) (Buffer, error) {
	if src.Channels != 3 {
		return Buffer{}, fmt.Errorf("%w: %s needs 3 channels, got %d", ErrInvalidShape, f, src.Channels)
	}

	start := time.Now()
	var (
		pix []byte
		err error
	)
	switch f {
	case FilterGreyscale:
		pix, err = Greyscale(src.Pix)
	case FilterInvert:
		pix, err = Invert(src.Pix)
	case FilterGaussian:
		pix, err = GaussianBlur(src.Pix, src.Width, src.Height, opts.BlurStrength)
	case FilterLaplace:
		pix, err = Laplacian(src.Pix, src.Width, src.Height)
	default:
		return Buffer{}, fmt.Errorf("%w: %d", ErrUnknownFilter, int(f))
	}
	if err != nil {
		return Buffer{}, err
	}

	Logger().Debug("lumen: filter applied",
		"filter", f.String(),
		"width", src.Width,
		"height", src.Height,
		"bytes", len(src.Pix),
		"elapsed", time.Since(start),
	)

	return Buffer{
		Pix:      pix,
		Width:    src.Width,
		Height:   src.Height,
		Channels: f.OutputChannels(),
	}, nil
}

// ApplyFile decodes src, applies f and writes the result to dst. The output
// container is chosen from dst's extension; an empty dst uses
// DefaultOutputPath(src). The context is checked between stages.
func ApplyFile(ctx context.Context, src, dst string, f Filter, opts Options) (*Result, error) {
	if err := opts.reportProgress(ctx, StageDecoding, 0); err != nil {
		return nil, err
	}

	if dst == "" {
		dst = DefaultOutputPath(src)
	}
	format, err := FormatFromPath(dst)
	if err != nil {
		return nil, err
	}

	var in Buffer
	if opts.AutoOrient {
		in, err = OpenOriented(src)
	} else {
		in, err = Open(src)
	}
	if err != nil {
		return nil, err
	}

	if err := opts.reportProgress(ctx, StageFiltering, 0.3); err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := Apply(f, in, opts)
	if err != nil {
		return nil, fmt.Errorf("lumen: %s %q: %w", f, src, err)
	}
	elapsed := time.Since(start)

	if err := opts.reportProgress(ctx, StageEncoding, 0.7); err != nil {
		return nil, err
	}

	var encoded bytes.Buffer
	if err := Encode(&encoded, out, format); err != nil {
		return nil, err
	}

	if err := opts.reportProgress(ctx, StageWriting, 0.9); err != nil {
		return nil, err
	}

	if err := os.WriteFile(dst, encoded.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("lumen: write %q: %w", dst, err)
	}

	if err := opts.reportProgress(ctx, StageWriting, 1.0); err != nil {
		return nil, err
	}

	return &Result{
		Filter:      f,
		Src:         src,
		Dst:         dst,
		Format:      format,
		Dimensions:  image.Pt(out.Width, out.Height),
		InChannels:  in.Channels,
		OutChannels: out.Channels,
		OutputSize:  int64(encoded.Len()),
		Elapsed:     elapsed,
	}, nil
}
