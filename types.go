package lumen

import (
	"context"
	"fmt"
	"image"
	"strings"
	"time"
)

// Version is the library version.
const Version = "1.0.0"

// Filter selects one of the transforms.
type Filter int

const (
	// FilterGreyscale reduces RGB to luminance (1 channel out).
	FilterGreyscale Filter = iota
	// FilterInvert complements every sample (3 channels out).
	FilterInvert
	// FilterGaussian blurs with a separable Gaussian kernel (3 channels out).
	FilterGaussian
	// FilterLaplace detects edges with a Laplacian stencil (1 channel out).
	FilterLaplace
)

// String returns the filter's command-line name.
func (f Filter) String() string {
	switch f {
	case FilterGreyscale:
		return "greyscale"
	case FilterInvert:
		return "invert"
	case FilterGaussian:
		return "gaussian"
	case FilterLaplace:
		return "laplace"
	default:
		return "unknown"
	}
}

// OutputChannels returns the number of channels the filter produces.
func (f Filter) OutputChannels() int {
	switch f {
	case FilterGreyscale, FilterLaplace:
		return 1
	default:
		return 3
	}
}

// ParseFilter maps a filter name to a Filter. Matching is case-insensitive
// and accepts "grayscale" and "laplacian" as aliases.
func ParseFilter(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "greyscale", "grayscale":
		return FilterGreyscale, nil
	case "invert":
		return FilterInvert, nil
	case "gaussian":
		return FilterGaussian, nil
	case "laplace", "laplacian":
		return FilterLaplace, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// Format is an image container used when writing files.
type Format int

const (
	PNG Format = iota
	JPEG
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case BMP:
		return "BMP"
	case TIFF:
		return "TIFF"
	default:
		return "unknown"
	}
}

// Buffer is a packed pixel buffer with its dimensions. Samples are
// interleaved per pixel in row-major order with no row padding.
type Buffer struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// NewBuffer allocates a zeroed buffer of the given shape.
func NewBuffer(width, height, channels int) Buffer {
	return Buffer{
		Pix:      make([]byte, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// Validate checks that the channel count is 1 or 3 and that Pix holds
// exactly Width × Height pixels.
func (b Buffer) Validate() error {
	if b.Channels != 1 && b.Channels != 3 {
		return fmt.Errorf("%w: %d channels", ErrInvalidShape, b.Channels)
	}
	return checkDims(b.Pix, b.Width, b.Height, b.Channels)
}

// Bounds returns the buffer's rectangle anchored at the origin.
func (b Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// ProgressStage describes what ApplyFile is currently doing.
type ProgressStage string

const (
	StageDecoding  ProgressStage = "decoding"
	StageFiltering ProgressStage = "filtering"
	StageEncoding  ProgressStage = "encoding"
	StageWriting   ProgressStage = "writing"
)

// ProgressFunc is called during ApplyFile to report progress.
// percent is 0.0–1.0. Return a non-nil error to abort.
type ProgressFunc func(stage ProgressStage, percent float64) error

// Options configures filter application.
type Options struct {
	// BlurStrength controls the Gaussian filter: sigma = BlurStrength/10.
	BlurStrength int

	// AutoOrient applies JPEG EXIF orientation when decoding files.
	AutoOrient bool

	// OnProgress is called by ApplyFile. Optional.
	OnProgress ProgressFunc
}

// DefaultOptions returns the defaults used by the lumen command.
func DefaultOptions() Options {
	return Options{
		BlurStrength: 10,
		AutoOrient:   true,
	}
}

// reportProgress checks ctx and then invokes the progress callback if set.
func (o *Options) reportProgress(ctx context.Context, stage ProgressStage, percent float64) error {
	if ctx != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	if o.OnProgress != nil {
		return o.OnProgress(stage, percent)
	}
	return nil
}

// Result describes one ApplyFile run.
type Result struct {
	Filter Filter

	// Src and Dst are the input and output paths.
	Src string
	Dst string

	// Format is the container written to Dst.
	Format Format

	// Dimensions is the (possibly re-oriented) image size.
	Dimensions image.Point

	// InChannels and OutChannels are the buffer channel counts.
	InChannels  int
	OutChannels int

	// OutputSize is the number of bytes written to Dst.
	OutputSize int64

	// Elapsed is the time spent in the filter itself.
	Elapsed time.Duration
}

// String returns a one-line summary of the run.
func (r *Result) String() string {
	return fmt.Sprintf(
		"Lumen Result: %s | %s → %s | %dx%d | %dch → %dch | %s %s | %s",
		r.Filter, r.Src, r.Dst,
		r.Dimensions.X, r.Dimensions.Y,
		r.InChannels, r.OutChannels,
		r.Format, humanBytes(r.OutputSize),
		r.Elapsed.Round(time.Microsecond),
	)
}

// humanBytes formats a byte count for human reading.
func humanBytes(b int64) string {
	if b == 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB"}
	i := 0
	bf := float64(b)
	for bf >= 1024 && i < len(units)-1 {
		bf /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", b)
	}
	return fmt.Sprintf("%.1f %s", bf, units[i])
}
