package lumen

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// jpegQuality is used for all JPEG output.
const jpegQuality = 95

// Decode reads any registered image format (PNG, JPEG, GIF, BMP, TIFF, WebP)
// from r and packs it into an RGB buffer.
func Decode(r io.Reader) (Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return Buffer{}, fmt.Errorf("lumen: decode: %w", err)
	}
	return FromImage(img), nil
}

// Open loads an image file as an RGB buffer. EXIF orientation is ignored;
// use OpenOriented to correct it.
func Open(filename string) (Buffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Buffer{}, fmt.Errorf("lumen: open %q: %w", filename, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Buffer{}, fmt.Errorf("lumen: decode %q: %w", filename, err)
	}
	return FromImage(img), nil
}

// OpenOriented loads an image file as an RGB buffer and, for JPEG files that
// carry an EXIF orientation, rotates or flips it so it displays upright.
func OpenOriented(filename string) (Buffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Buffer{}, fmt.Errorf("lumen: open %q: %w", filename, err)
	}
	defer f.Close()

	orient := ReadOrientation(f)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Buffer{}, fmt.Errorf("lumen: seek %q: %w", filename, err)
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return Buffer{}, fmt.Errorf("lumen: decode %q: %w", filename, err)
	}

	buf := FromImage(img)
	if orient > OrientNormal {
		Logger().Debug("lumen: applying orientation", "file", filename, "orientation", int(orient))
		buf = ApplyOrientation(buf, orient)
	}
	return buf, nil
}

// FormatFromPath picks an output container from a file extension.
func FormatFromPath(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("%w: %q (use .png, .jpg, .bmp or .tiff)", ErrUnsupportedFormat, filepath.Ext(filename))
}

// Encode writes a 1- or 3-channel buffer to w in the given format.
func Encode(w io.Writer, b Buffer, format Format) error {
	img, err := b.Image()
	if err != nil {
		return err
	}

	switch format {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("lumen: %s encode: %w", format, err)
	}
	return nil
}

// Save writes the buffer to filename, choosing the format from its extension.
func Save(b Buffer, filename string) error {
	format, err := FormatFromPath(filename)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("lumen: create %q: %w", filename, err)
	}

	if err := Encode(f, b, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("lumen: close %q: %w", filename, err)
	}
	return nil
}

// DefaultOutputPath derives an output path for input by prefixing its base
// name with "out-". Inputs in a format lumen can only read get a .png
// extension instead.
func DefaultOutputPath(input string) string {
	dir, base := filepath.Split(input)
	if _, err := FormatFromPath(base); err != nil {
		base = strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
	}
	return dir + "out-" + base
}
