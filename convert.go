package lumen

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImage packs any image into a 3-channel RGB buffer. Non-NRGBA images
// are converted to straight (non-premultiplied) color first; alpha is dropped.
func FromImage(img image.Image) Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	buf := NewBuffer(w, h, 3)
	for y := 0; y < h; y++ {
		srcOff := nrgba.PixOffset(nrgba.Rect.Min.X, nrgba.Rect.Min.Y+y)
		dstOff := y * w * 3
		for x := 0; x < w; x++ {
			s := nrgba.Pix[srcOff+x*4 : srcOff+x*4+3]
			d := buf.Pix[dstOff+x*3 : dstOff+x*3+3]
			d[0], d[1], d[2] = s[0], s[1], s[2]
		}
	}
	return buf
}

// Image wraps the buffer as an image.Image without copying samples.
// One-channel buffers become *image.Gray; three-channel buffers are expanded
// into an opaque *image.NRGBA.
func (b Buffer) Image() (image.Image, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	if b.Channels == 1 {
		return &image.Gray{
			Pix:    b.Pix,
			Stride: b.Width,
			Rect:   b.Bounds(),
		}, nil
	}

	dst := image.NewNRGBA(b.Bounds())
	parallelDo(0, b.Height, func(y int) {
		src := b.Pix[y*b.Width*3 : (y+1)*b.Width*3]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+b.Width*4]
		for x := 0; x < b.Width; x++ {
			row[x*4] = src[x*3]
			row[x*4+1] = src[x*3+1]
			row[x*4+2] = src[x*3+2]
			row[x*4+3] = 0xff
		}
	})
	return dst, nil
}
