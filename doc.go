// Package lumen is a small image filtering engine that works on raw,
// interleaved 8-bit pixel buffers.
//
// Lumen: one buffer in, one buffer out.
//
// Four stateless filters are provided:
//
//   - Greyscale: fixed-point luminance, 3 channels → 1 channel
//   - Invert: per-sample complement, 255 - v
//   - GaussianBlur: separable two-pass convolution with edge replication
//   - Laplacian: greyscale followed by a 3×3 Laplacian stencil, rectified
//
// Every transform allocates a fresh output buffer and never mutates its
// input, so independent images can be filtered concurrently. Around the
// engine the package also offers file decode/encode, filter-name dispatch,
// and a concurrent batch runner used by the lumen command.
package lumen
