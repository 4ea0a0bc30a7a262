package lumen

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
)

// ── Test Helpers ────────────────────────────────────────────────────────────

// makeGradient returns a w×h RGB buffer with distinct values per channel.
func makeGradient(w, h int) []byte {
	pix := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := (y*w + x) * 3
			pix[off] = uint8(x * 255 / max(w, 1))
			pix[off+1] = uint8(y * 255 / max(h, 1))
			pix[off+2] = uint8((x + y) % 256)
		}
	}
	return pix
}

// makeSolid returns a w×h RGB buffer filled with one color.
func makeSolid(w, h int, r, g, b byte) []byte {
	pix := make([]byte, w*h*3)
	for i := 0; i < len(pix); i += 3 {
		pix[i], pix[i+1], pix[i+2] = r, g, b
	}
	return pix
}

// makeRandom returns n bytes from a seeded generator.
func makeRandom(n int, seed uint64) []byte {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	pix := make([]byte, n)
	for i := range pix {
		pix[i] = byte(rng.UintN(256))
	}
	return pix
}

// writeTestPNG saves an RGB buffer as PNG in dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string, w, h int, pix []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := Save(Buffer{Pix: pix, Width: w, Height: h, Channels: 3}, path); err != nil {
		t.Fatalf("Save %s: %v", path, err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("fixture %s not written: %v", path, err)
	}
	return path
}

func absDiff(a, b byte) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
