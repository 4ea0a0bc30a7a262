package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shamspias/lumen"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFixture(t *testing.T, dir, name string) string {
	t.Helper()
	const w, h = 6, 4
	buf := lumen.NewBuffer(w, h, 3)
	for i := range buf.Pix {
		buf.Pix[i] = byte(i * 7)
	}
	path := filepath.Join(dir, name)
	if err := lumen.Save(buf, path); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return path
}

func TestCLINoArgs(t *testing.T) {
	code, _, stderr := runCLI(t)
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(stderr, "Missing required option: input-file") || !strings.Contains(stderr, "Usage") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestCLIHelp(t *testing.T) {
	code, _, stderr := runCLI(t, "-h")
	if code != 0 {
		t.Fatalf("exit = %d, want 0", code)
	}
	for _, want := range []string{"-filter", "-input-file", "-output-file", "-blur-strength"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("help missing %q:\n%s", want, stderr)
		}
	}
}

func TestCLIFeatures(t *testing.T) {
	code, stdout, _ := runCLI(t, "-features")
	if code != 0 || !strings.Contains(stdout, "invert group") {
		t.Fatalf("exit = %d, stdout = %q", code, stdout)
	}
}

func TestCLIDefaultGreyscale(t *testing.T) {
	dir := t.TempDir()
	in := writeFixture(t, dir, "img.png")

	code, stdout, stderr := runCLI(t, "-I", in)
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	if !strings.Contains(stdout, "Lumen Result: greyscale") {
		t.Fatalf("stdout = %q", stdout)
	}

	out, err := lumen.Open(filepath.Join(dir, "out-img.png"))
	if err != nil {
		t.Fatalf("default output not readable: %v", err)
	}
	if out.Width != 6 || out.Height != 4 {
		t.Fatalf("dims = %dx%d", out.Width, out.Height)
	}
}

func TestCLIFilters(t *testing.T) {
	dir := t.TempDir()
	in := writeFixture(t, dir, "img.png")

	for _, f := range []string{"invert", "gaussian", "laplace"} {
		dst := filepath.Join(dir, f+".png")
		code, _, stderr := runCLI(t, "-F", f, "-blur-strength", "15", "-input-file", in, "-O", dst)
		if code != 0 {
			t.Fatalf("%s: exit = %d, stderr = %s", f, code, stderr)
		}
		if info, err := os.Stat(dst); err != nil || info.Size() == 0 {
			t.Fatalf("%s: output missing: %v", f, err)
		}
	}
}

func TestCLIUnknownFilter(t *testing.T) {
	dir := t.TempDir()
	in := writeFixture(t, dir, "img.png")
	code, _, stderr := runCLI(t, "-filter", "sepia", "-I", in)
	if code != 1 || !strings.Contains(stderr, "unknown filter") {
		t.Fatalf("exit = %d, stderr = %q", code, stderr)
	}
}

func TestCLINegativeBlurStrength(t *testing.T) {
	code, _, stderr := runCLI(t, "-blur-strength", "-3", "-I", "x.png")
	if code != 1 || !strings.Contains(stderr, "blur-strength") {
		t.Fatalf("exit = %d, stderr = %q", code, stderr)
	}
}

func TestCLIBlurStrengthTooLarge(t *testing.T) {
	code, _, stderr := runCLI(t, "-F", "gaussian", "-blur-strength", "10001", "-I", "x.png")
	if code != 1 || !strings.Contains(stderr, "blur-strength") {
		t.Fatalf("exit = %d, stderr = %q", code, stderr)
	}
}

func TestCLIBatch(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.png")
	b := writeFixture(t, dir, "b.bmp")

	code, stdout, stderr := runCLI(t, "-F", "invert", "-workers", "2", a, b)
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	if !strings.Contains(stdout, "Batch: 2/2 succeeded") {
		t.Fatalf("stdout = %q", stdout)
	}
	for _, name := range []string{"out-a.png", "out-b.bmp"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("%s not written: %v", name, err)
		}
	}
}

func TestCLIBatchRejectsOutput(t *testing.T) {
	code, _, stderr := runCLI(t, "-O", "x.png", "a.png", "b.png")
	if code != 1 || !strings.Contains(stderr, "multiple inputs") {
		t.Fatalf("exit = %d, stderr = %q", code, stderr)
	}
}

func TestCLIBatchPartialFailure(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.png")
	code, stdout, stderr := runCLI(t, a, filepath.Join(dir, "missing.png"))
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(stderr, "missing.png") || !strings.Contains(stdout, "1/2 succeeded") {
		t.Fatalf("stdout = %q, stderr = %q", stdout, stderr)
	}
}

func TestCLIVerboseLogs(t *testing.T) {
	dir := t.TempDir()
	in := writeFixture(t, dir, "img.png")
	code, _, stderr := runCLI(t, "-v", "-I", in)
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr)
	}
	if !strings.Contains(stderr, "filter applied") {
		t.Fatalf("expected debug log on stderr, got %q", stderr)
	}
}
