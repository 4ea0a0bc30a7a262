package lumen

import (
	"fmt"
	"strings"

	"golang.org/x/sys/cpu"
)

// Group widths, in bytes, for the invert loop. Each group is processed as
// 64-bit words, so every width is a multiple of 8.
const (
	lanes128 = 16
	lanes256 = 32
	lanes512 = 64
)

// greyGroup is the number of pixels reduced per greyscale group; the results
// are stored as one 64-bit word.
const greyGroup = 8

var (
	hasAVX2     bool
	hasAVX512BW bool
	hasASIMD    bool

	// invertLanes is the invert group width selected for this CPU.
	invertLanes = lanes128
)

func init() {
	hasAVX2 = cpu.X86.HasAVX2
	hasAVX512BW = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
	hasASIMD = cpu.ARM64.HasASIMD

	switch {
	case hasAVX512BW:
		invertLanes = lanes512
	case hasAVX2:
		invertLanes = lanes256
	default:
		invertLanes = lanes128
	}
}

// Features returns a short description of the CPU features lumen detected
// and the group widths it uses. Output never depends on these widths.
func Features() string {
	var names []string
	if hasAVX2 {
		names = append(names, "avx2")
	}
	if hasAVX512BW {
		names = append(names, "avx512bw")
	}
	if hasASIMD {
		names = append(names, "asimd")
	}
	if len(names) == 0 {
		names = append(names, "baseline")
	}
	return fmt.Sprintf("%s (invert group %d bytes, greyscale group %d pixels)",
		strings.Join(names, ","), invertLanes, greyGroup)
}
