package interp

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Kernel resamples source rows into destination spans.
//
// Source rows are sliced to the source region, so len(row)-1 is the last
// readable sample; upper neighbors past it are replaced by the lower sample.
// All implementations must produce bit-identical output.
type Kernel interface {
	// Horizontal fills dst from one row, starting at pos and advancing by step.
	Horizontal(dst, row []uint32, pos, step Fixed)

	// Vertical fills dst by blending row0 and row1 column by column with
	// weight w toward row1. Rows must be at least len(dst) long.
	Vertical(dst, row0, row1 []uint32, w uint32)

	// Bilinear interpolates horizontally on row0 and row1, then vertically
	// between the two results with weight wy.
	Bilinear(dst, row0, row1 []uint32, pos, step Fixed, wy uint32)
}

// Mode selects a kernel implementation.
type Mode uint8

const (
	// ModeAuto picks the wide kernel when the CPU has a vector unit.
	ModeAuto Mode = iota

	// ModeScalar forces the scalar reference kernel.
	ModeScalar

	// ModeWide forces the 16-lane kernel.
	ModeWide
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "Auto"
	case ModeScalar:
		return "Scalar"
	case ModeWide:
		return "Wide"
	default:
		return "Unknown"
	}
}

// hasVector reports whether the wide kernel is expected to auto-vectorize.
var hasVector = detectVector()

func detectVector() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasSSE2 || cpu.X86.HasAVX2
	case "arm64":
		return cpu.ARM64.HasASIMD
	default:
		return false
	}
}

// HasVector reports the result of the runtime capability check.
func HasVector() bool {
	return hasVector
}

// Select returns the kernel for mode. Unknown modes behave like ModeAuto.
func Select(mode Mode) Kernel {
	switch mode {
	case ModeScalar:
		return Scalar{}
	case ModeWide:
		return Wide{}
	default:
		if hasVector {
			return Wide{}
		}
		return Scalar{}
	}
}

// sample returns the lower and upper neighbors at integer index x of row,
// clamped to the row's last sample, together with the adjusted weight.
func sample(row []uint32, pos Fixed) (lo, hi, w uint32) {
	x := pos.Int()
	last := len(row) - 1
	if x >= last {
		return row[last], row[last], 0
	}
	return row[x], row[x+1], pos.Weight()
}
