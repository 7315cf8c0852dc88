// Package blend implements the compositing operators used by the smooth
// scaler and selects specialized span functions for them.
//
// All operations work on premultiplied ARGB samples packed as 0xAARRGGBB.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Op represents a compositing operator.
type Op uint8

const (
	OpBlend Op = iota // Result: S + D*(1-Sa) [default]
	OpCopy            // Result: S
	OpAdd             // Result: S + D (clamped to 255)
	OpSub             // Result: D - S (clamped to 0)
	OpMask            // Result: D*Sa
	OpMul             // Result: S*D

	opCount
)

// String returns a string representation of the operator.
func (op Op) String() string {
	switch op {
	case OpBlend:
		return "Blend"
	case OpCopy:
		return "Copy"
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMask:
		return "Mask"
	case OpMul:
		return "Mul"
	default:
		return "Unknown"
	}
}

// IsValid returns true if op is a known operator.
func (op Op) IsValid() bool {
	return op < opCount
}

// ParseOp returns the operator named s (case-sensitive, as printed by String).
func ParseOp(s string) (Op, bool) {
	for op := Op(0); op < opCount; op++ {
		if op.String() == s {
			return op, true
		}
	}
	return OpBlend, false
}
