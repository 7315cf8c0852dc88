package blend

// PixelFunc composites one premultiplied source sample onto one destination
// sample and returns the new destination.
type PixelFunc func(s, d uint32) uint32

// GetPixelFunc returns the pixel function for op.
// Returns pixelBlend for unknown operators.
func GetPixelFunc(op Op) PixelFunc {
	switch op {
	case OpCopy:
		return pixelCopy
	case OpAdd:
		return pixelAdd
	case OpSub:
		return pixelSub
	case OpMask:
		return pixelMask
	case OpMul:
		return pixelMul
	default:
		return pixelBlend
	}
}

// pixelBlend composites source over destination.
// Formula: S + D * (1 - Sa)
func pixelBlend(s, d uint32) uint32 {
	return AddSat(s, MulAlpha(d, 255-Alpha(s)))
}

// pixelBlendSparse is pixelBlend with shortcuts for fully opaque and fully
// transparent sources.
func pixelBlendSparse(s, d uint32) uint32 {
	switch Alpha(s) {
	case 255:
		return s
	case 0:
		return d
	}
	return pixelBlend(s, d)
}

// pixelBlendOpaque blends onto a destination known to be opaque.
// Alpha is pinned to 0xFF.
func pixelBlendOpaque(s, d uint32) uint32 {
	return pixelBlend(s, d) | alphaMask
}

// pixelCopy replaces destination with source.
func pixelCopy(s, _ uint32) uint32 {
	return s
}

// pixelAdd adds source and destination (clamped to 255).
func pixelAdd(s, d uint32) uint32 {
	return AddSat(s, d)
}

// pixelSub subtracts source from destination (clamped to 0).
func pixelSub(s, d uint32) uint32 {
	return SubSat(d, s)
}

// pixelMask keeps destination where source is opaque.
// Formula: D * Sa
func pixelMask(s, d uint32) uint32 {
	return MulAlpha(d, Alpha(s))
}

// pixelMul multiplies source and destination.
// Formula: S * D / 255
func pixelMul(s, d uint32) uint32 {
	return Mul4(d, s)
}
