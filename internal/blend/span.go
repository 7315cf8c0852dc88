package blend

// Flags describe the inputs a span function is specialized for.
type Flags struct {
	// SrcAlpha is set when source samples may be non-opaque.
	SrcAlpha bool

	// SrcSparseAlpha hints that most source samples are fully opaque or
	// fully transparent.
	SrcSparseAlpha bool

	// DstAlpha is set when the destination may hold non-opaque samples.
	DstAlpha bool

	// Mask selects the variant that reads one coverage byte per pixel.
	Mask bool

	// Mul selects the variant that modulates each source sample by a
	// constant color.
	Mul bool
}

// SpanFunc merges one span of source samples into a destination span of the
// same length. mask is read only by Mask variants and must then be at least
// len(dst) long; col is read only by Mul variants.
type SpanFunc func(dst, src []uint32, mask []uint8, col uint32)

// Select returns the span function for op specialized on f.
//
// Blending an opaque source degenerates to copy. The returned function keeps
// no state and is safe to call from multiple goroutines on disjoint spans.
func Select(op Op, f Flags) SpanFunc {
	px := selectPixel(op, f)

	switch {
	case f.Mask && f.Mul:
		return func(dst, src []uint32, mask []uint8, col uint32) {
			mask = mask[:len(dst)]
			src = src[:len(dst)]
			for i, m := range mask {
				if m == 0 {
					continue
				}
				d := dst[i]
				r := px(Mul4(src[i], col), d)
				if m != 255 {
					r = cover(d, r, uint32(m))
				}
				dst[i] = r
			}
		}
	case f.Mask:
		return func(dst, src []uint32, mask []uint8, _ uint32) {
			mask = mask[:len(dst)]
			src = src[:len(dst)]
			for i, m := range mask {
				if m == 0 {
					continue
				}
				d := dst[i]
				r := px(src[i], d)
				if m != 255 {
					r = cover(d, r, uint32(m))
				}
				dst[i] = r
			}
		}
	case f.Mul:
		return func(dst, src []uint32, _ []uint8, col uint32) {
			src = src[:len(dst)]
			for i, s := range src {
				dst[i] = px(Mul4(s, col), dst[i])
			}
		}
	case isCopy(op, f):
		return copySpan
	default:
		return func(dst, src []uint32, _ []uint8, _ uint32) {
			src = src[:len(dst)]
			for i, s := range src {
				dst[i] = px(s, dst[i])
			}
		}
	}
}

// Tint returns the color-modulate function, Select(OpCopy, Flags{Mul: true}).
// It writes Mul4(src[i], col) to dst[i] and may be called with dst and src
// aliasing the same span.
func Tint() SpanFunc {
	return Select(OpCopy, Flags{Mul: true})
}

func copySpan(dst, src []uint32, _ []uint8, _ uint32) {
	copy(dst, src)
}

// isCopy reports whether op with f reduces to a straight overwrite.
func isCopy(op Op, f Flags) bool {
	return op == OpCopy || (op == OpBlend && !f.SrcAlpha && !f.Mul)
}

func selectPixel(op Op, f Flags) PixelFunc {
	if op != OpBlend {
		return GetPixelFunc(op)
	}
	switch {
	case !f.SrcAlpha && !f.Mul:
		return pixelCopy
	case f.SrcSparseAlpha:
		return pixelBlendSparse
	case !f.DstAlpha:
		return pixelBlendOpaque
	default:
		return pixelBlend
	}
}
