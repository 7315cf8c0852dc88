// Package interp implements the fixed-point resampling kernels of the smooth
// scaler.
//
// Coordinates are 16.16 fixed-point values. The integer part selects the
// lower source sample and the top 8 bits of the fraction select a weight in
// [1, 256] toward the upper neighbor. A zero fraction selects the lower
// sample exactly, which keeps 1:1 mappings lossless.
package interp

// Fixed is a 16.16 fixed-point coordinate.
type Fixed int32

// One is 1.0 in 16.16 fixed point.
const One Fixed = 1 << 16

// MaxExtent is the largest region extent for which (extent-1)<<16 still
// fits a Fixed.
const MaxExtent = 1<<15 - 1

// Step returns the per-destination-unit advance for mapping src samples
// onto dst samples. When both extents exceed one the end points are pinned
// to each other, so the last destination sample lands on the last source
// sample; otherwise the plain ratio is used.
func Step(src, dst int) Fixed {
	if src > 1 && dst > 1 {
		return Fixed(((src - 1) << 16) / (dst - 1))
	}
	return Fixed((src << 16) / dst)
}

// Int returns the integer part.
func (f Fixed) Int() int {
	return int(f >> 16)
}

// Frac returns the fractional part in [0, 0xffff].
func (f Fixed) Frac() uint32 {
	return uint32(f) & 0xffff
}

// Weight returns the interpolation weight toward the upper neighbor.
// It is 0 for integral coordinates and 1 + the top fraction byte otherwise.
func (f Fixed) Weight() uint32 {
	frac := f.Frac()
	if frac == 0 {
		return 0
	}
	return 1 + (frac>>8)&0xff
}
