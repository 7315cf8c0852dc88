package interp

// Lerp interpolates two packed ARGB samples with a weight in [0, 256].
//
// Each 8-bit channel becomes lo + w*(hi-lo)/256, computed as
// (lo*(256-w) + hi*w) >> 8 so the result never leaves [lo, hi].
func Lerp(lo, hi, w uint32) uint32 {
	if lo == hi || w == 0 {
		return lo
	}
	if w >= 256 {
		return hi
	}
	inv := 256 - w
	// Red and blue share one multiply, alpha and green another.
	rb := ((lo&0x00ff00ff)*inv + (hi&0x00ff00ff)*w) >> 8
	ag := ((lo>>8)&0x00ff00ff)*inv + ((hi>>8)&0x00ff00ff)*w
	return (ag & 0xff00ff00) | (rb & 0x00ff00ff)
}
