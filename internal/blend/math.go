package blend

// Fast math on packed 0xAARRGGBB samples.
//
// Two channels are processed per 32-bit multiply by splitting a pixel into
// its red/blue and alpha/green halves (mask 0x00ff00ff). Every lane stays
// below 1<<16, so lanes never carry into each other.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/

const (
	lanes     = 0x00ff00ff
	roundHalf = 0x00800080
	alphaMask = 0xff000000
)

// Alpha returns the alpha channel of c.
func Alpha(c uint32) uint32 {
	return c >> 24
}

// div255 divides x by 255 exactly for x in [0, 65535].
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
func div255(x uint32) uint32 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two channel values and divides by 255 with rounding.
func mulDiv255(a, b uint32) uint32 {
	return div255(a*b + 127)
}

// MulAlpha scales all four channels of c by a/255, rounding to nearest.
func MulAlpha(c, a uint32) uint32 {
	switch a {
	case 0:
		return 0
	case 255:
		return c
	}
	rb := (c&lanes)*a + roundHalf
	rb = ((rb + ((rb >> 8) & lanes)) >> 8) & lanes
	ag := ((c>>8)&lanes)*a + roundHalf
	ag = (ag + ((ag >> 8) & lanes)) &^ lanes
	return ag | rb
}

// Mul4 multiplies c by col channel by channel, each product divided by 255.
// It is the color-modulate step: Mul4(c, 0xFFFFFFFF) == c.
func Mul4(c, col uint32) uint32 {
	if col == 0xFFFFFFFF {
		return c
	}
	return mulDiv255(c>>24, col>>24)<<24 |
		mulDiv255((c>>16)&0xff, (col>>16)&0xff)<<16 |
		mulDiv255((c>>8)&0xff, (col>>8)&0xff)<<8 |
		mulDiv255(c&0xff, col&0xff)
}

// AddSat adds a and b channel by channel, clamping each channel to 255.
func AddSat(a, b uint32) uint32 {
	rb := (a & lanes) + (b & lanes)
	rb |= 0x01000100 - ((rb >> 8) & 0x00010001)
	rb &= lanes
	ag := ((a >> 8) & lanes) + ((b >> 8) & lanes)
	ag |= 0x01000100 - ((ag >> 8) & 0x00010001)
	ag &= lanes
	return ag<<8 | rb
}

// SubSat subtracts b from a channel by channel, clamping each channel to 0.
func SubSat(a, b uint32) uint32 {
	var out uint32
	for shift := uint(0); shift < 32; shift += 8 {
		x := (a >> shift) & 0xff
		y := (b >> shift) & 0xff
		if x > y {
			out |= (x - y) << shift
		}
	}
	return out
}

// cover blends the operator result r over the original destination d with
// coverage m: r*m + d*(1-m).
func cover(d, r, m uint32) uint32 {
	return AddSat(MulAlpha(r, m), MulAlpha(d, 255-m))
}
