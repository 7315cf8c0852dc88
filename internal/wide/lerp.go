package wide

// Channels holds 16 ARGB pixels in Structure-of-Arrays layout.
//
//	A: [A0, A1, ..., A15]
//	R: [R0, R1, ..., R15]
//	G: [G0, G1, ..., G15]
//	B: [B0, B1, ..., B15]
type Channels struct {
	A, R, G, B U16x16
}

// Load unpacks 16 packed 0xAARRGGBB pixels.
func (c *Channels) Load(px *[Lanes]uint32) {
	for i, p := range px {
		c.A[i] = uint16(p >> 24)
		c.R[i] = uint16(p>>16) & 0xff
		c.G[i] = uint16(p>>8) & 0xff
		c.B[i] = uint16(p) & 0xff
	}
}

// Store packs 16 pixels back into 0xAARRGGBB form.
func (c *Channels) Store(px *[Lanes]uint32) {
	for i := range px {
		px[i] = uint32(c.A[i]&0xff)<<24 |
			uint32(c.R[i]&0xff)<<16 |
			uint32(c.G[i]&0xff)<<8 |
			uint32(c.B[i]&0xff)
	}
}

// LerpARGB interpolates 16 pixel pairs lane by lane.
//
// Each channel is computed as (lo*(256-w) + hi*w) >> 8, which equals
// lo + w*(hi-lo)/256 rounded toward negative infinity. Weights must lie in
// [0, 256]; w = 0 yields lo and w = 256 yields hi exactly.
func LerpARGB(out, lo, hi *[Lanes]uint32, w *U16x16) {
	var l, h Channels
	l.Load(lo)
	h.Load(hi)

	inv := w.Inv256()
	var r Channels
	r.A = l.A.Mul(inv).Add(h.A.Mul(*w)).Shr(8)
	r.R = l.R.Mul(inv).Add(h.R.Mul(*w)).Shr(8)
	r.G = l.G.Mul(inv).Add(h.G.Mul(*w)).Shr(8)
	r.B = l.B.Mul(inv).Add(h.B.Mul(*w)).Shr(8)
	r.Store(out)
}
