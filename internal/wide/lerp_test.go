package wide

import "testing"

// lerpRef is the per-channel reference for LerpARGB.
func lerpRef(lo, hi, w uint32) uint32 {
	var out uint32
	for shift := uint(0); shift < 32; shift += 8 {
		l := (lo >> shift) & 0xff
		h := (hi >> shift) & 0xff
		out |= (((l*(256-w) + h*w) >> 8) & 0xff) << shift
	}
	return out
}

func TestChannelsRoundTrip(t *testing.T) {
	var px, back [Lanes]uint32
	for i := range px {
		px[i] = 0x80000000 | uint32(i)<<16 | uint32(255-i)<<8 | uint32(i*3)
	}
	var c Channels
	c.Load(&px)
	c.Store(&back)
	if back != px {
		t.Errorf("Store(Load(px)) = %08x, want %08x", back, px)
	}
}

func TestLerpARGB(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi uint32
		w      uint16
		want   uint32
	}{
		{"weight zero keeps lower", 0xFF000000, 0xFF0000FF, 0, 0xFF000000},
		{"weight 256 reaches upper", 0xFF000000, 0xFF0000FF, 256, 0xFF0000FF},
		{"one third", 0xFF000000, 0xFF0000FF, 86, 0xFF000055},
		{"two thirds", 0xFF000000, 0xFF0000FF, 171, 0xFF0000AA},
		{"identical", 0x7F102030, 0x7F102030, 200, 0x7F102030},
		{"descending", 0xFFFFFFFF, 0x00000000, 128, 0x7F7F7F7F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lo, hi, out [Lanes]uint32
			for i := range lo {
				lo[i], hi[i] = tt.lo, tt.hi
			}
			w := SplatU16(tt.w)
			LerpARGB(&out, &lo, &hi, &w)
			for i, got := range out {
				if got != tt.want {
					t.Errorf("lane %d = %08x, want %08x", i, got, tt.want)
				}
			}
		})
	}
}

func TestLerpARGBMatchesReference(t *testing.T) {
	var lo, hi, out [Lanes]uint32
	var w U16x16
	seed := uint32(12345)
	next := func() uint32 {
		seed = seed*1664525 + 1013904223
		return seed
	}
	for round := 0; round < 64; round++ {
		for i := range lo {
			lo[i] = next()
			hi[i] = next()
			w[i] = uint16(next() % 257)
		}
		LerpARGB(&out, &lo, &hi, &w)
		for i := range out {
			if want := lerpRef(lo[i], hi[i], uint32(w[i])); out[i] != want {
				t.Fatalf("round %d lane %d: LerpARGB(%08x, %08x, %d) = %08x, want %08x",
					round, i, lo[i], hi[i], w[i], out[i], want)
			}
		}
	}
}
