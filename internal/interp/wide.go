package interp

import "github.com/gogpu/upscale/internal/wide"

// Wide processes 16 pixels per batch through internal/wide and finishes the
// tail of each span with the scalar kernel.
type Wide struct{}

// Horizontal implements Kernel.
func (Wide) Horizontal(dst, row []uint32, pos, step Fixed) {
	var lo, hi, out [wide.Lanes]uint32
	var w wide.U16x16

	n := 0
	for ; n+wide.Lanes <= len(dst); n += wide.Lanes {
		for j := range wide.Lanes {
			l, h, ww := sample(row, pos)
			lo[j], hi[j], w[j] = l, h, uint16(ww)
			pos += step
		}
		wide.LerpARGB(&out, &lo, &hi, &w)
		copy(dst[n:], out[:])
	}
	Scalar{}.Horizontal(dst[n:], row, pos, step)
}

// Vertical implements Kernel.
func (Wide) Vertical(dst, row0, row1 []uint32, w uint32) {
	if w == 0 {
		copy(dst, row0)
		return
	}
	ww := wide.SplatU16(uint16(w))

	n := 0
	for ; n+wide.Lanes <= len(dst); n += wide.Lanes {
		lo := (*[wide.Lanes]uint32)(row0[n : n+wide.Lanes])
		hi := (*[wide.Lanes]uint32)(row1[n : n+wide.Lanes])
		out := (*[wide.Lanes]uint32)(dst[n : n+wide.Lanes])
		wide.LerpARGB(out, lo, hi, &ww)
	}
	Scalar{}.Vertical(dst[n:], row0[n:], row1[n:], w)
}

// Bilinear implements Kernel.
func (Wide) Bilinear(dst, row0, row1 []uint32, pos, step Fixed, wy uint32) {
	var lo0, hi0, lo1, hi1, top, bot, out [wide.Lanes]uint32
	var wx wide.U16x16
	wv := wide.SplatU16(uint16(wy))

	n := 0
	for ; n+wide.Lanes <= len(dst); n += wide.Lanes {
		for j := range wide.Lanes {
			l0, h0, w := sample(row0, pos)
			l1, h1, _ := sample(row1, pos)
			lo0[j], hi0[j], lo1[j], hi1[j] = l0, h0, l1, h1
			wx[j] = uint16(w)
			pos += step
		}
		wide.LerpARGB(&top, &lo0, &hi0, &wx)
		wide.LerpARGB(&bot, &lo1, &hi1, &wx)
		wide.LerpARGB(&out, &top, &bot, &wv)
		copy(dst[n:], out[:])
	}
	Scalar{}.Bilinear(dst[n:], row0, row1, pos, step, wy)
}
