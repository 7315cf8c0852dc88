package interp

// Scalar is the reference kernel. It processes one pixel at a time.
type Scalar struct{}

// Horizontal implements Kernel.
func (Scalar) Horizontal(dst, row []uint32, pos, step Fixed) {
	for i := range dst {
		lo, hi, w := sample(row, pos)
		dst[i] = Lerp(lo, hi, w)
		pos += step
	}
}

// Vertical implements Kernel.
func (Scalar) Vertical(dst, row0, row1 []uint32, w uint32) {
	if w == 0 {
		copy(dst, row0)
		return
	}
	row0 = row0[:len(dst)]
	row1 = row1[:len(dst)]
	for i := range dst {
		dst[i] = Lerp(row0[i], row1[i], w)
	}
}

// Bilinear implements Kernel.
func (Scalar) Bilinear(dst, row0, row1 []uint32, pos, step Fixed, wy uint32) {
	for i := range dst {
		lo0, hi0, wx := sample(row0, pos)
		lo1, hi1, _ := sample(row1, pos)
		dst[i] = Lerp(Lerp(lo0, hi0, wx), Lerp(lo1, hi1, wx), wy)
		pos += step
	}
}
