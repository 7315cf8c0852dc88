package wide

// Lanes is the number of elements processed per batch.
const Lanes = 16

// U16x16 represents 16 uint16 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
type U16x16 [Lanes]uint16

// SplatU16 creates U16x16 with all elements set to n.
func SplatU16(n uint16) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
func (v U16x16) Add(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v U16x16) Sub(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
// Callers keep products within uint16; interpolation of 8-bit channels by
// weights in [0, 256] never exceeds 255*256.
func (v U16x16) Mul(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Inv256 computes 256 - v for each element (complement of a 256-step weight).
func (v U16x16) Inv256() U16x16 {
	var result U16x16
	for i := range v {
		result[i] = 256 - v[i]
	}
	return result
}

// Shr shifts each element right by n bits.
func (v U16x16) Shr(n uint) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] >> n
	}
	return result
}
