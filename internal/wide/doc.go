// Package wide provides SIMD-friendly wide types for batch pixel interpolation.
//
// The types here are fixed-size arrays processed with simple loops so the Go
// compiler can auto-vectorize them on architectures with SSE, AVX or NEON.
// They carry the vector kernel of the smooth scaler: 16 packed ARGB pixels are
// unpacked into Structure-of-Arrays channels, interpolated lane by lane, and
// repacked.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Produce results bit-identical to the scalar reference
//
// # Usage Example
//
//	var lo, hi, out [wide.Lanes]uint32
//	var w wide.U16x16
//	// fill lo, hi with packed ARGB and w with weights in [0, 256]
//	wide.LerpARGB(&out, &lo, &hi, &w)
package wide
