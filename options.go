package upscale

import (
	"github.com/gogpu/upscale/internal/blend"
	"github.com/gogpu/upscale/internal/interp"
)

// Op is a compositing operator.
type Op = blend.Op

// Compositing operators. All work on premultiplied samples.
const (
	OpBlend = blend.OpBlend // S + D*(1-Sa)
	OpCopy  = blend.OpCopy  // S
	OpAdd   = blend.OpAdd   // S + D, clamped
	OpSub   = blend.OpSub   // D - S, clamped
	OpMask  = blend.OpMask  // D*Sa
	OpMul   = blend.OpMul   // S*D
)

// KernelMode selects the interpolation kernel.
type KernelMode = interp.Mode

const (
	// KernelAuto uses the 16-lane kernel when the CPU reports a vector unit.
	KernelAuto = interp.ModeAuto

	// KernelScalar forces the one-pixel-at-a-time reference kernel.
	KernelScalar = interp.ModeScalar

	// KernelWide forces the 16-lane kernel.
	KernelWide = interp.ModeWide
)

// MaxExtent is the largest supported region width or height.
const MaxExtent = interp.MaxExtent

// DefaultSpan is the width of the scanline buffer used when no scratch is
// supplied. Wider clips are processed in spans of this many pixels.
const DefaultSpan = 512

// Option configures a single scale call.
//
// Example:
//
//	scratch := make([]uint32, 2048)
//	res, err := upscale.ScaleAndComposite(dst, src, p,
//	    upscale.WithScratch(scratch),
//	    upscale.WithKernel(upscale.KernelScalar))
type Option func(*options)

// options holds optional configuration for a scale call.
type options struct {
	scratch  []uint32
	kernel   KernelMode
	noDirect bool
}

// defaultOptions returns the default call options.
func defaultOptions() options {
	return options{
		scratch: nil, // Falls back to a DefaultSpan array
		kernel:  KernelAuto,
	}
}

// WithScratch supplies the scanline buffer. Its length bounds the span
// width; the buffer must not be shared with a concurrent call.
// A nil or empty buffer restores the default.
func WithScratch(buf []uint32) Option {
	return func(o *options) {
		o.scratch = buf
	}
}

// WithKernel selects the interpolation kernel.
func WithKernel(mode KernelMode) Option {
	return func(o *options) {
		o.kernel = mode
	}
}

// WithoutDirectScale forces the scanline + compositing path even when
// interpolated samples could be written straight into the destination.
func WithoutDirectScale() Option {
	return func(o *options) {
		o.noDirect = true
	}
}
