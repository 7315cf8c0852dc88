// Package upscale provides a fixed-point smooth scaler for premultiplied
// ARGB pixel buffers.
//
// # Overview
//
// ScaleAndComposite resamples a rectangle of a source image onto a
// rectangle of a destination image with bilinear interpolation in 16.16
// fixed point. The interpolated samples are merged into the destination
// through a compositing operator, optionally weighted by an 8-bit coverage
// mask and modulated by a constant color.
//
// # Quick Start
//
//	src := upscale.FromImage(decoded)
//	dst := upscale.NewImage(1920, 1080)
//
//	p := upscale.NewParams(src.Bounds(), dst.Bounds())
//	res, err := upscale.ScaleAndComposite(dst, src, p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res.Apply(dst)
//
// # Pixel Format
//
// Samples are premultiplied ARGB packed as 0xAARRGGBB. Images carry two
// hints: HasAlpha (some samples may be non-opaque) and SparseAlpha (nearly
// all samples are fully opaque or fully transparent). Both select faster
// compositing routines and are never derived from the pixels by the scaler.
//
// # Paths
//
// When no mask or multiplier is set and the operator reduces to overwrite,
// interpolated samples are written straight into the destination. Otherwise
// each destination row is produced into a scanline buffer in spans and
// handed to the operator. Equal heights interpolate horizontally only, equal
// widths vertically only; any other mapping is full bilinear.
//
// Samples are clamped to the edge of the source region, so regions can be
// cut out of a larger atlas without bleeding.
//
// # Concurrency
//
// ScaleAndComposite keeps no shared state; concurrent calls are safe as long
// as they write disjoint destination pixels and do not share a scratch
// buffer. Pool splits one large clip into bands and scales them in parallel.
//
// # Logging
//
// Diagnostics go to the logger installed with SetLogger. Nothing is logged
// by default.
package upscale
