package upscale

import (
	"fmt"

	"github.com/gogpu/upscale/internal/blend"
	"github.com/gogpu/upscale/internal/interp"
)

// Params describes one scale-and-composite operation.
type Params struct {
	// SrcRegion is the source rectangle to sample. It must lie inside the
	// source image.
	SrcRegion Rect

	// DstRegion is the rectangle SrcRegion is mapped onto. It may extend
	// past the destination image; only pixels inside the image are written.
	DstRegion Rect

	// Clip restricts the pixels written. It is intersected with DstRegion
	// and the destination bounds. The zero Rect means all of DstRegion.
	Clip Rect

	// Mask optionally scales coverage per destination pixel.
	Mask *Mask

	// MaskOrigin is the destination position of the mask's (0, 0).
	MaskOrigin Point

	// Multiplier modulates every interpolated sample. White means none.
	Multiplier Color

	// Op merges the interpolated samples into the destination.
	Op Op
}

// NewParams returns parameters that copy srcRegion onto dstRegion with no
// clip, mask or modulation.
func NewParams(srcRegion, dstRegion Rect) Params {
	return Params{
		SrcRegion:  srcRegion,
		DstRegion:  dstRegion,
		Clip:       dstRegion,
		Multiplier: White,
		Op:         OpCopy,
	}
}

// axis identifies which axes need resampling.
type axis uint8

const (
	axisHorizontal axis = iota // heights match: rows map 1:1
	axisVertical               // widths match: columns map 1:1
	axisBoth
)

func (a axis) String() string {
	switch a {
	case axisHorizontal:
		return "horizontal"
	case axisVertical:
		return "vertical"
	default:
		return "bilinear"
	}
}

// geometry is the validated, fixed-point mapping of one call.
type geometry struct {
	src  Rect // source region
	dst  Rect // destination region
	clip Rect // pixels actually written, inside dst and the image

	axis axis

	// Clip offsets inside dst.
	offX, offY int

	stepX, stepY   interp.Fixed
	startX, startY interp.Fixed // source coordinate of the clip's first column/row
}

// plan validates p against the images and computes the mapping.
func plan(dst, src *Image, p *Params) (geometry, error) {
	if !src.valid() {
		return geometry{}, fmt.Errorf("%w: source %dx%d stride %d", ErrInvalidImage, src.Width, src.Height, src.Stride)
	}
	if !dst.valid() {
		return geometry{}, fmt.Errorf("%w: destination %dx%d stride %d", ErrInvalidImage, dst.Width, dst.Height, dst.Stride)
	}
	if p.Mask != nil && !p.Mask.valid() {
		return geometry{}, fmt.Errorf("%w: mask %dx%d stride %d", ErrInvalidImage, p.Mask.Width, p.Mask.Height, p.Mask.Stride)
	}
	if !p.Op.IsValid() {
		return geometry{}, fmt.Errorf("%w: %d", ErrUnknownOp, p.Op)
	}

	sr, dr := p.SrcRegion, p.DstRegion
	if sr.Empty() || dr.Empty() {
		return geometry{}, fmt.Errorf("%w: source %dx%d, destination %dx%d",
			ErrInvalidRegion, sr.Width, sr.Height, dr.Width, dr.Height)
	}
	if max(sr.Width, sr.Height, dr.Width, dr.Height) > MaxExtent {
		return geometry{}, fmt.Errorf("%w: source %dx%d, destination %dx%d exceed %d",
			ErrRegionTooLarge, sr.Width, sr.Height, dr.Width, dr.Height, MaxExtent)
	}
	if !src.Bounds().Contains(sr) {
		return geometry{}, fmt.Errorf("%w: source region %+v outside %dx%d image",
			ErrInvalidRegion, sr, src.Width, src.Height)
	}

	clip := p.Clip
	if clip == (Rect{}) {
		clip = dr
	}
	clip = clip.Intersect(dr).Intersect(dst.Bounds())

	g := geometry{
		src:   sr,
		dst:   dr,
		clip:  clip,
		stepX: interp.Step(sr.Width, dr.Width),
		stepY: interp.Step(sr.Height, dr.Height),
	}
	switch {
	case dr.Height == sr.Height:
		g.axis = axisHorizontal
	case dr.Width == sr.Width:
		g.axis = axisVertical
	default:
		g.axis = axisBoth
	}
	if !clip.Empty() {
		g.offX = clip.X - dr.X
		g.offY = clip.Y - dr.Y
		g.startX = interp.Fixed(int64(g.offX) * int64(g.stepX))
		g.startY = interp.Fixed(int64(g.offY) * int64(g.stepY))
	}
	return g, nil
}

// ScaleAndComposite resamples p.SrcRegion of src onto p.DstRegion of dst
// with bilinear interpolation and merges the result into the pixels of
// p.Clip using p.Op, optionally masked by p.Mask and modulated by
// p.Multiplier.
//
// The destination descriptor is not modified apart from its pixels; the
// returned Result carries the new "has alpha" flag. On error nothing is
// written.
//
// Example:
//
//	p := upscale.NewParams(src.Bounds(), upscale.Rect{Width: 640, Height: 480})
//	res, err := upscale.ScaleAndComposite(dst, src, p)
//	if err != nil {
//	    return err
//	}
//	res.Apply(dst)
func ScaleAndComposite(dst, src *Image, p Params, opts ...Option) (Result, error) {
	if dst == nil || src == nil {
		return Result{}, ErrNilImage
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := plan(dst, src, &p)
	if err != nil {
		logRejected(err)
		return Result{}, err
	}
	if g.clip.Empty() {
		return Result{DstHasAlpha: dst.HasAlpha}, nil
	}

	s := newScaler(dst, src, &p, g, &o)
	logScale(s, p.Op)
	s.run()

	return Result{DstHasAlpha: dst.HasAlpha || (p.Op == OpCopy && srcAlpha(src, &p))}, nil
}

// srcAlpha reports whether the samples reaching the operator may be
// non-opaque once the multiplier is applied.
func srcAlpha(src *Image, p *Params) bool {
	return src.HasAlpha || (p.Multiplier != White && p.Multiplier.A() != 0xFF)
}

// directScale reports whether interpolated samples can be written straight
// into the destination: no modulation, no mask, and an operator that
// reduces to overwrite.
func directScale(src *Image, p *Params) bool {
	if p.Multiplier != White || p.Mask != nil {
		return false
	}
	return p.Op == OpCopy || (p.Op == OpBlend && !src.HasAlpha)
}

// spanFlags describes the scanline handed to the compositing function.
// Tinting happens before compositing, so the multiplier only changes the
// alpha hints.
func spanFlags(dst, src *Image, p *Params) blend.Flags {
	return blend.Flags{
		SrcAlpha:       srcAlpha(src, p),
		SrcSparseAlpha: src.SparseAlpha && p.Multiplier.A() == 0xFF,
		DstAlpha:       dst.HasAlpha,
		Mask:           p.Mask != nil,
	}
}

// Resize returns a new width x height image holding all of src scaled with
// the copy operator.
func Resize(src *Image, width, height int, opts ...Option) (*Image, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidRegion, width, height)
	}
	if max(width, height) > MaxExtent {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrRegionTooLarge, width, height, MaxExtent)
	}
	dst := NewImage(width, height)
	if _, err := ScaleAndComposite(dst, src, NewParams(src.Bounds(), dst.Bounds()), opts...); err != nil {
		return nil, err
	}
	dst.HasAlpha = src.HasAlpha
	dst.SparseAlpha = src.SparseAlpha
	return dst, nil
}
