package upscale

import (
	"github.com/gogpu/upscale/internal/blend"
	"github.com/gogpu/upscale/internal/interp"
)

// scaler carries the per-call state of one ScaleAndComposite invocation.
// One is built per call and never shared between goroutines.
type scaler struct {
	dst, src *Image
	g        geometry
	kernel   interp.Kernel

	// direct writes interpolated samples straight into destination rows.
	direct bool

	// Scanline path only.
	fn         blend.SpanFunc
	tint       blend.SpanFunc // nil without a multiplier
	col        uint32
	mask       *Mask
	maskOrigin Point
	line       []uint32
	mline      []uint8

	lineBuf  [DefaultSpan]uint32
	mlineBuf [DefaultSpan]uint8
}

// rowPlan holds the source rows feeding one destination row.
type rowPlan struct {
	row0, row1 []uint32
	wy         uint32
}

func newScaler(dst, src *Image, p *Params, g geometry, o *options) *scaler {
	s := &scaler{
		dst:    dst,
		src:    src,
		g:      g,
		kernel: interp.Select(o.kernel),
		direct: !o.noDirect && directScale(src, p),
	}
	if s.direct {
		return s
	}

	s.fn = blend.Select(p.Op, spanFlags(dst, src, p))
	if p.Multiplier != White {
		s.tint = blend.Tint()
	}
	s.col = uint32(p.Multiplier)
	s.mask = p.Mask
	s.maskOrigin = p.MaskOrigin

	s.line = s.lineBuf[:]
	if len(o.scratch) > 0 {
		s.line = o.scratch
	}
	s.mline = s.mlineBuf[:]
	if s.mask != nil && len(s.line) > len(s.mline) {
		// Clamped mask spans are staged in mline.
		s.line = s.line[:len(s.mline)]
	}
	return s
}

// srcRow returns row y of the source region.
func (s *scaler) srcRow(y int) []uint32 {
	r := s.g.src
	start := (r.Y+y)*s.src.Stride + r.X
	return s.src.Pix[start : start+r.Width]
}

// planRow selects the source rows for clip row j.
func (s *scaler) planRow(j int, rp *rowPlan) {
	if s.g.axis == axisHorizontal {
		rp.row0 = s.srcRow(s.g.offY + j)
		rp.row1 = rp.row0
		rp.wy = 0
		return
	}

	pos := s.g.startY + interp.Fixed(j)*s.g.stepY
	y, wy := pos.Int(), pos.Weight()
	last := s.g.src.Height - 1
	if y >= last {
		y, wy = last, 0
	}
	rp.row0 = s.srcRow(y)
	rp.row1 = s.srcRow(min(y+1, last))
	rp.wy = wy
}

// fill interpolates clip columns [x0, x0+len(out)) of the planned row.
func (s *scaler) fill(out []uint32, x0 int, rp *rowPlan) {
	g := &s.g
	switch g.axis {
	case axisHorizontal:
		s.kernel.Horizontal(out, rp.row0, g.startX+interp.Fixed(x0)*g.stepX, g.stepX)
	case axisVertical:
		x := g.offX + x0
		s.kernel.Vertical(out, rp.row0[x:], rp.row1[x:], rp.wy)
	default:
		s.kernel.Bilinear(out, rp.row0, rp.row1, g.startX+interp.Fixed(x0)*g.stepX, g.stepX, rp.wy)
	}
}

// run walks the clip row by row. The destination row window advances by
// one stride per iteration and never leaves the clip.
func (s *scaler) run() {
	clip := s.g.clip
	var rp rowPlan

	for j := range clip.Height {
		s.planRow(j, &rp)

		start := (clip.Y+j)*s.dst.Stride + clip.X
		drow := s.dst.Pix[start : start+clip.Width]

		if s.direct {
			s.fill(drow, 0, &rp)
			continue
		}
		s.composite(drow, clip.Y+j, &rp)
	}
}

// composite produces one destination row through the scanline buffer.
func (s *scaler) composite(drow []uint32, y int, rp *rowPlan) {
	span := len(s.line)
	for x0 := 0; x0 < len(drow); x0 += span {
		n := min(span, len(drow)-x0)
		out := s.line[:n]
		s.fill(out, x0, rp)
		if s.tint != nil {
			s.tint(out, out, nil, s.col)
		}

		var m []uint8
		if s.mask != nil {
			mx := s.g.clip.X + x0 - s.maskOrigin.X
			m = s.mask.span(mx, y-s.maskOrigin.Y, n, s.mline)
		}
		s.fn(drow[x0:x0+n], out, m, s.col)
	}
}
