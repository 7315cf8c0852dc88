package upscale

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.Width <= r.X+r.Width &&
		o.Y+o.Height <= r.Y+r.Height
}

// Intersect returns the largest rectangle contained in both r and o.
// The result is the zero Rect when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1 := min(r.X+r.Width, o.X+o.Width)
	y1 := min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Point is a pixel position.
type Point struct {
	X, Y int
}

// Color is a premultiplied ARGB color packed as 0xAARRGGBB.
type Color uint32

// White is the identity color multiplier.
const White Color = 0xFFFFFFFF

// ARGB packs premultiplied channel values into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// Image is a buffer of premultiplied ARGB samples.
//
// The scaler only borrows an Image for the duration of one call: the source
// is read, the destination rows inside the clip are written, and no
// reference is kept afterwards.
type Image struct {
	// Pix holds the samples; pixel (x, y) is Pix[y*Stride+x].
	Pix []uint32

	// Stride is the number of samples per row, at least Width.
	Stride int

	Width, Height int

	// HasAlpha is set when any sample may be non-opaque.
	HasAlpha bool

	// SparseAlpha hints that nearly all samples are either fully opaque or
	// fully transparent.
	SparseAlpha bool
}

// NewImage allocates a transparent width x height image with HasAlpha set.
func NewImage(width, height int) *Image {
	return &Image{
		Pix:      make([]uint32, width*height),
		Stride:   width,
		Width:    width,
		Height:   height,
		HasAlpha: true,
	}
}

// Bounds returns the rectangle covering the whole image.
func (img *Image) Bounds() Rect {
	return Rect{Width: img.Width, Height: img.Height}
}

// Row returns the Width samples of row y.
func (img *Image) Row(y int) []uint32 {
	start := y * img.Stride
	return img.Pix[start : start+img.Width]
}

// At returns the sample at (x, y), or 0 outside the image.
func (img *Image) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return 0
	}
	return img.Pix[y*img.Stride+x]
}

// Set stores c at (x, y). Coordinates outside the image are ignored.
func (img *Image) Set(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return
	}
	img.Pix[y*img.Stride+x] = c
}

// Fill sets every sample to c.
func (img *Image) Fill(c uint32) {
	for y := range img.Height {
		row := img.Row(y)
		for x := range row {
			row[x] = c
		}
	}
}

// valid reports whether the descriptor is internally consistent.
func (img *Image) valid() bool {
	return img.Width > 0 && img.Height > 0 && img.Stride >= img.Width &&
		len(img.Pix) >= (img.Height-1)*img.Stride+img.Width
}

// Mask is an 8-bit coverage buffer. 0 leaves the destination untouched and
// 255 applies the operator fully.
type Mask struct {
	// Pix holds coverage; pixel (x, y) is Pix[y*Stride+x].
	Pix    []uint8
	Stride int

	Width, Height int
}

// NewMask allocates a width x height mask with zero coverage.
func NewMask(width, height int) *Mask {
	return &Mask{
		Pix:    make([]uint8, width*height),
		Stride: width,
		Width:  width,
		Height: height,
	}
}

// Fill sets every coverage value to v.
func (m *Mask) Fill(v uint8) {
	for y := range m.Height {
		row := m.Pix[y*m.Stride : y*m.Stride+m.Width]
		for x := range row {
			row[x] = v
		}
	}
}

func (m *Mask) valid() bool {
	return m.Width > 0 && m.Height > 0 && m.Stride >= m.Width &&
		len(m.Pix) >= (m.Height-1)*m.Stride+m.Width
}

// span returns n coverage values starting at mask position (x, y). Reads
// outside the mask repeat its nearest edge; buf backs the result in that
// case and must hold at least n values.
func (m *Mask) span(x, y, n int, buf []uint8) []uint8 {
	y = min(max(y, 0), m.Height-1)
	row := m.Pix[y*m.Stride : y*m.Stride+m.Width]
	if x >= 0 && x+n <= m.Width {
		return row[x : x+n]
	}
	out := buf[:n]
	last := m.Width - 1
	for i := range out {
		out[i] = row[min(max(x+i, 0), last)]
	}
	return out
}

// Result reports the effect of a scale call on the destination.
type Result struct {
	// DstHasAlpha is the destination's "has alpha" flag after the call.
	DstHasAlpha bool
}

// Apply stores the flag on dst for callers that keep it on the image.
func (r Result) Apply(dst *Image) {
	dst.HasAlpha = r.DstHasAlpha
}
