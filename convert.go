package upscale

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// sparseRatio is the largest share of partially transparent samples
// (1/sparseRatio) for which FromImage sets SparseAlpha.
const sparseRatio = 16

// FromImage converts img to a premultiplied ARGB Image and derives the
// HasAlpha and SparseAlpha hints from its samples.
func FromImage(img image.Image) *Image {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	b := rgba.Bounds()
	out := NewImage(b.Dx(), b.Dy())
	partial, transparent := 0, 0
	for y := range out.Height {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+out.Width*4]
		row := out.Row(y)
		for x := range row {
			p := src[x*4 : x*4+4 : x*4+4]
			row[x] = uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
			switch p[3] {
			case 0xFF:
			case 0:
				transparent++
			default:
				partial++
			}
		}
	}
	out.HasAlpha = partial+transparent > 0
	out.SparseAlpha = out.HasAlpha && partial*sparseRatio <= out.Width*out.Height
	return out
}

// ToRGBA converts img to a standard library RGBA image. Both use
// premultiplied alpha, so no arithmetic is involved.
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := range img.Height {
		dst := out.Pix[y*out.Stride : y*out.Stride+img.Width*4]
		for x, c := range img.Row(y) {
			p := dst[x*4 : x*4+4 : x*4+4]
			p[0] = uint8(c >> 16)
			p[1] = uint8(c >> 8)
			p[2] = uint8(c)
			p[3] = uint8(c >> 24)
		}
	}
	return out
}

// MaskFromImage builds a mask from the alpha channel of img.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())

	if a, ok := img.(*image.Alpha); ok {
		for y := range m.Height {
			off := (y+b.Min.Y-a.Rect.Min.Y)*a.Stride + (b.Min.X - a.Rect.Min.X)
			copy(m.Pix[y*m.Stride:y*m.Stride+m.Width], a.Pix[off:off+m.Width])
		}
		return m
	}

	for y := range m.Height {
		for x := range m.Width {
			c := color.AlphaModel.Convert(img.At(x+b.Min.X, y+b.Min.Y)).(color.Alpha)
			m.Pix[y*m.Stride+x] = c.A
		}
	}
	return m
}
