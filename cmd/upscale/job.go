package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	// Decoders registered with image.Decode.
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/upscale"
)

func (j *job) run(pool *upscale.Pool, opts ...upscale.Option) error {
	src, err := load(j.In)
	if err != nil {
		return err
	}
	width, height := outputSize(src.Width, src.Height, j.Width, j.Height)

	var dst *upscale.Image
	if j.Onto != "" {
		if dst, err = load(j.Onto); err != nil {
			return err
		}
		if j.Width == 0 && j.Height == 0 {
			width, height = dst.Width, dst.Height
		}
	} else {
		dst = upscale.NewImage(width, height)
		dst.SparseAlpha = true
	}

	p := upscale.NewParams(src.Bounds(), upscale.Rect{Width: width, Height: height})
	if p.Op, err = parseOp(j.Op); err != nil {
		return err
	}
	if p.Multiplier, err = parseTint(j.Tint, j.TintAlpha); err != nil {
		return err
	}
	if j.Mask != "" {
		m, err := loadImage(j.Mask)
		if err != nil {
			return err
		}
		p.Mask = upscale.MaskFromImage(m)
	}

	res, err := pool.Scale(dst, src, p, opts...)
	if err != nil {
		return err
	}
	res.Apply(dst)
	return save(j.Out, dst)
}

// outputSize fills in a missing dimension from the source aspect ratio.
func outputSize(sw, sh, w, h int) (int, int) {
	switch {
	case w <= 0 && h <= 0:
		return sw, sh
	case w <= 0:
		return max(1, (sw*h+sh/2)/sh), h
	case h <= 0:
		return w, max(1, (sh*w+sw/2)/sw)
	}
	return w, h
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func load(path string) (*upscale.Image, error) {
	img, err := loadImage(path)
	if err != nil {
		return nil, err
	}
	return upscale.FromImage(img), nil
}

func save(path string, img *upscale.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img.ToRGBA()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
