package upscale

import "testing"

// BenchmarkScaleAndComposite measures upscaling a 320x240 source to common
// output sizes through each path.
func BenchmarkScaleAndComposite(b *testing.B) {
	sizes := []struct {
		name          string
		width, height int
	}{
		{"640x480", 640, 480},
		{"1280x720", 1280, 720},
		{"1920x1080", 1920, 1080},
	}
	src := noise(320, 240, 1, true)

	for _, size := range sizes {
		dst := NewImage(size.width, size.height)
		direct := NewParams(src.Bounds(), dst.Bounds())

		blended := direct
		blended.Op = OpBlend
		blended.Multiplier = 0xC0C0C0C0

		for _, bc := range []struct {
			name string
			p    Params
			opts []Option
		}{
			{"direct", direct, nil},
			{"direct_scalar", direct, []Option{WithKernel(KernelScalar)}},
			{"scanline_blend", blended, nil},
		} {
			b.Run(size.name+"/"+bc.name, func(b *testing.B) {
				b.SetBytes(int64(size.width * size.height * 4))
				b.ReportAllocs()
				for b.Loop() {
					if _, err := ScaleAndComposite(dst, src, bc.p, bc.opts...); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkPoolScale compares the band-parallel path with a single call.
func BenchmarkPoolScale(b *testing.B) {
	src := noise(480, 270, 2, true)
	dst := NewImage(1920, 1080)
	p := NewParams(src.Bounds(), dst.Bounds())
	pool := NewPool(0)
	defer pool.Close()

	b.SetBytes(1920 * 1080 * 4)
	for b.Loop() {
		if _, err := pool.Scale(dst, src, p); err != nil {
			b.Fatal(err)
		}
	}
}
