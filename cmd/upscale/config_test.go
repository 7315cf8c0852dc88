package main

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/upscale"
)

func TestParseTint(t *testing.T) {
	half := 0.5
	zero := 0.0
	bad := 1.5

	tests := []struct {
		name    string
		hex     string
		alpha   *float64
		want    upscale.Color
		wantErr bool
	}{
		{"none", "", nil, upscale.White, false},
		{"opaque orange", "#ff8000", nil, 0xFFFF8000, false},
		{"half white", "", &half, 0x80808080, false},
		{"half red", "#ff0000", &half, 0x80800000, false},
		{"transparent", "#123456", &zero, 0x00000000, false},
		{"bad hex", "orange", nil, 0, true},
		{"bad alpha", "#ffffff", &bad, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTint(tt.hex, tt.alpha)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTint() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseTint() = %08x, want %08x", uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestParseOpAndKernel(t *testing.T) {
	if op, err := parseOp(""); err != nil || op != upscale.OpCopy {
		t.Errorf("parseOp(\"\") = %v, %v, want Copy", op, err)
	}
	if op, err := parseOp("Blend"); err != nil || op != upscale.OpBlend {
		t.Errorf("parseOp(Blend) = %v, %v, want Blend", op, err)
	}
	if _, err := parseOp("Screen"); err == nil {
		t.Error("parseOp(Screen) should fail")
	}
	if k, err := parseKernel("scalar"); err != nil || k != upscale.KernelScalar {
		t.Errorf("parseKernel(scalar) = %v, %v", k, err)
	}
	if _, err := parseKernel("gpu"); err == nil {
		t.Error("parseKernel(gpu) should fail")
	}
}

func TestOutputSize(t *testing.T) {
	tests := []struct {
		sw, sh, w, h int
		wantW, wantH int
	}{
		{100, 50, 0, 0, 100, 50},
		{100, 50, 300, 0, 300, 150},
		{100, 50, 0, 25, 50, 25},
		{100, 50, 7, 9, 7, 9},
		{1000, 1, 3, 0, 3, 1},
	}
	for _, tt := range tests {
		w, h := outputSize(tt.sw, tt.sh, tt.w, tt.h)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("outputSize(%d, %d, %d, %d) = %d, %d, want %d, %d",
				tt.sw, tt.sh, tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.toml")
	data := `workers = 3
kernel = "scalar"

[[jobs]]
in = "a.png"
out = "a@2x.png"
width = 64

[[jobs]]
in = "b.webp"
out = "b.png"
op = "Blend"
tint = "#00ff00"
tint_alpha = 0.25
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := readConfig(path)
	if err != nil {
		t.Fatalf("readConfig() error = %v", err)
	}
	if cfg.Workers != 3 || cfg.Kernel != "scalar" {
		t.Errorf("cfg = %+v, want workers 3 kernel scalar", cfg)
	}
	if len(cfg.Jobs) != 2 {
		t.Fatalf("len(Jobs) = %d, want 2", len(cfg.Jobs))
	}
	if cfg.Jobs[0].Width != 64 || cfg.Jobs[0].TintAlpha != nil {
		t.Errorf("Jobs[0] = %+v", cfg.Jobs[0])
	}
	if a := cfg.Jobs[1].TintAlpha; a == nil || *a != 0.25 {
		t.Errorf("Jobs[1].TintAlpha = %v, want 0.25", a)
	}
}

func TestReadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.toml")
	data := "[[jobs]]\nin = \"a.png\"\nout = \"b.png\"\nscale = 2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readConfig(path); err == nil {
		t.Error("readConfig() should reject unknown keys")
	}
}

func TestJobRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	src := upscale.NewImage(2, 1)
	src.Pix[0], src.Pix[1] = 0xFF000000, 0xFF0000FF
	if err := save(in, src); err != nil {
		t.Fatal(err)
	}

	pool := upscale.NewPool(1)
	defer pool.Close()

	j := job{In: in, Out: filepath.Join(dir, "out.png"), Width: 4}
	if err := j.run(pool); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got, err := load(j.Out)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint32{0xFF000000, 0xFF000055, 0xFF0000AA, 0xFF0000FF}
	if got.Width != 4 || got.Height != 2 {
		// Height follows the aspect ratio: 1 * 4 / 2 rounds to 2.
		t.Fatalf("size = %dx%d, want 4x2", got.Width, got.Height)
	}
	for i, w := range want {
		if got.Pix[i] != w {
			t.Errorf("pixel %d = %08x, want %08x", i, got.Pix[i], w)
		}
	}
}

func TestLoadJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.jpg")
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	img.SetRGBA(0, 0, color.RGBA{R: 0xFF, A: 0xFF})

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := load(path)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if got.Width != 8 || got.Height != 6 {
		t.Errorf("size = %dx%d, want 8x6", got.Width, got.Height)
	}
	if got.HasAlpha {
		t.Error("HasAlpha = true for a JPEG")
	}
}
