// Command upscale resizes images with the upscale smooth scaler.
//
// Single image:
//
//	upscale -in photo.webp -out big.png -width 1920 -height 1080
//
// Composite a tinted, masked overlay onto an existing image:
//
//	upscale -in icon.png -out frame.png -onto frame.png -op Blend \
//	    -tint '#ff8000' -tint-alpha 0.5 -mask vignette.png
//
// Batch jobs from a TOML file:
//
//	upscale -config jobs.toml
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/upscale"
)

func main() {
	var (
		in        = flag.String("in", "", "input image (png, jpeg, bmp, tiff, webp)")
		out       = flag.String("out", "out.png", "output PNG file")
		onto      = flag.String("onto", "", "composite onto this image instead of a transparent canvas")
		width     = flag.Int("width", 0, "output width (0 keeps aspect ratio from -height)")
		height    = flag.Int("height", 0, "output height (0 keeps aspect ratio from -width)")
		op        = flag.String("op", "Copy", "compositing operator: Blend, Copy, Add, Sub, Mask, Mul")
		tint      = flag.String("tint", "", "color multiplier as hex, e.g. #ff8000")
		tintAlpha = flag.Float64("tint-alpha", 1, "alpha of the color multiplier in [0, 1]")
		mask      = flag.String("mask", "", "coverage mask image (alpha channel is used)")
		kernel    = flag.String("kernel", "auto", "interpolation kernel: auto, scalar, wide")
		workers   = flag.Int("workers", 0, "worker goroutines (0 uses GOMAXPROCS)")
		cfgPath   = flag.String("config", "", "TOML file with a list of jobs")
		verbose   = flag.Bool("v", false, "log scaler decisions")
	)
	flag.Parse()

	if *verbose {
		upscale.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var jobs []job
	if *cfgPath != "" {
		cfg, err := readConfig(*cfgPath)
		if err != nil {
			log.Fatalf("Couldn't read config file: %v", err)
		}
		jobs = cfg.Jobs
		if cfg.Workers != 0 && *workers == 0 {
			*workers = cfg.Workers
		}
		if cfg.Kernel != "" && *kernel == "auto" {
			*kernel = cfg.Kernel
		}
	} else {
		if *in == "" {
			flag.Usage()
			os.Exit(2)
		}
		jobs = []job{{
			In:        *in,
			Out:       *out,
			Onto:      *onto,
			Width:     *width,
			Height:    *height,
			Op:        *op,
			Tint:      *tint,
			TintAlpha: tintAlpha,
			Mask:      *mask,
		}}
	}

	mode, err := parseKernel(*kernel)
	if err != nil {
		log.Fatal(err)
	}

	pool := upscale.NewPool(*workers)
	defer pool.Close()

	for _, j := range jobs {
		if err := j.run(pool, upscale.WithKernel(mode)); err != nil {
			log.Fatalf("%s: %v", j.In, err)
		}
		log.Printf("Saved %s", j.Out)
	}
}
