package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/upscale"
	"github.com/gogpu/upscale/internal/blend"
)

// config is the layout of a -config TOML file:
//
//	workers = 4
//	kernel = "wide"
//
//	[[jobs]]
//	in = "icon.png"
//	out = "icon@4x.png"
//	width = 256
type config struct {
	Workers int
	Kernel  string
	Jobs    []job
}

// job is one scale request.
type job struct {
	In        string
	Out       string
	Onto      string
	Width     int
	Height    int
	Op        string
	Tint      string
	TintAlpha *float64 `toml:"tint_alpha"` // nil means opaque
	Mask      string
}

func readConfig(path string) (*config, error) {
	cfg := config{}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys %v", undecoded)
	}
	if len(cfg.Jobs) == 0 {
		return nil, errors.New("no jobs")
	}
	for i := range cfg.Jobs {
		j := &cfg.Jobs[i]
		if j.In == "" || j.Out == "" {
			return nil, fmt.Errorf("job %d: in and out are required", i)
		}
	}
	return &cfg, nil
}

// parseOp maps an operator name to its value. The empty name is Copy.
func parseOp(s string) (upscale.Op, error) {
	if s == "" {
		return upscale.OpCopy, nil
	}
	op, ok := blend.ParseOp(s)
	if !ok {
		return 0, fmt.Errorf("unknown operator %q", s)
	}
	return op, nil
}

func parseKernel(s string) (upscale.KernelMode, error) {
	switch s {
	case "", "auto":
		return upscale.KernelAuto, nil
	case "scalar":
		return upscale.KernelScalar, nil
	case "wide":
		return upscale.KernelWide, nil
	}
	return 0, fmt.Errorf("unknown kernel %q", s)
}

// parseTint converts a hex color and an optional alpha in [0, 1] into a
// premultiplied multiplier. No color and no alpha is White.
func parseTint(hex string, alphap *float64) (upscale.Color, error) {
	alpha := 1.0
	if alphap != nil {
		alpha = *alphap
	}
	if hex == "" && alpha == 1 {
		return upscale.White, nil
	}
	if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
		return 0, fmt.Errorf("tint alpha %v outside [0, 1]", alpha)
	}
	c := colorful.Color{R: 1, G: 1, B: 1}
	if hex != "" {
		var err error
		if c, err = colorful.Hex(hex); err != nil {
			return 0, err
		}
	}
	c = colorful.Color{R: c.R * alpha, G: c.G * alpha, B: c.B * alpha}
	r, g, b := c.RGB255()
	return upscale.ARGB(uint8(math.Round(alpha*255)), r, g, b), nil
}
