package upscale

import (
	"errors"

	"github.com/gogpu/upscale/internal/parallel"
)

// Pool scales large clips on several goroutines by splitting the clip into
// horizontal bands. Bands cover disjoint destination rows and each runs a
// full ScaleAndComposite with its own scanline buffer, so the output is
// identical to a single call.
//
// A Pool is meant to live as long as the renderer using it; Close releases
// its goroutines.
type Pool struct {
	workers *parallel.WorkerPool
}

// minBandRows keeps bands from becoming too thin to amortize scheduling.
const minBandRows = 16

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	return &Pool{workers: parallel.NewWorkerPool(workers)}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers.Workers()
}

// Close stops the workers. Scale calls after Close run on the caller's
// goroutine.
func (p *Pool) Close() {
	p.workers.Close()
}

// Scale is ScaleAndComposite spread over the pool. Any WithScratch option is
// ignored because bands run concurrently.
func (p *Pool) Scale(dst, src *Image, params Params, opts ...Option) (Result, error) {
	if dst == nil || src == nil {
		return Result{}, ErrNilImage
	}
	g, err := plan(dst, src, &params)
	if err != nil {
		return Result{}, err
	}

	bands := parallel.Split(g.clip.Height, min(p.workers.Workers(), g.clip.Height/minBandRows))
	if len(bands) <= 1 {
		return ScaleAndComposite(dst, src, params, opts...)
	}

	opts = append(opts[:len(opts):len(opts)], WithScratch(nil))
	results := make([]Result, len(bands))
	errs := make([]error, len(bands))
	work := make([]func(), len(bands))
	for i, b := range bands {
		bp := params
		bp.Clip = Rect{X: g.clip.X, Y: g.clip.Y + b.Start, Width: g.clip.Width, Height: b.Rows}
		work[i] = func() {
			results[i], errs[i] = ScaleAndComposite(dst, src, bp, opts...)
		}
	}
	p.workers.ExecuteAll(work)

	if err := errors.Join(errs...); err != nil {
		return Result{}, err
	}
	return results[0], nil
}
