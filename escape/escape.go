// Package escape evaluates escape-time recurrences over a pixel grid.
package escape

import (
	"context"
	"fmt"
	"image"
	"math"
	"runtime"
	"sync"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/formula"
	"github.com/marben/dist_fractal/raster"
)

type config struct {
	workers int
}

// Option configures an evaluation.
type Option func(*config)

// WithWorkers sets the number of goroutines sharing the rows.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// Evaluate computes the iteration count of every pixel of region.
func Evaluate(ctx context.Context, region fractal.Region, params fractal.IterationParams, f formula.Escape, c complex128, opts ...Option) (*raster.Iter, error) {
	return EvaluateRect(ctx, region, params, f, c, region.Bounds(), opts...)
}

// EvaluateRect computes the counts of the pixels of region inside rect only.
// The returned raster is addressed in the region's pixel coordinates.
//
// A pixel records the first iteration i in [1, MaxIter) after which the
// orbit satisfies the bailout condition, or 0 if it never does, if the
// sample is degenerate or if the orbit stops being a finite number.
func EvaluateRect(ctx context.Context, region fractal.Region, params fractal.IterationParams, f formula.Escape, c complex128, rect image.Rectangle, opts ...Option) (*raster.Iter, error) {
	if err := region.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("%w: no recurrence", fractal.ErrUnknownFormula)
	}
	if !rect.In(region.Bounds()) || rect.Empty() {
		return nil, fmt.Errorf("%w: rect %v outside %v", fractal.ErrInvalidRegion, rect, region.Bounds())
	}

	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	cfg.workers = min(cfg.workers, rect.Dy())

	out, err := raster.NewIter(rect)
	if err != nil {
		return nil, err
	}
	if _, ok := f.(formula.Basin); ok {
		out.Offsets = make([]int32, len(out.Counts))
	}

	// rows are handed out in order; each row is written by exactly one worker
	rows := make(chan int)
	var wg sync.WaitGroup
	for range cfg.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				evalRow(out, region, params, f, c, rect.Min.X, rect.Max.X, y)
			}
		}()
	}

	var cancelled error
feed:
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		case rows <- y:
		}
	}
	close(rows)
	wg.Wait()
	if cancelled != nil {
		return nil, cancelled
	}
	return out, nil
}

func evalRow(out *raster.Iter, region fractal.Region, params fractal.IterationParams, f formula.Escape, c complex128, x0, x1, y int) {
	basin, _ := f.(formula.Basin)
	for x := x0; x < x1; x++ {
		n, o := Point(region.Point(x, y), params, f, c)
		out.Set(x, y, n)
		if basin != nil && (n != 0 || f.Escaped(&o, params.Bailout)) {
			if off := basin.BasinOffset(&o); off != 0 {
				out.SetOffset(x, y, off)
			}
		}
	}
}

// Point iterates a single sample and returns its count and final orbit.
func Point(p complex128, params fractal.IterationParams, f formula.Escape, c complex128) (int, formula.Orbit) {
	o, ok := f.Start(p, c)
	if !ok {
		return 0, o
	}
	// convergent families test before stepping: a start on a root counts 0
	// and still takes the colour of its basin
	if _, ok := f.(formula.Basin); ok && f.Escaped(&o, params.Bailout) {
		return 0, o
	}
	for i := 1; i < params.MaxIter; i++ {
		f.Step(&o)
		if f.Escaped(&o, params.Bailout) {
			return i, o
		}
		if math.IsNaN(real(o.Z)) || math.IsNaN(imag(o.Z)) {
			return 0, o
		}
	}
	return 0, o
}
