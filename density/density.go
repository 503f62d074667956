// Package density renders attractors by accumulating how often their orbits
// visit each pixel.
package density

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/formula"
	"github.com/marben/dist_fractal/raster"
)

// Options control an accumulation.
type Options struct {
	// Steps is the number of iterates computed per trajectory.
	Steps int
	// SettleDown iterates at the start of each trajectory are computed but
	// not recorded.
	SettleDown int
	Projection fractal.Projection
	// Cap, when positive, stops a cell from counting past this value.
	Cap float64
	// Workers bounds the trajectories iterated at the same time. Values
	// below 1 select runtime.GOMAXPROCS(0).
	Workers int
}

func (o Options) validate() error {
	if o.Steps <= 0 {
		return fmt.Errorf("%w: steps %d", fractal.ErrInvalidParams, o.Steps)
	}
	if o.SettleDown < 0 {
		return fmt.Errorf("%w: settle down %d", fractal.ErrInvalidParams, o.SettleDown)
	}
	if o.Cap < 0 {
		return fmt.Errorf("%w: cap %g", fractal.ErrInvalidParams, o.Cap)
	}
	return o.Projection.Validate()
}

// checkEvery is how many iterates pass between context checks.
const checkEvery = 1 << 14

// partialCells bounds the cells of all per-worker rasters of one
// accumulation.
const partialCells = fractal.MaxPixels

// Accumulate iterates every trajectory and counts the visits of its
// projected iterates on a w × h raster. Iterates falling outside the raster
// are dropped. Each worker accumulates on its own raster and the rasters are
// summed at the end. Cells hold integer counts, so the sum is exact and
// deterministic maps always produce the same result whatever the number of
// workers.
func Accumulate(ctx context.Context, w, h int, trajectories []formula.Trajectory, opts Options) (*raster.Float, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(trajectories) == 0 {
		return nil, fmt.Errorf("%w: no trajectories", fractal.ErrInvalidParams)
	}
	for i, tr := range trajectories {
		if (tr.Map == nil) == (tr.Rand == nil) {
			return nil, fmt.Errorf("%w: trajectory %d needs exactly one map", fractal.ErrInvalidParams, i)
		}
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: raster %dx%d", fractal.ErrInvalidRegion, w, h)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = max(1, min(runtime.GOMAXPROCS(0), partialCells/(w*h)))
	}
	workers = min(workers, len(trajectories))
	if workers > 1 && workers > partialCells/(w*h) {
		return nil, fmt.Errorf("%w: %d worker rasters of %dx%d", fractal.ErrTooLarge, workers, w, h)
	}

	out, err := raster.NewFloat(w, h)
	if err != nil {
		return nil, err
	}
	if workers == 1 {
		for _, tr := range trajectories {
			if err := run(ctx, out, tr, opts); err != nil {
				return nil, err
			}
		}
		capValues(out, opts.Cap)
		return out, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	partials := make([]*raster.Float, workers)
	for k := range partials {
		if partials[k], err = raster.NewFloat(w, h); err != nil {
			return nil, err
		}
	}
	errs := make([]error, workers)
	next := make(chan int)
	var wg sync.WaitGroup
	for k, p := range partials {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				if errs[k] != nil {
					continue
				}
				if err := run(ctx, p, trajectories[i], opts); err != nil {
					errs[k] = err
					cancel()
				}
			}
		}()
	}
feed:
	for i := range trajectories {
		select {
		case next <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(next)
	wg.Wait()

	for k, p := range partials {
		if errs[k] != nil {
			return nil, errs[k]
		}
		if err := out.AddRaster(p); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	capValues(out, opts.Cap)
	return out, nil
}

func capValues(r *raster.Float, limit float64) {
	if limit <= 0 {
		return
	}
	for i, v := range r.Values {
		r.Values[i] = min(v, limit)
	}
}

func run(ctx context.Context, r *raster.Float, tr formula.Trajectory, opts Options) error {
	var rnd *rand.Rand
	if tr.Rand != nil {
		rnd = rand.New(rand.NewPCG(tr.Seed, tr.Seed^0x9e3779b97f4a7c15))
	}
	w, h := r.Rect.Dx(), r.Rect.Dy()
	v := tr.Start
	for i := range opts.Steps {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if rnd != nil {
			v = tr.Rand.NextRand(v, rnd)
		} else {
			v = tr.Map.Next(v)
		}
		if i < opts.SettleDown {
			continue
		}
		if !v.Finite() {
			// a diverged orbit never comes back
			return nil
		}
		x, y := opts.Projection.Project(v.X, v.Y, v.Z, w, h)
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		if opts.Cap > 0 && r.At(x, y) >= opts.Cap {
			continue
		}
		r.Add(x, y, 1)
	}
	return nil
}
