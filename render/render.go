// Package render runs the whole pipeline for one registry entry: evaluate or
// accumulate, normalize, composite.
package render

import (
	"context"
	"fmt"
	"image"
	"slices"
	"strings"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/density"
	"github.com/marben/dist_fractal/escape"
	"github.com/marben/dist_fractal/formula"
	"github.com/marben/dist_fractal/palette"
	"github.com/marben/dist_fractal/raster"
	"github.com/marben/dist_fractal/texture"
)

// Options select what to draw. Zero fields take the defaults of the
// registry entry named by Formula.
type Options struct {
	Formula string
	Width   int
	Height  int

	// escape time
	Plane      *fractal.Plane
	MaxIter    int
	Bailout    float64
	C          *complex128
	Multiplier int

	// density
	Steps      int
	SettleDown int
	MaxFactor  float64
	Coeffs     []float64
	Projection *fractal.Projection

	Palette string
	// Seed drives the stochastic systems and the plasma texture.
	Seed    uint64
	Workers int
}

// Result is a finished render. Exactly one of Iter and Density is set.
type Result struct {
	Image   *image.RGBA
	Iter    *raster.Iter
	Density *raster.Float
	Stats   raster.Stats
	Entry   formula.Entry
}

const (
	escapeSize = 512
	densityW   = 800
	densityH   = 600
)

// textures are the procedural fields drawn through the same pipeline.
var textures = map[string]formula.Entry{
	"plasma": {Name: "plasma", Title: "Plasma (spectral synthesis)", Palette: "plasma", MaxFactor: 1, Coeffs: []float64{4, 0.5}},
	"moire":  {Name: "moire", Title: "Circle moiré", Palette: "rainbow", Plane: texture.MoirePlane},
}

// Names lists every drawable name: the formula registry and the textures.
func Names() []string {
	names := formula.Names()
	for name := range textures {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup resolves a drawable name.
func Lookup(name string) (formula.Entry, error) {
	if e, ok := textures[strings.ToLower(name)]; ok {
		return e, nil
	}
	return formula.Lookup(name)
}

// Render draws opts.Formula.
func Render(ctx context.Context, opts Options) (*Result, error) {
	e, err := Lookup(opts.Formula)
	if err != nil {
		return nil, err
	}
	p, err := palette.Get(pick(opts.Palette, e.Palette))
	if err != nil {
		return nil, err
	}

	switch {
	case e.EscapeTime:
		return renderEscape(ctx, e, p, opts)
	case e.Trajectories != nil:
		return renderDensity(ctx, e, p, opts)
	default:
		return renderTexture(e, p, opts)
	}
}

// Job resolves the escape-time job opts describe, for renderers that work
// tile by tile.
func Job(opts Options) (fractal.Job, formula.Entry, error) {
	e, err := formula.Lookup(opts.Formula)
	if err != nil {
		return fractal.Job{}, formula.Entry{}, err
	}
	if !e.EscapeTime {
		return fractal.Job{}, formula.Entry{}, fmt.Errorf("%w: %s is not an escape-time formula", fractal.ErrUnknownFormula, e.Name)
	}
	plane := e.Plane
	if opts.Plane != nil {
		plane = *opts.Plane
	}
	region, err := fractal.NewRegion(plane, pick(opts.Width, escapeSize), pick(opts.Height, escapeSize))
	if err != nil {
		return fractal.Job{}, formula.Entry{}, err
	}
	c := e.C
	if opts.C != nil {
		c = *opts.C
	}
	job := fractal.Job{
		Formula: e.Name,
		Region:  region,
		Params: fractal.IterationParams{
			MaxIter: pick(opts.MaxIter, e.MaxIter),
			Bailout: pick(opts.Bailout, e.Bailout),
		},
		CRe: real(c),
		CIm: imag(c),
	}
	if err := job.Params.Validate(); err != nil {
		return fractal.Job{}, formula.Entry{}, err
	}
	return job, e, nil
}

// Colorize composites a count raster the way Render does for entry e.
func Colorize(r *raster.Iter, e formula.Entry, opts Options) (*image.RGBA, error) {
	p, err := palette.Get(pick(opts.Palette, e.Palette))
	if err != nil {
		return nil, err
	}
	return raster.CompositeIter(r, p, raster.IterOptions{Multiplier: pick(opts.Multiplier, e.Multiplier)})
}

func renderEscape(ctx context.Context, e formula.Entry, p *palette.Palette, opts Options) (*Result, error) {
	job, _, err := Job(opts)
	if err != nil {
		return nil, err
	}
	it, err := escape.Evaluate(ctx, job.Region, job.Params, e.Escape, job.Coefficient(), escape.WithWorkers(opts.Workers))
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", e.Name, err)
	}
	img, err := raster.CompositeIter(it, p, raster.IterOptions{Multiplier: pick(opts.Multiplier, e.Multiplier)})
	if err != nil {
		return nil, err
	}
	return &Result{Image: img, Iter: it, Entry: e}, nil
}

func renderDensity(ctx context.Context, e formula.Entry, p *palette.Palette, opts Options) (*Result, error) {
	coeffs := e.Coeffs
	if opts.Coeffs != nil {
		coeffs = opts.Coeffs
	}
	tr, err := e.Trajectories(coeffs)
	if err != nil {
		return nil, err
	}
	if opts.Seed != 0 {
		for i := range tr {
			tr[i].Seed = opts.Seed + uint64(i)
		}
	}
	proj := e.Projection
	if opts.Projection != nil {
		proj = *opts.Projection
	}
	w, h := pick(opts.Width, densityW), pick(opts.Height, densityH)
	acc, err := density.Accumulate(ctx, w, h, tr, density.Options{
		Steps:      pick(opts.Steps, e.Steps),
		SettleDown: pick(opts.SettleDown, e.SettleDown),
		Projection: proj,
		Cap:        e.Cap,
		Workers:    opts.Workers,
	})
	if err != nil {
		return nil, fmt.Errorf("accumulate %s: %w", e.Name, err)
	}
	return finish(e, p, acc, pick(opts.MaxFactor, e.MaxFactor, 1))
}

func renderTexture(e formula.Entry, p *palette.Palette, opts Options) (*Result, error) {
	w, h := pick(opts.Width, escapeSize), pick(opts.Height, escapeSize)
	switch e.Name {
	case "plasma":
		coeffs := e.Coeffs
		if opts.Coeffs != nil {
			coeffs = opts.Coeffs
		}
		if len(coeffs) != 2 {
			return nil, fmt.Errorf("plasma takes 2 coefficients, got %d: %w", len(coeffs), fractal.ErrInvalidParams)
		}
		field, err := texture.Plasma(w, h, int(coeffs[0]), coeffs[1], opts.Seed)
		if err != nil {
			return nil, err
		}
		return finish(e, p, field, pick(opts.MaxFactor, e.MaxFactor))
	default:
		plane := e.Plane
		if opts.Plane != nil {
			plane = *opts.Plane
		}
		region, err := fractal.NewRegion(plane, w, h)
		if err != nil {
			return nil, err
		}
		field, err := texture.Moire(region)
		if err != nil {
			return nil, err
		}
		// the rings come from aliasing the raw values, no normalization
		img, err := raster.CompositeFloat(field, p)
		if err != nil {
			return nil, err
		}
		return &Result{Image: img, Density: field, Entry: e}, nil
	}
}

func finish(e formula.Entry, p *palette.Palette, field *raster.Float, maxFactor float64) (*Result, error) {
	norm, stats, err := raster.NormalizeStats(field, maxFactor)
	if err != nil {
		return nil, err
	}
	img, err := raster.CompositeFloat(norm, p)
	if err != nil {
		return nil, err
	}
	return &Result{Image: img, Density: field, Stats: stats, Entry: e}, nil
}

// pick returns the first non-zero value.
func pick[T comparable](vs ...T) T {
	var zero T
	for _, v := range vs {
		if v != zero {
			return v
		}
	}
	return zero
}
