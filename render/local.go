package render

import (
	"context"
	"fmt"
	"image"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/escape"
	"github.com/marben/dist_fractal/formula"
)

// Local renders tiles in-process.
type Local struct {
	// OnTileRender, if set, is called before each tile is evaluated.
	OnTileRender func(tile image.Rectangle)
	Workers      int
}

func (l Local) RenderTile(ctx context.Context, job fractal.Job, tile image.Rectangle) (fractal.TileCounts, error) {
	if l.OnTileRender != nil {
		l.OnTileRender(tile)
	}
	e, err := formula.Lookup(job.Formula)
	if err != nil {
		return fractal.TileCounts{}, err
	}
	if !e.EscapeTime {
		return fractal.TileCounts{}, fmt.Errorf("%w: %s is not an escape-time formula", fractal.ErrUnknownFormula, e.Name)
	}
	it, err := escape.EvaluateRect(ctx, job.Region, job.Params, e.Escape, job.Coefficient(), tile, escape.WithWorkers(l.Workers))
	if err != nil {
		return fractal.TileCounts{}, fmt.Errorf("tile %s: %w", tile, err)
	}
	return it.Tile(tile), nil
}

var _ fractal.TileRenderer = Local{}
