package fractal

import (
	"context"
	"image"
)

//go:generate go run github.com/marben/irpc/cmd/irpc@v0.0.0-20260109104542-2d3fde99869b $GOFILE

// Job describes one escape-time render: the registry name of the formula, the
// sampled region, the iteration budget and the fixed coefficient used by
// state-map families.
type Job struct {
	Formula string
	Region  Region
	Params  IterationParams
	// CRe and CIm are the fixed coefficient. The wire codec has no complex type.
	CRe, CIm float64
}

// Coefficient returns the fixed coefficient of state-map families.
func (j Job) Coefficient() complex128 { return complex(j.CRe, j.CIm) }

// TileCounts carries the iteration counts of one tile in global pixel
// coordinates. Offsets is nil unless the formula colours basins.
type TileCounts struct {
	Rect    image.Rectangle
	Counts  []int32
	Offsets []int32
}

// TileRenderer evaluates a single tile of a job.
// Implementations may run in-process or on a remote worker.
type TileRenderer interface {
	RenderTile(ctx context.Context, job Job, tile image.Rectangle) (TileCounts, error)
}
