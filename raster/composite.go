package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/palette"
)

// DefaultMultiplier spreads consecutive iteration counts across the palette.
const DefaultMultiplier = 3

// IterOptions tune CompositeIter.
type IterOptions struct {
	// Multiplier scales counts before the palette lookup. Zero selects
	// DefaultMultiplier.
	Multiplier int
	// Inside, when set, paints samples that never escaped.
	Inside *color.RGBA
}

// CompositeIter colours a count raster: the palette index is
// (Multiplier·(count+offset)) mod 256.
func CompositeIter(r *Iter, p *palette.Palette, opts IterOptions) (*image.RGBA, error) {
	if p == nil {
		return nil, fmt.Errorf("composite: %w", fractal.ErrEmptyPalette)
	}
	k := opts.Multiplier
	if k == 0 {
		k = DefaultMultiplier
	}
	img := image.NewRGBA(r.Rect)
	i := 0
	for y := r.Rect.Min.Y; y < r.Rect.Max.Y; y++ {
		for x := r.Rect.Min.X; x < r.Rect.Max.X; x++ {
			c := int(r.Counts[i])
			if c == 0 && opts.Inside != nil {
				img.SetRGBA(x, y, *opts.Inside)
			} else {
				if r.Offsets != nil {
					c += int(r.Offsets[i])
				}
				img.SetRGBA(x, y, p.At(k*c))
			}
			i++
		}
	}
	return img, nil
}

// CompositeFloat colours a normalized raster with index floor(v) mod 256.
func CompositeFloat(r *Float, p *palette.Palette) (*image.RGBA, error) {
	if p == nil {
		return nil, fmt.Errorf("composite: %w", fractal.ErrEmptyPalette)
	}
	img := image.NewRGBA(r.Rect)
	i := 0
	for y := r.Rect.Min.Y; y < r.Rect.Max.Y; y++ {
		for x := r.Rect.Min.X; x < r.Rect.Max.X; x++ {
			img.SetRGBA(x, y, p.At(floorIndex(r.Values[i])))
			i++
		}
	}
	return img, nil
}

func floorIndex(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	f := math.Floor(v)
	// keep the conversion in range; only the low 8 bits matter
	f = math.Mod(f, 256)
	return int(f)
}
