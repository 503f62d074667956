package raster

import (
	"fmt"
	"math"

	fractal "github.com/marben/dist_fractal"
)

// Stats are the extremes found by a normalization pass.
type Stats struct {
	Min, Max float64
}

// Normalize rescales r into [0, 255]. The maximum is first multiplied by
// maxFactor, so that with maxFactor < 1 the densest cells saturate and the
// bulk of the field gets the contrast. A raster whose scaled range is empty
// normalizes to all zeros. r is not modified.
func Normalize(r *Float, maxFactor float64) (*Float, error) {
	out, _, err := NormalizeStats(r, maxFactor)
	return out, err
}

// NormalizeStats is Normalize that also reports the extremes it found.
func NormalizeStats(r *Float, maxFactor float64) (*Float, Stats, error) {
	if !(maxFactor > 0 && maxFactor <= 1) {
		return nil, Stats{}, fmt.Errorf("%w: max factor %g outside (0,1]", fractal.ErrInvalidParams, maxFactor)
	}
	out := &Float{Rect: r.Rect, Values: make([]float64, len(r.Values))}
	if len(r.Values) == 0 {
		return out, Stats{}, nil
	}

	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range r.Values {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}
	span := s.Max*maxFactor - s.Min
	if !(span > 0) || math.IsInf(span, 0) {
		return out, s, nil
	}
	k := 255 / span
	for i, v := range r.Values {
		out.Values[i] = max(0, min(255, (v-s.Min)*k))
	}
	return out, s, nil
}
