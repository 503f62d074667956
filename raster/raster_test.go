package raster

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/palette"
)

func floats(vals ...float64) *Float {
	return &Float{Rect: image.Rect(0, 0, len(vals), 1), Values: vals}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		in     []float64
		factor float64
		want   []float64
		stats  Stats
	}{
		{"linear", []float64{1, 5, 10}, 1, []float64{0, 4 * 255.0 / 9, 255}, Stats{1, 10}},
		{"midpoint", []float64{1, 5.5, 10}, 1, []float64{0, 127.5, 255}, Stats{1, 10}},
		{"clipped", []float64{0, 5, 100}, 0.1, []float64{0, 127.5, 255}, Stats{0, 100}},
		{"degenerate", []float64{0, 0, 0}, 1, []float64{0, 0, 0}, Stats{0, 0}},
		{"constant", []float64{7, 7}, 1, []float64{0, 0}, Stats{7, 7}},
		{"scaled below min", []float64{5, 6, 10}, 0.1, []float64{0, 0, 0}, Stats{5, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := floats(tt.in...)
			orig := append([]float64(nil), tt.in...)
			got, s, err := NormalizeStats(in, tt.factor)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tt.want, got.Values, cmpopts.EquateApprox(0, 1e-9)); d != "" {
				t.Errorf("values (-want +got):\n%s", d)
			}
			if d := cmp.Diff(tt.stats, s); d != "" {
				t.Errorf("stats (-want +got):\n%s", d)
			}
			if d := cmp.Diff(orig, in.Values); d != "" {
				t.Errorf("input modified:\n%s", d)
			}
		})
	}
}

func TestNormalizeRange(t *testing.T) {
	in := floats(-3, 0, 1e9, 42, 17, 1e12)
	got, err := Normalize(in, 0.001)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range got.Values {
		if v < 0 || v > 255 {
			t.Errorf("cell %d = %g", i, v)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := floats(0, 12.5, 99, 128, 200, 255)
	got, err := Normalize(in, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(in.Values, got.Values, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestNormalizeBadFactor(t *testing.T) {
	for _, f := range []float64{0, -1, 1.5, math.NaN()} {
		if _, err := Normalize(floats(1, 2), f); !errors.Is(err, fractal.ErrInvalidParams) {
			t.Errorf("factor %g: got %v", f, err)
		}
	}
}

func TestCompositeIter(t *testing.T) {
	p := palette.ByIndex(0)
	r, err := NewIter(image.Rect(0, 0, 4, 1))
	if err != nil {
		t.Fatal(err)
	}
	r.Set(0, 0, 0)
	r.Set(1, 0, 1)
	r.Set(2, 0, 100)
	r.Set(3, 0, 1<<30)
	orig := append([]int32(nil), r.Counts...)

	img, err := CompositeIter(r, p, IterOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := []color.RGBA{p[0], p[3], p[300&255], p[(3<<30)&255]}
	for x, w := range want {
		if got := img.RGBAAt(x, 0); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
	if d := cmp.Diff(orig, r.Counts); d != "" {
		t.Errorf("input modified:\n%s", d)
	}

	inside := color.RGBA{1, 2, 3, 255}
	img, err = CompositeIter(r, p, IterOptions{Multiplier: 1, Inside: &inside})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(0, 0); got != inside {
		t.Errorf("inside pixel = %v", got)
	}
	if got := img.RGBAAt(2, 0); got != p[100] {
		t.Errorf("multiplier 1: %v", got)
	}
}

func TestCompositeIterOffsets(t *testing.T) {
	p := palette.ByIndex(1)
	r, _ := NewIter(image.Rect(0, 0, 1, 1))
	r.Set(0, 0, 5)
	r.SetOffset(0, 0, 128)
	img, err := CompositeIter(r, p, IterOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(0, 0); got != p[(3*133)&255] {
		t.Errorf("got %v", got)
	}
}

func TestCompositeFloat(t *testing.T) {
	p := palette.ByIndex(2)
	r := floats(0, 0.99, 254.7, 255, 300, -1, math.NaN())
	img, err := CompositeFloat(r, p)
	if err != nil {
		t.Fatal(err)
	}
	want := []color.RGBA{p[0], p[0], p[254], p[255], p[300&255], p[255], p[0]}
	for x, w := range want {
		if got := img.RGBAAt(x, 0); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestCompositeNilPalette(t *testing.T) {
	if _, err := CompositeFloat(floats(1), nil); !errors.Is(err, fractal.ErrEmptyPalette) {
		t.Errorf("got %v", err)
	}
}

func TestTilePaste(t *testing.T) {
	full, _ := NewIter(image.Rect(0, 0, 8, 8))
	src, _ := NewIter(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			src.Set(x, y, y*8+x)
		}
	}
	src.SetOffset(3, 3, 192)

	for _, rect := range []image.Rectangle{
		image.Rect(0, 0, 4, 4), image.Rect(4, 0, 8, 4),
		image.Rect(0, 4, 4, 8), image.Rect(4, 4, 8, 8),
	} {
		if err := full.Paste(src.Tile(rect)); err != nil {
			t.Fatal(err)
		}
	}
	if d := cmp.Diff(src, full); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	if err := full.Paste(fractal.TileCounts{Rect: image.Rect(6, 6, 10, 10)}); err == nil {
		t.Error("tile outside raster accepted")
	}
	if err := full.Paste(fractal.TileCounts{Rect: image.Rect(0, 0, 2, 2), Counts: []int32{1}}); err == nil {
		t.Error("short tile accepted")
	}
}

func TestHistogram(t *testing.T) {
	r, _ := NewIter(image.Rect(0, 0, 5, 1))
	for x, c := range []int{0, 1, 2, 9, 5} {
		r.Set(x, 0, c)
	}
	got := r.Histogram(2, 10)
	if d := cmp.Diff([]int{3, 1}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestFloatAccumulate(t *testing.T) {
	r, err := NewFloat(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !r.NonZeroBounds().Empty() {
		t.Error("fresh raster has non-zero cells")
	}
	r.Add(1, 1, 2)
	r.Add(2, 2, 1)
	if r.Add(4, 0, 1) || r.Add(-1, 0, 1) {
		t.Error("out of range add accepted")
	}
	if r.Mass() != 3 {
		t.Errorf("mass %g", r.Mass())
	}
	if got := r.NonZeroBounds(); got != image.Rect(1, 1, 3, 3) {
		t.Errorf("bounds %v", got)
	}

	o, _ := NewFloat(4, 3)
	o.Add(0, 0, 1)
	if err := r.AddRaster(o); err != nil {
		t.Fatal(err)
	}
	if r.At(0, 0) != 1 || r.Mass() != 4 {
		t.Errorf("after AddRaster: %v", r.Values)
	}
}

func TestSizeLimits(t *testing.T) {
	if _, err := NewFloat(0, 10); !errors.Is(err, fractal.ErrInvalidRegion) {
		t.Errorf("empty: %v", err)
	}
	if _, err := NewIter(image.Rect(0, 0, 1<<14, 1<<14)); !errors.Is(err, fractal.ErrTooLarge) {
		t.Errorf("huge: %v", err)
	}
}
