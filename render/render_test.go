package render

import (
	"context"
	"errors"
	"image"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/escape"
	"github.com/marben/dist_fractal/formula"
	"github.com/marben/dist_fractal/palette"
)

func TestRenderEscapeDefaults(t *testing.T) {
	res, err := Render(context.Background(), Options{Formula: "mandelbrot", Width: 64, Height: 48, MaxIter: 100})
	if err != nil {
		t.Fatal(err)
	}
	if res.Iter == nil || res.Density != nil {
		t.Fatal("escape render did not produce a count raster")
	}
	if got := res.Image.Bounds(); got != image.Rect(0, 0, 64, 48) {
		t.Errorf("bounds %v", got)
	}
	p, _ := palette.Get("blues")
	// every pixel is the palette colour of its count
	for y := range 48 {
		for x := range 64 {
			if got, want := res.Image.RGBAAt(x, y), p.At(3*res.Iter.At(x, y)); got != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRenderEscapeOverrides(t *testing.T) {
	c := complex(-1, 0)
	plane := fractal.Plane{Xmin: -1, Xmax: 1, Ymin: -1, Ymax: 1}
	res, err := Render(context.Background(), Options{
		Formula: "julia", Width: 32, Height: 32, MaxIter: 50, C: &c, Plane: &plane,
		Palette: "grays", Multiplier: 5,
	})
	if err != nil {
		t.Fatal(err)
	}
	region, _ := fractal.NewRegion(plane, 32, 32)
	want, err := escape.Evaluate(context.Background(), region, fractal.IterationParams{MaxIter: 50, Bailout: 2}, formula.Quadratic{Julia: true}, c)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, res.Iter); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	gray, _ := palette.Get("grays")
	if got := res.Image.RGBAAt(0, 0); got != gray.At(5*res.Iter.At(0, 0)) {
		t.Errorf("corner colour %v", got)
	}
}

func TestRenderDensity(t *testing.T) {
	res, err := Render(context.Background(), Options{Formula: "lorenz", Width: 200, Height: 150, Steps: 20_000})
	if err != nil {
		t.Fatal(err)
	}
	if res.Density == nil || res.Iter != nil {
		t.Fatal("density render did not produce a density raster")
	}
	if res.Density.Mass() == 0 {
		t.Error("nothing landed on the raster")
	}
	if res.Stats.Max <= res.Stats.Min {
		t.Errorf("stats %+v", res.Stats)
	}
}

func TestRenderDensityCoeffErrors(t *testing.T) {
	_, err := Render(context.Background(), Options{Formula: "de-jong", Coeffs: []float64{1}})
	if !errors.Is(err, fractal.ErrInvalidParams) {
		t.Errorf("got %v", err)
	}
}

func TestRenderTextures(t *testing.T) {
	ctx := context.Background()
	for _, name := range []string{"plasma", "moire"} {
		res, err := Render(ctx, Options{Formula: name, Width: 64, Height: 64, Seed: 7})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if res.Density == nil || res.Image.Bounds().Dx() != 64 {
			t.Errorf("%s: unexpected result", name)
		}
	}
}

func TestRenderUnknown(t *testing.T) {
	ctx := context.Background()
	if _, err := Render(ctx, Options{Formula: "nope"}); !errors.Is(err, fractal.ErrUnknownFormula) {
		t.Errorf("formula: %v", err)
	}
	if _, err := Render(ctx, Options{Formula: "julia", Palette: "nope"}); !errors.Is(err, fractal.ErrEmptyPalette) {
		t.Errorf("palette: %v", err)
	}
	if _, _, err := Job(Options{Formula: "lorenz"}); !errors.Is(err, fractal.ErrUnknownFormula) {
		t.Errorf("job: %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Error("names not sorted")
	}
	for _, want := range []string{"plasma", "moire", "mandelbrot", "lorenz"} {
		if !slices.Contains(names, want) {
			t.Errorf("%s missing", want)
		}
	}
}

func TestLocalMatchesRender(t *testing.T) {
	opts := Options{Formula: "newton", Width: 40, Height: 40, MaxIter: 60}
	job, e, err := Job(opts)
	if err != nil {
		t.Fatal(err)
	}
	full, err := Render(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}

	var seen []image.Rectangle
	l := Local{OnTileRender: func(r image.Rectangle) { seen = append(seen, r) }}
	tile := image.Rect(8, 8, 24, 32)
	got, err := l.RenderTile(context.Background(), job, tile)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(full.Iter.Tile(tile), got); d != "" {
		t.Errorf("(-render +tile):\n%s", d)
	}
	if len(seen) != 1 || seen[0] != tile {
		t.Errorf("callback saw %v", seen)
	}

	img, err := Colorize(full.Iter, e, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(img.Pix, full.Image.Pix) {
		t.Error("Colorize differs from Render")
	}
}

func TestLocalErrors(t *testing.T) {
	job, _, err := Job(Options{Formula: "mandelbrot", Width: 16, Height: 16})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := (Local{}).RenderTile(context.Background(), job, image.Rect(0, 0, 32, 32)); !errors.Is(err, fractal.ErrInvalidRegion) {
		t.Errorf("tile outside: %v", err)
	}
	job.Formula = "lorenz"
	if _, err := (Local{}).RenderTile(context.Background(), job, image.Rect(0, 0, 8, 8)); !errors.Is(err, fractal.ErrUnknownFormula) {
		t.Errorf("density formula: %v", err)
	}
}

func TestLocalCancelled(t *testing.T) {
	job, _, err := Job(Options{Formula: "mandelbrot", Width: 64, Height: 64})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Local{}).RenderTile(ctx, job, image.Rect(0, 0, 64, 64)); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
