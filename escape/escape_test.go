package escape

import (
	"context"
	"errors"
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/formula"
)

var classic = fractal.IterationParams{MaxIter: 500, Bailout: 2}

func mustRegion(t *testing.T, p fractal.Plane, w, h int) fractal.Region {
	t.Helper()
	r, err := fractal.NewRegion(p, w, h)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestMandelbrotScenario(t *testing.T) {
	// unit steps so that pixels land exactly on (0,0) and (2,2)
	region := mustRegion(t, fractal.Plane{Xmin: -2, Xmax: 3, Ymin: -2, Ymax: 3}, 5, 5)
	out, err := Evaluate(context.Background(), region, classic, formula.Quadratic{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.At(2, 2); got != 0 {
		t.Errorf("(0,0) escaped after %d iterations", got)
	}
	if got := out.At(4, 4); got != 1 {
		t.Errorf("(2,2) escaped after %d iterations, want 1", got)
	}
}

func TestClassicMandelbrot(t *testing.T) {
	region := mustRegion(t, fractal.MandelbrotPlane, 512, 512)
	out, err := Evaluate(context.Background(), region, classic, formula.Quadratic{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	origin := region.Pixel(0)
	if got := out.At(origin.X, origin.Y); got != 0 {
		t.Errorf("pixel %v near the origin escaped after %d", origin, got)
	}
	if got := out.At(0, 0); got == 0 {
		t.Error("corner (-2,-1.5) did not escape")
	}
	checkRange(t, out.Counts, classic.MaxIter)
}

func checkRange(t *testing.T, counts []int32, maxIter int) {
	t.Helper()
	for i, c := range counts {
		if c < 0 || int(c) >= maxIter {
			t.Fatalf("cell %d = %d outside [0,%d)", i, c, maxIter)
		}
	}
}

func TestCountRangeAllFamilies(t *testing.T) {
	for _, name := range formula.EscapeNames() {
		e, err := formula.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		params := fractal.IterationParams{MaxIter: 40, Bailout: e.Bailout}
		region := mustRegion(t, e.Plane, 24, 24)
		out, err := Evaluate(context.Background(), region, params, e.Escape, e.C)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		checkRange(t, out.Counts, params.MaxIter)
	}
}

func TestJuliaScenario(t *testing.T) {
	region := mustRegion(t, fractal.JuliaPlane, 64, 64)
	ctx := context.Background()
	a, err := Evaluate(ctx, region, classic, formula.Quadratic{Julia: true}, complex(0, 1))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Evaluate(ctx, region, classic, formula.Quadratic{Julia: true}, complex(-1, 0))
	if err != nil {
		t.Fatal(err)
	}
	checkRange(t, a.Counts, classic.MaxIter)
	checkRange(t, b.Counts, classic.MaxIter)
	if a.Rect != b.Rect {
		t.Errorf("shapes differ: %v %v", a.Rect, b.Rect)
	}
	if cmp.Equal(a.Counts, b.Counts) {
		t.Error("changing c left the raster unchanged")
	}
}

func TestDeterministicAcrossWorkers(t *testing.T) {
	region := mustRegion(t, fractal.SeahorseValley, 97, 61)
	ctx := context.Background()
	one, err := Evaluate(ctx, region, classic, formula.Quadratic{}, 0, WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}
	many, err := Evaluate(ctx, region, classic, formula.Quadratic{}, 0, WithWorkers(7))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(one, many); d != "" {
		t.Errorf("(-1 worker +7 workers):\n%s", d)
	}
}

func TestEvaluateRectMatchesFull(t *testing.T) {
	region := mustRegion(t, fractal.MandelbrotPlane, 80, 60)
	ctx := context.Background()
	full, err := Evaluate(ctx, region, classic, formula.Quadratic{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	rect := image.Rect(16, 8, 48, 40)
	tile, err := EvaluateRect(ctx, region, classic, formula.Quadratic{}, 0, rect)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(full.Tile(rect).Counts, tile.Counts); d != "" {
		t.Errorf("(-full +tile):\n%s", d)
	}
}

func TestNewtonOrigin(t *testing.T) {
	region := mustRegion(t, fractal.Plane{Xmin: -2, Xmax: 2, Ymin: -2, Ymax: 2}, 4, 4)
	params := fractal.IterationParams{MaxIter: 200, Bailout: 0.01}
	out, err := Evaluate(context.Background(), region, params, formula.Newton{Power: 3}, 0)
	if err != nil {
		t.Fatal(err)
	}
	// pixel (2,2) samples exactly 0+0i
	if got := out.At(2, 2); got != 0 {
		t.Errorf("origin recorded %d", got)
	}
	if out.Offsets == nil {
		t.Fatal("no basin offsets")
	}
	// (1,0) sits on a root and needs no step; (-2,-2) converges after some
	if got := out.At(3, 2); got != 0 {
		t.Errorf("(1,0) recorded %d, want 0", got)
	}
	if got := out.At(0, 0); got == 0 {
		t.Error("(-2,-2) did not converge")
	}
	checkRange(t, out.Counts, params.MaxIter)
}

func TestNewtonStartOnRoot(t *testing.T) {
	params := fractal.IterationParams{MaxIter: 200, Bailout: 0.01}
	f := formula.Newton{Power: 3}
	roots := []struct {
		z      complex128
		offset int
	}{
		{complex(1, 0.005), 0},
		{complex(-0.5, math.Sqrt(3)/2), 128},
		{complex(-0.5, -math.Sqrt(3)/2), 192},
	}
	for _, r := range roots {
		if n, _ := Point(r.z, params, f, 0); n != 0 {
			t.Errorf("%v: count %d, want 0", r.z, n)
		}
		plane := fractal.Plane{Xmin: real(r.z), Xmax: real(r.z) + 0.001, Ymin: imag(r.z), Ymax: imag(r.z) + 0.001}
		out, err := Evaluate(context.Background(), mustRegion(t, plane, 1, 1), params, f, 0)
		if err != nil {
			t.Fatal(err)
		}
		if got := out.At(0, 0); got != 0 {
			t.Errorf("%v: evaluated count %d, want 0", r.z, got)
		}
		if got := out.Offset(0, 0); got != r.offset {
			t.Errorf("%v: offset %d, want %d", r.z, got, r.offset)
		}
	}
	// one step from 0.9 lands within the tolerance of 1
	if n, _ := Point(0.9, params, f, 0); n < 1 {
		t.Errorf("0.9: count %d, want at least one step", n)
	}
}

func TestPoint(t *testing.T) {
	if n, _ := Point(complex(2, 2), classic, formula.Quadratic{}, 0); n != 1 {
		t.Errorf("(2,2): %d", n)
	}
	if n, _ := Point(0, classic, formula.Quadratic{}, 0); n != 0 {
		t.Errorf("(0,0): %d", n)
	}
	// a budget of one iteration never steps
	if n, _ := Point(complex(2, 2), fractal.IterationParams{MaxIter: 1, Bailout: 2}, formula.Quadratic{}, 0); n != 0 {
		t.Errorf("MaxIter 1: %d", n)
	}
}

func TestConfigErrors(t *testing.T) {
	ctx := context.Background()
	good := mustRegion(t, fractal.MandelbrotPlane, 8, 8)

	bad := good
	bad.Xmax = bad.Xmin
	if _, err := Evaluate(ctx, bad, classic, formula.Quadratic{}, 0); !errors.Is(err, fractal.ErrInvalidRegion) {
		t.Errorf("bad region: %v", err)
	}
	if _, err := Evaluate(ctx, good, fractal.IterationParams{MaxIter: 0, Bailout: 2}, formula.Quadratic{}, 0); !errors.Is(err, fractal.ErrInvalidParams) {
		t.Errorf("bad params: %v", err)
	}
	huge := good
	huge.Width, huge.Height = 1<<14, 1<<14
	if _, err := Evaluate(ctx, huge, classic, formula.Quadratic{}, 0); !errors.Is(err, fractal.ErrTooLarge) {
		t.Errorf("huge region: %v", err)
	}
	if _, err := EvaluateRect(ctx, good, classic, formula.Quadratic{}, 0, image.Rect(4, 4, 12, 12)); !errors.Is(err, fractal.ErrInvalidRegion) {
		t.Errorf("rect outside: %v", err)
	}
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	region := mustRegion(t, fractal.MandelbrotPlane, 64, 64)
	if _, err := Evaluate(ctx, region, classic, formula.Quadratic{}, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v", err)
	}
}
