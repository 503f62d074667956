package texture

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	fractal "github.com/marben/dist_fractal"
)

func TestMoire(t *testing.T) {
	region, err := fractal.NewRegion(fractal.Plane{Xmin: -2, Xmax: 2, Ymin: -2, Ymax: 2}, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Moire(region)
	if err != nil {
		t.Fatal(err)
	}
	if out.At(2, 2) != 0 || out.At(0, 0) != 8 || out.At(3, 2) != 1 {
		t.Errorf("got %v", out.Values)
	}
}

// direct evaluates the trigonometric sum that the FFT replaces.
func direct(coef [][]complex128, w, h int) []float64 {
	out := make([]float64, w*h)
	for y := range h {
		for x := range w {
			u := 2 * math.Pi * float64(x) / float64(w)
			v := 2 * math.Pi * float64(y) / float64(h)
			var z float64
			for fy, row := range coef {
				for fx, c := range row {
					z += real(c * cmplx.Exp(complex(0, float64(fx)*u+float64(fy)*v)))
				}
			}
			out[y*w+x] = z
		}
	}
	return out
}

func TestPlasmaMatchesDirectSum(t *testing.T) {
	const w, h, n, seed = 16, 8, 8, 99
	got, err := Plasma(w, h, n, 0.5, seed)
	if err != nil {
		t.Fatal(err)
	}
	want := direct(spectrum(n, 0.5, rand.New(rand.NewPCG(seed, seed))), w, h)
	if d := cmp.Diff(want, got.Values, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("(-direct +fft):\n%s", d)
	}
}

func TestPlasmaSeeded(t *testing.T) {
	a, err := Plasma(32, 32, 4, 0.5, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Plasma(32, 32, 4, 0.5, 1)
	c, _ := Plasma(32, 32, 4, 0.5, 2)
	if !cmp.Equal(a, b) {
		t.Error("same seed gave different fields")
	}
	if cmp.Equal(a, c) {
		t.Error("different seeds gave the same field")
	}
}

func TestPlasmaErrors(t *testing.T) {
	for _, n := range []int{0, 1, 66} {
		if _, err := Plasma(32, 32, n, 0.5, 1); !errors.Is(err, fractal.ErrInvalidParams) {
			t.Errorf("n=%d: got %v", n, err)
		}
	}
}
