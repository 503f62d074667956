// Package texture generates procedural scalar fields that go through the
// same normalize and composite steps as the fractals.
package texture

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/dsp/fourier"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/raster"
)

// MoirePlane is the window the circle moiré is usually drawn over.
var MoirePlane = fractal.Plane{Xmin: -189, Xmax: 189, Ymin: -189, Ymax: 189}

// Moire samples x²+y² over region. Composited with floor(v) mod 256 the
// sampling aliases into interference rings.
func Moire(region fractal.Region) (*raster.Float, error) {
	if err := region.Validate(); err != nil {
		return nil, err
	}
	out, err := raster.NewFloat(region.Width, region.Height)
	if err != nil {
		return nil, err
	}
	for y := range region.Height {
		for x := range region.Width {
			p := region.Point(x, y)
			out.Set(x, y, real(p)*real(p)+imag(p)*imag(p))
		}
	}
	return out, nil
}

// gauss approximates a normal deviate centred on 1/2 by averaging uniforms.
func gauss(r *rand.Rand) float64 {
	const n = 50
	var sum float64
	for range n {
		sum += r.Float64()
	}
	return sum / n
}

// Plasma synthesizes a w × h fractal noise field. A random spectrum of
// n/2 × n/2 low frequencies with amplitudes falling off as 1/f^(2h+1) is
// turned into the field by an inverse two dimensional FFT. The result is
// not normalized.
func Plasma(w, h, n int, hurst float64, seed uint64) (*raster.Float, error) {
	if n < 2 || n/2 > w || n/2 > h {
		return nil, fmt.Errorf("%w: plasma of %d frequencies on %dx%d", fractal.ErrInvalidParams, n, w, h)
	}
	out, err := raster.NewFloat(w, h)
	if err != nil {
		return nil, err
	}

	low := spectrum(n, hurst, rand.New(rand.NewPCG(seed, seed)))
	coef := make([][]complex128, h)
	for y := range coef {
		coef[y] = make([]complex128, w)
		if y < len(low) {
			copy(coef[y], low[y])
		}
	}

	rows := fourier.NewCmplxFFT(w)
	for y := range coef {
		coef[y] = rows.Sequence(coef[y], coef[y])
	}
	cols := fourier.NewCmplxFFT(h)
	col := make([]complex128, h)
	for x := range w {
		for y := range h {
			col[y] = coef[y][x]
		}
		col = cols.Sequence(col, col)
		for y := range h {
			out.Set(x, y, real(col[y]))
		}
	}
	return out, nil
}

// spectrum draws the n/2 × n/2 low frequency coefficients, indexed [fy][fx].
func spectrum(n int, hurst float64, r *rand.Rand) [][]complex128 {
	beta := 2*hurst + 1
	coef := make([][]complex128, n/2)
	for fy := range coef {
		coef[fy] = make([]complex128, n/2)
		for fx := range coef[fy] {
			ri := math.Pow(float64(fx)+1, -beta/2) * gauss(r)
			rj := math.Pow(float64(fy)+1, -beta/2) * gauss(r)
			pi := 2 * math.Pi * r.Float64()
			pj := 2 * math.Pi * r.Float64()
			a := ri * math.Cos(pi) * rj * math.Cos(pj)
			b := ri * math.Sin(pi) * rj * math.Sin(pj)
			// a·cos θ + b·sin θ is the real part of (a − ib)·e^{iθ}
			coef[fy][fx] = complex(a, -b)
		}
	}
	return coef
}
