// Package formula defines the recurrences rendered by the engine: complex
// escape-time families sampled on a pixel grid and real-valued maps and
// flows whose orbits are accumulated into density rasters.
package formula

import (
	"math"
	"math/cmplx"
)

// Orbit is the evolving state of one escape-time sample.
type Orbit struct {
	Z    complex128 // current iterate
	Prev complex128 // previous iterate, for two-step recurrences
	C    complex128 // coefficient, fixed for the whole orbit
}

// Escape is a complex recurrence evaluated per pixel.
//
// Parameter-map families use the sample point p as the coefficient and start
// from a fixed seed; state-map families start at p and use the caller's fixed
// coefficient c.
type Escape interface {
	// Start seeds the orbit for sample point p. It reports false for a
	// degenerate sample which must be recorded as never escaping.
	Start(p, c complex128) (Orbit, bool)
	Step(o *Orbit)
	// Escaped reports whether the orbit has crossed the bailout condition.
	Escaped(o *Orbit, bailout float64) bool
}

// Basin is implemented by families that shift the colour index of an escaped
// sample depending on where it ended up.
type Basin interface {
	BasinOffset(o *Orbit) int
}

// seed places p either in the coefficient (parameter map) or in the state
// (state map).
func seed(stateMap bool, p, c complex128, z0 complex128) Orbit {
	if stateMap {
		return Orbit{Z: p, Prev: p, C: c}
	}
	return Orbit{Z: z0, Prev: z0, C: p}
}

// outside reports |z| > r without taking a square root.
func outside(z complex128, r float64) bool {
	return real(z)*real(z)+imag(z)*imag(z) > r*r
}

// Quadratic is z² + c: the Mandelbrot set, or with Julia set the Julia set.
type Quadratic struct{ Julia bool }

func (f Quadratic) Start(p, c complex128) (Orbit, bool) { return seed(f.Julia, p, c, 0), true }
func (Quadratic) Step(o *Orbit)                          { o.Z = o.Z*o.Z + o.C }
func (Quadratic) Escaped(o *Orbit, b float64) bool       { return outside(o.Z, b) }

// Quartic is the z⁴ + c variant of the Mandelbrot set.
type Quartic struct{ Julia bool }

func (f Quartic) Start(p, c complex128) (Orbit, bool) { return seed(f.Julia, p, c, 0), true }
func (Quartic) Escaped(o *Orbit, b float64) bool       { return outside(o.Z, b) }

func (Quartic) Step(o *Orbit) {
	z2 := o.Z * o.Z
	o.Z = z2*z2 + o.C
}

// QuadraticMinusZ is z² − z + c.
type QuadraticMinusZ struct{ Julia bool }

func (f QuadraticMinusZ) Start(p, c complex128) (Orbit, bool) { return seed(f.Julia, p, c, 0), true }
func (QuadraticMinusZ) Step(o *Orbit)                          { o.Z = o.Z*o.Z - o.Z + o.C }
func (QuadraticMinusZ) Escaped(o *Orbit, b float64) bool       { return outside(o.Z, b) }

// BarnsleyOne folds on the sign of Re z: (z∓1)·c.
type BarnsleyOne struct{ Julia bool }

func (f BarnsleyOne) Start(p, c complex128) (Orbit, bool) { return seed(f.Julia, p, c, 0), true }
func (BarnsleyOne) Escaped(o *Orbit, b float64) bool       { return outside(o.Z, b) }

func (BarnsleyOne) Step(o *Orbit) {
	if real(o.Z) >= 0 {
		o.Z = (o.Z - 1) * o.C
	} else {
		o.Z = (o.Z + 1) * o.C
	}
}

// BarnsleyTwo folds on the sign of Re z·Im c + Re c·Im z.
type BarnsleyTwo struct{ Julia bool }

func (f BarnsleyTwo) Start(p, c complex128) (Orbit, bool) { return seed(f.Julia, p, c, 0), true }
func (BarnsleyTwo) Escaped(o *Orbit, b float64) bool       { return outside(o.Z, b) }

func (BarnsleyTwo) Step(o *Orbit) {
	if real(o.Z)*imag(o.C)+real(o.C)*imag(o.Z) >= 0 {
		o.Z = (o.Z - 1) * o.C
	} else {
		o.Z = (o.Z + 1) * o.C
	}
}

// BarnsleyThree is z² − 1, plus c·Re z on the left half plane.
type BarnsleyThree struct{ Julia bool }

func (f BarnsleyThree) Start(p, c complex128) (Orbit, bool) { return seed(f.Julia, p, c, 0), true }
func (BarnsleyThree) Escaped(o *Orbit, b float64) bool       { return outside(o.Z, b) }

func (BarnsleyThree) Step(o *Orbit) {
	x, y := real(o.Z), imag(o.Z)
	zx := x*x - y*y - 1
	zy := 2 * x * y
	if x <= 0 {
		zx += real(o.C) * x
		zy += imag(o.C) * x
	}
	o.Z = complex(zx, zy)
}

// Newton iterates Newton's method for z^Power − 1. A sample "escapes" once it
// lies within the bailout distance of a root; the root picks the colour
// basin.
type Newton struct{ Power int }

func (f Newton) power() int {
	if f.Power < 2 {
		return 3
	}
	return f.Power
}

func (Newton) Start(p, _ complex128) (Orbit, bool) {
	if p == 0 {
		return Orbit{}, false
	}
	return Orbit{Z: p, Prev: p}, true
}

func (f Newton) Step(o *Orbit) {
	n := f.power()
	zn1 := cmplx.Pow(o.Z, complex(float64(n-1), 0))
	o.Prev = o.Z
	o.Z = (complex(float64(n-1), 0)*zn1*o.Z + 1) / (complex(float64(n), 0) * zn1)
}

func (f Newton) Escaped(o *Orbit, tol float64) bool {
	return f.root(o.Z, tol) >= 0
}

// BasinOffset follows the classic three-root colouring: +0, +128, +192.
func (f Newton) BasinOffset(o *Orbit) int {
	switch f.root(o.Z, math.Inf(1)) {
	case 1:
		return 128
	case 2:
		return 192
	}
	return 0
}

// root returns the index of the root of unity nearest to z if it is closer
// than tol, or -1.
func (f Newton) root(z complex128, tol float64) int {
	n := f.power()
	best, bestDist := -1, tol
	for k := range n {
		// roots ordered 1, e^{2πi/3}, e^{-2πi/3}, ...
		angle := 2 * math.Pi * float64((k+1)/2) / float64(n)
		if k%2 == 0 && k > 0 {
			angle = -angle
		}
		r := cmplx.Rect(1, angle)
		if d := cmplx.Abs(z - r); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

// Phoenix is z² + Re c + Im c·z₋₁, compared against a squared-magnitude
// bailout.
type Phoenix struct{ Julia bool }

func (f Phoenix) Start(p, c complex128) (Orbit, bool) {
	if f.Julia {
		return Orbit{Z: p, C: c}, true
	}
	return Orbit{Z: p, C: p}, true
}

func (Phoenix) Step(o *Orbit) {
	z := o.Z*o.Z + complex(real(o.C), 0) + complex(imag(o.C), 0)*o.Prev
	o.Prev = o.Z
	o.Z = z
}

func (Phoenix) Escaped(o *Orbit, b float64) bool {
	return real(o.Z)*real(o.Z)+imag(o.Z)*imag(o.Z) > b
}

// Manowar is z² + z₋₁ + c with z₀ = z₋₁ = p.
type Manowar struct{ Julia bool }

func (f Manowar) Start(p, c complex128) (Orbit, bool) {
	if f.Julia {
		return Orbit{Z: p, Prev: p, C: c}, true
	}
	return Orbit{Z: p, Prev: p, C: p}, true
}

func (Manowar) Step(o *Orbit) {
	z := o.Z*o.Z + o.Prev + o.C
	o.Prev = o.Z
	o.Z = z
}

func (Manowar) Escaped(o *Orbit, b float64) bool { return outside(o.Z, b) }

// Lambda is the logistic map c·z·(1−z) over the complex plane.
type Lambda struct{ Julia bool }

func (f Lambda) Start(p, c complex128) (Orbit, bool) {
	// the critical point of the logistic map is 1/2
	return seed(f.Julia, p, c, 0.5), true
}

func (Lambda) Step(o *Orbit)                    { o.Z = o.C * o.Z * (1 - o.Z) }
func (Lambda) Escaped(o *Orbit, b float64) bool { return outside(o.Z, b) }

// Sine is c·sin z. The parameter map starts at z₀ = c.
type Sine struct{ Julia bool }

func (f Sine) Start(p, c complex128) (Orbit, bool) {
	if f.Julia {
		return Orbit{Z: p, C: c}, true
	}
	return Orbit{Z: p, C: p}, true
}

func (Sine) Step(o *Orbit)                    { o.Z = o.C * cmplx.Sin(o.Z) }
func (Sine) Escaped(o *Orbit, b float64) bool { return outside(o.Z, b) }
