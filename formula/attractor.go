package formula

import "math"

// Vec3 is the real state of an orbit family. Planar maps leave Z at zero.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) add(w Vec3) Vec3      { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }
func (v Vec3) scale(k float64) Vec3 { return Vec3{k * v.X, k * v.Y, k * v.Z} }

// Finite reports whether every component is a finite number.
func (v Vec3) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Map is a discrete recurrence v' = F(v).
type Map interface {
	Next(v Vec3) Vec3
}

// Flow is a continuous system dv/dt = F(v).
type Flow interface {
	Derivative(v Vec3) Vec3
}

// Euler turns a Flow into a Map by a fixed forward Euler step.
type Euler struct {
	Flow Flow
	Dt   float64
}

func (e Euler) Next(v Vec3) Vec3 {
	return v.add(e.Flow.Derivative(v).scale(e.Dt))
}

// Lorenz is the classic convection system.
type Lorenz struct{ S, R, B float64 }

func (f Lorenz) Derivative(v Vec3) Vec3 {
	return Vec3{
		X: f.S * (v.Y - v.X),
		Y: f.R*v.X - v.Y - v.X*v.Z,
		Z: v.X*v.Y - f.B*v.Z,
	}
}

// Rossler is the Rössler band attractor.
type Rossler struct{ A, B, C float64 }

func (f Rossler) Derivative(v Vec3) Vec3 {
	return Vec3{
		X: -v.Y - v.Z,
		Y: v.X + f.A*v.Y,
		Z: f.B + v.Z*(v.X-f.C),
	}
}

// WangSun is the four-wing Wang–Sun system.
type WangSun struct{ A, B, C, D, E, F float64 }

func (f WangSun) Derivative(v Vec3) Vec3 {
	return Vec3{
		X: f.A*v.X + f.C*v.Y*v.Z,
		Y: f.B*v.X + f.D*v.Y - v.X*v.Z,
		Z: f.E*v.Z + f.F*v.X*v.Y,
	}
}

// Dynamic is a planar flow, usually integrated from a grid of starts.
type Dynamic struct{ A, B float64 }

func (f Dynamic) Derivative(v Vec3) Vec3 {
	return Vec3{
		X: -math.Sin(v.Y + f.A*math.Sin(f.B*v.Y)),
		Y: math.Sin(v.X + f.A*math.Sin(f.B*v.X)),
	}
}

// Pickover3D is Pickover's three dimensional map.
type Pickover3D struct{ A, B, C, D, E float64 }

func (f Pickover3D) Next(v Vec3) Vec3 {
	return Vec3{
		X: math.Sin(f.A*v.Y) - v.Z*math.Cos(f.B*v.X),
		Y: v.Z*math.Sin(f.C*v.X) - math.Cos(f.D*v.Y),
		Z: f.E * math.Sin(v.X),
	}
}

// Pickover is Clifford Pickover's planar map.
type Pickover struct{ A, B, C, D float64 }

func (f Pickover) Next(v Vec3) Vec3 {
	return Vec3{
		X: math.Sin(f.A*v.Y) + f.C*math.Cos(f.A*v.X),
		Y: math.Sin(f.B*v.X) + f.D*math.Cos(f.B*v.Y),
	}
}

// DeJong is Peter de Jong's map.
type DeJong struct{ A, B, C, D float64 }

func (f DeJong) Next(v Vec3) Vec3 {
	return Vec3{
		X: math.Sin(f.A*v.Y) - math.Cos(f.B*v.X),
		Y: math.Sin(f.C*v.X) - math.Cos(f.D*v.Y),
	}
}

type Svensson struct{ A, B, C, D float64 }

func (f Svensson) Next(v Vec3) Vec3 {
	return Vec3{
		X: f.D*math.Sin(v.X*f.A) - math.Sin(v.Y*f.B),
		Y: f.C*math.Cos(v.X*f.A) + math.Cos(v.Y*f.B),
	}
}

type FractalDream struct{ A, B, C, D float64 }

func (f FractalDream) Next(v Vec3) Vec3 {
	return Vec3{
		X: math.Sin(f.B*v.Y) - f.C*math.Sin(f.B*v.X),
		Y: math.Sin(f.A*v.X) - f.D*math.Sin(f.A*v.Y),
	}
}

type JasonRampe1 struct{ A, B, C, D float64 }

func (f JasonRampe1) Next(v Vec3) Vec3 {
	return Vec3{
		X: math.Cos(f.B*v.Y) + f.C*math.Sin(f.B*v.X),
		Y: math.Cos(f.A*v.X) + f.D*math.Sin(f.A*v.Y),
	}
}

type JasonRampe2 struct{ A, B, C, D float64 }

func (f JasonRampe2) Next(v Vec3) Vec3 {
	return Vec3{
		X: math.Cos(f.B*v.Y) + f.C*math.Cos(f.B*v.X),
		Y: math.Cos(f.A*v.X) + f.D*math.Cos(f.A*v.Y),
	}
}

type Bedhead struct{ A, B float64 }

func (f Bedhead) Next(v Vec3) Vec3 {
	return Vec3{
		X: math.Sin(v.X*v.Y/f.B)*v.Y + math.Cos(f.A*v.X-v.Y),
		Y: v.X + math.Sin(v.Y)/f.B,
	}
}

// step is the one-sided sign used by the Martin family of maps: 1 for
// positive x, 0 otherwise.
func step(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// Hopalong is Barry Martin's map.
type Hopalong struct{ A, B, C float64 }

func (f Hopalong) Next(v Vec3) Vec3 {
	return Vec3{
		X: v.Y - step(v.X)*math.Sqrt(math.Abs(f.B*v.X-f.C)),
		Y: f.A - v.X,
	}
}

type Quadruptwo struct{ A, B, C float64 }

func (f Quadruptwo) Next(v Vec3) Vec3 {
	l := math.Log(math.Abs(f.C*v.X - f.B))
	return Vec3{
		X: v.Y - step(v.X)*math.Sin(math.Log(math.Abs(f.B*v.X-f.C)))*math.Atan(l*l),
		Y: f.A - v.X,
	}
}

type Threeply struct{ A, B, C float64 }

func (f Threeply) Next(v Vec3) Vec3 {
	return Vec3{
		X: v.Y - step(v.X)*math.Abs(math.Sin(v.X)*math.Cos(f.B)+f.C-v.X*math.Sin(f.A+f.B+f.C)),
		Y: f.A - v.X,
	}
}

// GumowskiMira is the map studied at CERN by Gumowski and Mira.
type GumowskiMira struct{ A, B, Mu float64 }

func (f GumowskiMira) g(x float64) float64 {
	return x*f.Mu + 2*x*x*(1-f.Mu)/(1+x*x)
}

func (f GumowskiMira) Next(v Vec3) Vec3 {
	x := f.A*v.Y*(1-f.B*v.Y*v.Y) + v.Y + f.g(v.X)
	return Vec3{X: x, Y: -v.X + f.g(x)}
}

// KamTorus is the area preserving map whose orbits trace nested tori.
type KamTorus struct{ A float64 }

func (f KamTorus) Next(v Vec3) Vec3 {
	s, c := math.Sincos(f.A)
	q := v.X*v.X - v.Y
	return Vec3{X: v.X*c + q*s, Y: v.X*s - q*c}
}

// Icon is Field and Golubitsky's symmetric icon of the given degree.
type Icon struct {
	Lambda, Alpha, Beta, Gamma, Omega float64
	Degree                            int
}

func (f Icon) Next(v Vec3) Vec3 {
	x, y := v.X, v.Y
	p := f.Alpha*(x*x+y*y) + f.Lambda
	zr, zi := x, y
	for range f.Degree - 2 {
		zr, zi = zr*x-zi*y, zi*x+zr*y
	}
	p += f.Beta * (x*zr - y*zi)
	return Vec3{
		X: p*x + f.Gamma*zr - f.Omega*y,
		Y: p*y - f.Gamma*zi + f.Omega*x,
	}
}
