package formula

import (
	"fmt"

	fractal "github.com/marben/dist_fractal"
)

var square2 = fractal.Plane{Xmin: -2, Xmax: 2, Ymin: -2, Ymax: 2}

func init() {
	escapeEntries()
	mapEntries()
	flowEntries()
	stochasticEntries()
}

func escapeEntries() {
	pairs := []struct {
		m, j         Entry
		mFam, jFam   Escape
		mPlan, jPlan fractal.Plane
	}{
		{
			m:     Entry{Name: "mandelbrot", Title: "Mandelbrot set", MaxIter: 1000, Palette: "blues"},
			j:     Entry{Name: "julia", Title: "Julia set", C: complex(0, 1), MaxIter: 1000, Palette: "blues"},
			mFam:  Quadratic{},
			jFam:  Quadratic{Julia: true},
			mPlan: fractal.MandelbrotPlane,
			jPlan: fractal.JuliaPlane,
		},
		{
			m:     Entry{Name: "mandelbrot-z4", Title: "Mandelbrot set, z⁴+c", MaxIter: 1000, Palette: "mandmap"},
			j:     Entry{Name: "julia-z4", Title: "Julia set, z⁴+c", C: complex(0.6, 0.55), MaxIter: 1000, Palette: "mandmap"},
			mFam:  Quartic{},
			jFam:  Quartic{Julia: true},
			mPlan: fractal.Plane{Xmin: -1.5, Xmax: 1.5, Ymin: -1.5, Ymax: 1.5},
			jPlan: fractal.Plane{Xmin: -1.5, Xmax: 1.5, Ymin: -1.5, Ymax: 1.5},
		},
		{
			m:     Entry{Name: "mandelbrot-z2-z", Title: "Mandelbrot set, z²−z+c", MaxIter: 1000, Palette: "blues"},
			j:     Entry{Name: "julia-z2-z", Title: "Julia set, z²−z+c", C: complex(0.3, 0.6), MaxIter: 1000, Palette: "blues"},
			mFam:  QuadraticMinusZ{},
			jFam:  QuadraticMinusZ{Julia: true},
			mPlan: fractal.MandelbrotPlane,
			jPlan: fractal.JuliaPlane,
		},
		{
			m:     Entry{Name: "barnsley-m1", Title: "Barnsley M1", MaxIter: 500, Palette: "blues"},
			j:     Entry{Name: "barnsley-j1", Title: "Barnsley J1", C: complex(0.4, 1.5), MaxIter: 500, Palette: "blues"},
			mFam:  BarnsleyOne{},
			jFam:  BarnsleyOne{Julia: true},
			mPlan: square2,
			jPlan: square2,
		},
		{
			m:     Entry{Name: "barnsley-m2", Title: "Barnsley M2", MaxIter: 500, Palette: "blues"},
			j:     Entry{Name: "barnsley-j2", Title: "Barnsley J2", C: complex(1.2, -0.6), MaxIter: 500, Palette: "blues"},
			mFam:  BarnsleyTwo{},
			jFam:  BarnsleyTwo{Julia: true},
			mPlan: square2,
			jPlan: square2,
		},
		{
			m:     Entry{Name: "barnsley-m3", Title: "Barnsley M3", MaxIter: 500, Palette: "blues"},
			j:     Entry{Name: "barnsley-j3", Title: "Barnsley J3", C: complex(0.1, 0.36), MaxIter: 500, Palette: "blues"},
			mFam:  BarnsleyThree{},
			jFam:  BarnsleyThree{Julia: true},
			mPlan: square2,
			jPlan: square2,
		},
		{
			m:     Entry{Name: "phoenix-m", Title: "Phoenix, Mandelbrot version", Bailout: 4, MaxIter: 1000, Palette: "blues"},
			j:     Entry{Name: "phoenix-j", Title: "Phoenix, Julia version", C: complex(0, 1), Bailout: 4, MaxIter: 1000, Palette: "blues"},
			mFam:  Phoenix{},
			jFam:  Phoenix{Julia: true},
			mPlan: fractal.MandelbrotPlane,
			jPlan: square2,
		},
		{
			m:     Entry{Name: "manowar", Title: "Manowar", MaxIter: 1000, Palette: "mandmap"},
			j:     Entry{Name: "manowar-j", Title: "Manowar, Julia version", C: complex(0.0542, -0.045), MaxIter: 1000, Palette: "blues"},
			mFam:  Manowar{},
			jFam:  Manowar{Julia: true},
			mPlan: fractal.Plane{Xmin: -1.5, Xmax: 0.5, Ymin: -1, Ymax: 1},
			jPlan: fractal.Plane{Xmin: -1.5, Xmax: 0.5, Ymin: -1, Ymax: 1},
		},
		{
			m:     Entry{Name: "lambda-m", Title: "Lambda, parameter plane", MaxIter: 1000, Palette: "mandmap"},
			j:     Entry{Name: "lambda", Title: "Lambda", C: complex(0.85, 0.6), MaxIter: 1000, Palette: "mandmap"},
			mFam:  Lambda{},
			jFam:  Lambda{Julia: true},
			mPlan: fractal.Plane{Xmin: -2, Xmax: 4, Ymin: -3, Ymax: 3},
			jPlan: fractal.Plane{Xmin: -1, Xmax: 2, Ymin: -1.5, Ymax: 1.5},
		},
		{
			m:     Entry{Name: "mandel-fn", Title: "Mandelbrot set, c·sin z", Bailout: 64, MaxIter: 255, Palette: "blues"},
			j:     Entry{Name: "julia-fn", Title: "Julia set, c·sin z", C: complex(0, 1), Bailout: 64, MaxIter: 255, Palette: "blues"},
			mFam:  Sine{},
			jFam:  Sine{Julia: true},
			mPlan: fractal.Plane{Xmin: -3, Xmax: 3, Ymin: -3, Ymax: 3},
			jPlan: fractal.Plane{Xmin: -3, Xmax: 3, Ymin: -3, Ymax: 3},
		},
	}
	for _, p := range pairs {
		m, j := p.m, p.j
		m.EscapeTime, j.EscapeTime = true, true
		m.Escape, j.Escape = p.mFam, p.jFam
		m.Plane, j.Plane = p.mPlan, p.jPlan
		m.Pair = j.Name
		if m.Bailout == 0 {
			m.Bailout = 2
		}
		if j.Bailout == 0 {
			j.Bailout = 2
		}
		register(m)
		register(j)
	}

	register(Entry{
		Name:       "newton",
		Title:      "Newton's method for z³−1",
		EscapeTime: true,
		Escape:     Newton{Power: 3},
		Plane:      square2,
		Bailout:    0.01,
		MaxIter:    200,
		Palette:    "mandmap",
	})
}

// planar registers a two dimensional map started at start.
func planar(e Entry, start Vec3, n int, build func(c []float64) Map) {
	name := e.Name
	e.Trajectories = func(c []float64) ([]Trajectory, error) {
		if err := coeffs(name, c, n); err != nil {
			return nil, err
		}
		return single(start, build(c)), nil
	}
	if e.Steps == 0 {
		e.Steps = 1_000_000
	}
	if e.SettleDown == 0 {
		e.SettleDown = 100
	}
	if e.Palette == "" {
		e.Palette = "paper"
	}
	register(e)
}

func mapEntries() {
	p0 := Vec3{X: 0.1}
	planar(Entry{
		Name: "pickover", Title: "Pickover attractor",
		Coeffs:     []float64{-1.7, 1.8, -0.9, -0.4},
		Projection: fractal.Projection{Scale: 180},
		MaxFactor:  1.0 / 40,
	}, p0, 4, func(c []float64) Map { return Pickover{c[0], c[1], c[2], c[3]} })

	planar(Entry{
		Name: "svensson", Title: "Svensson attractor",
		Coeffs:     []float64{-2.337, -2.337, 0.533, 1.378},
		Projection: fractal.Projection{Scale: 160},
		MaxFactor:  1.0 / 15,
	}, p0, 4, func(c []float64) Map { return Svensson{c[0], c[1], c[2], c[3]} })

	planar(Entry{
		Name: "bedhead", Title: "Bedhead attractor",
		Coeffs:     []float64{0.06, 0.98},
		Projection: fractal.Projection{Scale: 80, OffsetX: 50, OffsetY: 10},
		MaxFactor:  1.0 / 100,
	}, Vec3{}, 2, func(c []float64) Map { return Bedhead{c[0], c[1]} })

	planar(Entry{
		Name: "fractal-dream", Title: "Fractal Dream attractor",
		Coeffs:     []float64{-0.97, 2.88, 0.77, 0.74},
		Projection: fractal.Projection{Scale: 200},
		MaxFactor:  1.0 / 10,
	}, p0, 4, func(c []float64) Map { return FractalDream{c[0], c[1], c[2], c[3]} })

	planar(Entry{
		Name: "jason-rampe-1", Title: "Jason Rampe attractor 1",
		Coeffs:     []float64{-2.7918, 2.1196, 1.0284, 0.1384},
		Projection: fractal.Projection{Scale: 200, OffsetX: -20},
		MaxFactor:  1.0 / 10,
	}, p0, 4, func(c []float64) Map { return JasonRampe1{c[0], c[1], c[2], c[3]} })

	planar(Entry{
		Name: "jason-rampe-2", Title: "Jason Rampe attractor 2",
		Coeffs:     []float64{-2.9581, 0.927, 2.7842, 0.6267},
		Projection: fractal.Projection{Scale: 120, OffsetX: -70},
		MaxFactor:  1.0 / 50,
	}, p0, 4, func(c []float64) Map { return JasonRampe2{c[0], c[1], c[2], c[3]} })

	planar(Entry{
		Name: "quadruptwo", Title: "Quadruptwo attractor",
		Coeffs:     []float64{3.1, 1.8, -0.9},
		Projection: fractal.Projection{Scale: 9},
		MaxFactor:  1.0 / 3,
	}, Vec3{}, 3, func(c []float64) Map { return Quadruptwo{c[0], c[1], c[2]} })

	planar(Entry{
		Name: "threeply", Title: "Threeply attractor",
		Coeffs:     []float64{3.1, 1.8, -0.9},
		Projection: fractal.Projection{Scale: 8},
		MaxFactor:  1.0 / 10,
	}, p0, 3, func(c []float64) Map { return Threeply{c[0], c[1], c[2]} })

	planar(Entry{
		Name: "hopalong", Title: "Hopalong attractor",
		Coeffs:     []float64{3.1, 1.8, -0.9},
		SettleDown: 10,
		Projection: fractal.Projection{Scale: 10},
		MaxFactor:  1.0 / 10,
	}, Vec3{}, 3, func(c []float64) Map { return Hopalong{c[0], c[1], c[2]} })

	planar(Entry{
		Name: "gumowski-mira", Title: "Gumowski–Mira attractor",
		Coeffs:     []float64{0.01, 0.5, -0.8},
		SettleDown: 10,
		Projection: fractal.Projection{Scale: 18, OffsetX: -40},
		MaxFactor:  1.0 / 10,
	}, Vec3{Y: 0.1}, 3, func(c []float64) Map { return GumowskiMira{c[0], c[1], c[2]} })

	planar(Entry{
		Name: "de-jong", Title: "Peter de Jong attractor",
		Coeffs:     []float64{-2.7, -0.09, -0.86, -2.2},
		SettleDown: 1000,
		Projection: fractal.Projection{Scale: 180},
		MaxFactor:  1.0 / 20,
	}, Vec3{}, 4, func(c []float64) Map { return DeJong{c[0], c[1], c[2], c[3]} })

	planar(Entry{
		Name: "icon", Title: "Symmetric icon",
		Coeffs:     []float64{-2.5, 5, -1.9, 1, 0.188, 5},
		SettleDown: 10,
		Projection: fractal.Projection{Scale: 250},
		MaxFactor:  1.0 / 20,
	}, Vec3{X: 0.01, Y: 0.01}, 6, func(c []float64) Map {
		return Icon{Lambda: c[0], Alpha: c[1], Beta: c[2], Gamma: c[3], Omega: c[4], Degree: int(c[5])}
	})

	register(Entry{
		Name: "kam-torus", Title: "Kam torus",
		Coeffs: []float64{1.3, 0, 1.5, 0.03},
		Trajectories: func(c []float64) ([]Trajectory, error) {
			if err := coeffs("kam-torus", c, 4); err != nil {
				return nil, err
			}
			if !(c[3] > 0) || c[2] < c[1] {
				return nil, fmt.Errorf("kam-torus orbit range %g..%g step %g: %w", c[1], c[2], c[3], fractal.ErrInvalidParams)
			}
			m := KamTorus{A: c[0]}
			var out []Trajectory
			for o := c[1]; o < c[2]; o += c[3] {
				out = append(out, Trajectory{Start: Vec3{X: o / 3, Y: o / 3}, Map: m})
			}
			return out, nil
		},
		Steps:      2000,
		Projection: fractal.Projection{Scale: 250},
		MaxFactor:  1.0 / 5,
		Palette:    "paper",
	})

	register(Entry{
		Name: "pickover-3d", Title: "Pickover attractor in 3D",
		Coeffs: []float64{2.24, 0.43, -0.65, -2.43, 0.8},
		Trajectories: func(c []float64) ([]Trajectory, error) {
			if err := coeffs("pickover-3d", c, 5); err != nil {
				return nil, err
			}
			return single(Vec3{}, Pickover3D{c[0], c[1], c[2], c[3], c[4]}), nil
		},
		Steps:      500_000,
		SettleDown: 100,
		Projection: fractal.Projection{Scale: 90},
		MaxFactor:  1.0 / 20,
		Palette:    "paper",
	})
}

// flow registers a continuous system integrated by Euler steps; the last
// coefficient is the time step.
func flow(e Entry, start Vec3, n int, build func(c []float64) Flow) {
	name := e.Name
	e.Trajectories = func(c []float64) ([]Trajectory, error) {
		if err := coeffs(name, c, n+1); err != nil {
			return nil, err
		}
		dt := c[n]
		if !(dt > 0) {
			return nil, fmt.Errorf("%s time step %g: %w", name, dt, fractal.ErrInvalidParams)
		}
		return single(start, Euler{Flow: build(c), Dt: dt}), nil
	}
	if e.Palette == "" {
		e.Palette = "paper"
	}
	register(e)
}

func flowEntries() {
	// Lorenz is drawn with the z axis pointing up, hence the negative scale.
	lorenzView := fractal.Projection{Scale: -11, OffsetY: 275, Axes: fractal.AxesXZ}

	flow(Entry{
		Name: "lorenz", Title: "Lorenz attractor",
		Coeffs:     []float64{10, 28, 2.667, 0.001},
		Steps:      300_000,
		SettleDown: 1000,
		Projection: lorenzView,
		MaxFactor:  1.0 / 10,
	}, Vec3{Y: 1, Z: 1.05}, 3, func(c []float64) Flow { return Lorenz{c[0], c[1], c[2]} })

	flow(Entry{
		Name: "rossler", Title: "Rössler attractor",
		Coeffs:     []float64{0.3, 0.2, 5.7, 0.001},
		Steps:      300_000,
		SettleDown: 50_000,
		Projection: fractal.Projection{Scale: 20},
		MaxFactor:  1.0 / 10,
	}, Vec3{X: 0.1, Y: 0.1, Z: 6}, 3, func(c []float64) Flow { return Rossler{c[0], c[1], c[2]} })

	flow(Entry{
		Name: "wang-sun", Title: "Wang–Sun attractor",
		Coeffs:     []float64{0.2, -0.01, 1, -0.4, -1, -1, 0.001},
		Steps:      1_000_000,
		SettleDown: 1000,
		Projection: fractal.Projection{Scale: 60},
		MaxFactor:  1.0 / 10,
	}, Vec3{X: 1.05, Y: 1.1, Z: 1.5}, 6, func(c []float64) Flow { return WangSun{c[0], c[1], c[2], c[3], c[4], c[5]} })

	register(Entry{
		Name: "dynamic", Title: "Dynamic system on a grid of starts",
		Coeffs: []float64{-2.7, 2.8, 0.3},
		Trajectories: func(c []float64) ([]Trajectory, error) {
			if err := coeffs("dynamic", c, 3); err != nil {
				return nil, err
			}
			if !(c[2] > 0) {
				return nil, fmt.Errorf("dynamic time step %g: %w", c[2], fractal.ErrInvalidParams)
			}
			m := Euler{Flow: Dynamic{A: c[0], B: c[1]}, Dt: c[2]}
			var out []Trajectory
			for x0 := 0; x0 < 50; x0 += 5 {
				for y0 := 0; y0 < 50; y0 += 5 {
					out = append(out, Trajectory{Start: Vec3{X: float64(x0), Y: float64(y0)}, Map: m})
				}
			}
			return out, nil
		},
		Steps:      1000,
		Projection: fractal.Projection{Scale: 10, OffsetX: -200, OffsetY: -230},
		MaxFactor:  1.0 / 5,
		Palette:    "paper",
	})

	register(Entry{
		Name: "lorenz-sweep", Title: "Lorenz attractor, sweep of b",
		Coeffs: []float64{10, 28, 2, 0.05, 64, 0.005},
		Trajectories: func(c []float64) ([]Trajectory, error) {
			if err := coeffs("lorenz-sweep", c, 6); err != nil {
				return nil, err
			}
			n := int(c[4])
			if n <= 0 || !(c[5] > 0) {
				return nil, fmt.Errorf("lorenz-sweep count %g time step %g: %w", c[4], c[5], fractal.ErrInvalidParams)
			}
			out := make([]Trajectory, n)
			for k := range out {
				out[k] = Trajectory{
					Start: Vec3{X: 1, Y: 0.5, Z: 1.05},
					Map:   Euler{Flow: Lorenz{S: c[0], R: c[1], B: c[2] + float64(k)*c[3]}, Dt: c[5]},
				}
			}
			return out, nil
		},
		Steps:      20_000,
		SettleDown: 100,
		Projection: lorenzView,
		MaxFactor:  1.0 / 10,
		Palette:    "paper",
	})
}

func stochasticEntries() {
	for name, table := range IFSTables {
		register(Entry{
			Name:  "ifs-" + name,
			Title: "IFS " + name,
			Trajectories: func([]float64) ([]Trajectory, error) {
				return []Trajectory{{Start: Vec3{X: 1, Y: 1}, Rand: table, Seed: 1}}, nil
			},
			Steps:      300_000,
			SettleDown: 10,
			Projection: fractal.Projection{Scale: 30, OffsetY: -150},
			MaxFactor:  1,
			Cap:        50,
			Palette:    "paper",
		})
	}

	register(Entry{
		Name:   "inverse-julia",
		Title:  "Julia set by inverse iteration",
		Coeffs: []float64{-0.390540870218399, -0.586787907346969},
		Trajectories: func(c []float64) ([]Trajectory, error) {
			if err := coeffs("inverse-julia", c, 2); err != nil {
				return nil, err
			}
			return []Trajectory{{
				Start: Vec3{X: 0.5, Y: 0.5},
				Rand:  InverseJulia{C: complex(c[0], c[1])},
				Seed:  1,
			}}, nil
		},
		Steps:      1_000_000,
		SettleDown: 100,
		Projection: fractal.Projection{Scale: 180},
		MaxFactor:  1,
		Cap:        20,
		Palette:    "paper",
	})
}
