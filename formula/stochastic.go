package formula

import (
	"math"
	"math/rand/v2"
)

// Stochastic is a recurrence that draws randomness at every step.
type Stochastic interface {
	NextRand(v Vec3, r *rand.Rand) Vec3
}

// Trajectory is one orbit to accumulate: a start state and either a
// deterministic Map or a Stochastic map with its seed.
type Trajectory struct {
	Start Vec3
	Map   Map
	Rand  Stochastic
	Seed  uint64
}

// Affine is one weighted transform of an iterated function system:
// x' = A·x + B·y + E, y' = C·x + D·y + F, chosen with probability P.
type Affine struct {
	A, B, C, D, E, F float64
	P                float64
}

// IFS is an iterated function system played as the chaos game.
type IFS []Affine

func (s IFS) NextRand(v Vec3, r *rand.Rand) Vec3 {
	pp := r.Float64()
	sum := 0.0
	j := 0
	for ; j < len(s)-1; j++ {
		sum += s[j].P
		if sum > pp {
			break
		}
	}
	t := s[j]
	return Vec3{
		X: v.X*t.A + v.Y*t.B + t.E,
		Y: v.X*t.C + v.Y*t.D + t.F,
	}
}

// InverseJulia walks backwards along z -> z²+C, picking one of the two
// square roots at random. Its orbit settles onto the Julia set boundary.
type InverseJulia struct{ C complex128 }

func (f InverseJulia) NextRand(v Vec3, r *rand.Rand) Vec3 {
	zx := v.X - real(f.C)
	zy := v.Y - imag(f.C)
	abs := math.Hypot(zx, zy)
	x := math.Sqrt((abs + zx) / 2)
	y := math.Sqrt((abs - zx) / 2)
	if zy <= 0 {
		y = -y
	}
	if r.IntN(2) == 1 {
		x, y = -x, -y
	}
	return Vec3{X: x, Y: y}
}

// IFSTables holds the classic systems by name.
var IFSTables = map[string]IFS{
	"binary": {
		{0.5, 0, 0, 0.5, -2.563477, -0.000003, 0.333333},
		{0.5, 0, 0, 0.5, 2.436544, -0.000003, 0.333333},
		{0, -0.5, 0.5, 0, 4.873085, 7.563492, 0.333334},
	},
	"coral": {
		{0.307692, -0.531469, -0.461538, -0.293706, 5.401953, 8.655175, 0.4},
		{0.307692, -0.076923, 0.153846, -0.447552, -1.295248, 4.152990, 0.15},
		{0, 0.545455, 0.692308, -0.195804, -4.893637, 7.269794, 0.45},
	},
	"dragon": {
		{0.824074, 0.281482, -0.212346, 0.864198, -1.882290, -0.110607, 0.787473},
		{0.088272, 0.520988, -0.463889, -0.377778, 0.785360, 8.095795, 0.212527},
	},
	"feather": {
		{0.870370, 0.074074, -0.115741, 0.851852, -1.278016, 0.070331, 0.798030},
		{-0.162037, -0.407407, 0.495370, 0.074074, 6.835726, 5.799174, 0.201970},
	},
	"fern": {
		{0.85, 0.04, -0.04, 0.85, 0, 1.6, 0.85},
		{0.2, -0.26, 0.23, 0.22, 0, 1.6, 0.07},
		{-0.15, 0.28, 0.26, 0.24, 0, 0.44, 0.07},
		{0, 0, 0, 0.16, 0, 0, 0.01},
	},
	"koch": {
		{0.307692, 0, 0, 0.294118, 4.119164, 1.604278, 0.151515},
		{0.192308, -0.205882, 0.653846, 0.088235, -0.688840, 5.978916, 0.253788},
		{0.192308, 0.205882, -0.653846, 0.088235, 0.668580, 5.962514, 0.253788},
		{0.307692, 0, 0, 0.294118, -4.136530, 1.604278, 0.151515},
		{0.384615, 0, 0, -0.294118, -0.007718, 2.941176, 1},
	},
	"spiral": {
		{0.787879, -0.424242, 0.242424, 0.859848, 1.758647, 1.408065, 0.895652},
		{-0.121212, 0.257576, 0.151515, 0.053030, -6.721654, 1.377236, 0.052174},
		{0.181818, -0.136364, 0.090909, 0.181818, 6.086107, 1.568035, 0.052174},
	},
	"tree": {
		{0, 0, 0, 0.5, 0, 0, 0.05},
		{0.42, -0.42, 0.42, 0.42, 0, 0.2, 0.4},
		{0.42, 0.42, -0.42, 0.42, 0, 0.2, 0.4},
		{0.1, 0, 0, 0.1, 0, 0.2, 0.15},
	},
	"triangle": {
		{0.5, 0, 0, 0.5, -0.5, 0, 0.333333},
		{0.5, 0, 0, 0.5, 0.5, 0, 0.333333},
		{0.5, 0, 0, 0.5, 0, 0.86, 0.333334},
	},
}
