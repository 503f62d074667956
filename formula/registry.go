package formula

import (
	"fmt"
	"slices"
	"strings"

	fractal "github.com/marben/dist_fractal"
)

// Entry is one renderable system together with the defaults it is drawn
// with. Escape-time entries use Escape, Plane, C, Bailout, MaxIter and
// Multiplier; density entries use Coeffs, Trajectories and the
// accumulation fields.
type Entry struct {
	Name       string
	Title      string
	EscapeTime bool

	Escape     Escape
	Pair       string // state-map partner of a parameter-map family
	Plane      fractal.Plane
	C          complex128
	Bailout    float64
	MaxIter    int
	Multiplier int

	Coeffs       []float64
	Trajectories func(coeffs []float64) ([]Trajectory, error)
	Steps        int
	SettleDown   int
	Projection   fractal.Projection
	MaxFactor    float64
	Cap          float64

	Palette string
}

// Params returns the default iteration budget and bailout of an escape-time
// entry.
func (e Entry) Params() fractal.IterationParams {
	return fractal.IterationParams{MaxIter: e.MaxIter, Bailout: e.Bailout}
}

var registry = map[string]Entry{}

func register(e Entry) {
	if _, dup := registry[e.Name]; dup {
		panic("formula: duplicate registration of " + e.Name)
	}
	if e.EscapeTime && e.Multiplier == 0 {
		e.Multiplier = 3
	}
	registry[e.Name] = e
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, error) {
	e, ok := registry[strings.ToLower(name)]
	if !ok {
		return Entry{}, fmt.Errorf("formula %q: %w", name, fractal.ErrUnknownFormula)
	}
	return e, nil
}

// Names lists every registered entry in sorted order.
func Names() []string {
	return names(func(Entry) bool { return true })
}

// EscapeNames lists the escape-time entries.
func EscapeNames() []string {
	return names(func(e Entry) bool { return e.EscapeTime })
}

// DensityNames lists the density-accumulation entries.
func DensityNames() []string {
	return names(func(e Entry) bool { return !e.EscapeTime })
}

func names(keep func(Entry) bool) []string {
	var out []string
	for name, e := range registry {
		if keep(e) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// coeffs checks that exactly n coefficients were supplied.
func coeffs(name string, c []float64, n int) error {
	if len(c) != n {
		return fmt.Errorf("%s takes %d coefficients, got %d: %w", name, n, len(c), fractal.ErrInvalidParams)
	}
	return nil
}

// single wraps a deterministic map started at one point.
func single(start Vec3, m Map) []Trajectory {
	return []Trajectory{{Start: start, Map: m}}
}
