package palette

import (
	"fmt"
	"strings"

	fractal "github.com/marben/dist_fractal"
)

type named struct {
	name string
	p    *Palette
}

// set is the fixed, ordered collection of named palettes.
var set = []named{
	{"blues", mustGradient("#000000", "#000050", "#1040c0", "#80c0ff", "#ffffff", "#4080ff", "#000040")},
	{"greens", mustGradient("#000000", "#003000", "#10a020", "#c0ff80", "#20a040", "#002000")},
	{"gold", mustGradient("#000000", "#402000", "#c08000", "#ffe060", "#fff8d0", "#a06000", "#201000")},
	{"ice", mustGradient("#000010", "#103050", "#60a0c0", "#e0ffff", "#80c0e0", "#204060")},
	{"mandmap", mustGradient("#000000", "#0000a8", "#00a8a8", "#fcfc54", "#fc5454", "#a800a8", "#fcfcfc", "#0000a8")},
	{"fire", mustGradient("#000000", "#500000", "#d02000", "#ff9000", "#ffff60", "#ffffff")},
	{"ocean", mustGradient("#000000", "#001838", "#006080", "#00b0a0", "#c0f0e0", "#006080")},
	{"sunset", mustGradient("#000000", "#301040", "#a02060", "#ff6040", "#ffd080", "#402060")},
	{"plasma", mustGradient("#0d0887", "#6a00a8", "#b12a90", "#e16462", "#fca636", "#f0f921")},
	{"rainbow", FromHSV(0, 360, 0.9, 1)},
	{"grays", mustGradient("#000000", "#ffffff")},
	{"paper", mustGradient("#ffffff", "#000000")},
}

func mustGradient(stops ...string) *Palette {
	p, err := FromGradient(stops...)
	if err != nil {
		panic(err)
	}
	return p
}

// Names lists the available palettes in their fixed order.
func Names() []string {
	names := make([]string, len(set))
	for i, n := range set {
		names[i] = n.name
	}
	return names
}

// Get returns the palette registered under name.
func Get(name string) (*Palette, error) {
	for _, n := range set {
		if strings.EqualFold(n.name, name) {
			return n.p, nil
		}
	}
	return nil, fmt.Errorf("palette %q: %w", name, fractal.ErrEmptyPalette)
}

// Count returns the number of named palettes.
func Count() int { return len(set) }

// ByIndex returns the palette at position i, wrapping in both directions.
func ByIndex(i int) *Palette {
	i %= len(set)
	if i < 0 {
		i += len(set)
	}
	return set[i].p
}

// Index returns the position of name in Names, or -1.
func Index(name string) int {
	for i, n := range set {
		if strings.EqualFold(n.name, name) {
			return i
		}
	}
	return -1
}
