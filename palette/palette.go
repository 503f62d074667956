// Package palette provides the fixed 256-entry colour tables used to turn
// iteration counts and densities into pixels.
package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	fractal "github.com/marben/dist_fractal"
)

// Size is the number of entries in every palette.
const Size = 256

// Palette maps an index in [0,255] to an opaque colour.
// Palettes are never modified after construction and may be shared freely.
type Palette [Size]color.RGBA

// At returns the colour for index i. Only the low 8 bits of i are used.
func (p *Palette) At(i int) color.RGBA {
	return p[i&(Size-1)]
}

// Reversed returns a copy of p with the entry order reversed.
func (p *Palette) Reversed() *Palette {
	var r Palette
	for i := range Size {
		r[i] = p[Size-1-i]
	}
	return &r
}

// FromGradient builds a palette by blending evenly spaced hex colour stops
// in RGB space.
func FromGradient(stops ...string) (*Palette, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("gradient: %w", fractal.ErrEmptyPalette)
	}
	cols := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("gradient stop %q: %w", s, err)
		}
		cols[i] = c
	}
	var p Palette
	if len(cols) == 1 {
		for i := range Size {
			p[i] = rgba(cols[0])
		}
		return &p, nil
	}
	segs := float64(len(cols) - 1)
	for i := range Size {
		t := float64(i) / (Size - 1) * segs
		j := int(t)
		if j >= len(cols)-1 {
			j = len(cols) - 2
		}
		p[i] = rgba(cols[j].BlendRgb(cols[j+1], t-float64(j)))
	}
	return &p, nil
}

// FromHSV sweeps hue from h0 to h1 degrees at fixed saturation and value.
// Index 0 is black so that points inside a set stay dark.
func FromHSV(h0, h1, s, v float64) *Palette {
	var p Palette
	p[0] = color.RGBA{A: 255}
	for i := 1; i < Size; i++ {
		h := h0 + (h1-h0)*float64(i)/(Size-1)
		p[i] = rgba(colorful.Hsv(h, s, v))
	}
	return &p
}

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
