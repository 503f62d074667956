package fractal

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFloats parses a comma separated list such as "1.5,-0.3".
func ParseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidParams, s, err)
		}
		out[i] = v
	}
	return out, nil
}

// ParseComplex parses "re,im".
func ParseComplex(s string) (complex128, error) {
	v, err := ParseFloats(s)
	if err != nil {
		return 0, err
	}
	if len(v) != 2 {
		return 0, fmt.Errorf("%w: %q is not re,im", ErrInvalidParams, s)
	}
	return complex(v[0], v[1]), nil
}

// ParsePlane accepts a landmark name or "xmin,xmax,ymin,ymax".
func ParsePlane(s string) (Plane, error) {
	if p, ok := Landmarks[strings.ToLower(s)]; ok {
		return p, nil
	}
	v, err := ParseFloats(s)
	if err != nil {
		return Plane{}, err
	}
	if len(v) != 4 {
		return Plane{}, fmt.Errorf("%w: %q is neither a landmark nor xmin,xmax,ymin,ymax", ErrInvalidRegion, s)
	}
	p := Plane{Xmin: v[0], Xmax: v[1], Ymin: v[2], Ymax: v[3]}
	if !(p.Xmax > p.Xmin) || !(p.Ymax > p.Ymin) {
		return Plane{}, fmt.Errorf("%w: %q", ErrInvalidRegion, s)
	}
	return p, nil
}
