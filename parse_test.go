package fractal

import (
	"errors"
	"slices"
	"testing"
)

func TestParseFloats(t *testing.T) {
	got, err := ParseFloats(" 1.5, -0.25,3 ")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []float64{1.5, -0.25, 3}) {
		t.Errorf("got %v", got)
	}
	if got, err := ParseFloats(""); err != nil || got != nil {
		t.Errorf("empty: %v %v", got, err)
	}
	if _, err := ParseFloats("1,x"); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("garbage: %v", err)
	}
}

func TestParseComplex(t *testing.T) {
	if c, err := ParseComplex("-0.8,0.156"); err != nil || c != complex(-0.8, 0.156) {
		t.Errorf("got %v %v", c, err)
	}
	if _, err := ParseComplex("1"); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("one part: %v", err)
	}
}

func TestParsePlane(t *testing.T) {
	tests := []struct {
		in   string
		want Plane
		err  error
	}{
		{"seahorse", SeahorseValley, nil},
		{"Mandelbrot", MandelbrotPlane, nil},
		{"-1,1,-0.5,0.5", Plane{Xmin: -1, Xmax: 1, Ymin: -0.5, Ymax: 0.5}, nil},
		{"1,-1,0,1", Plane{}, ErrInvalidRegion},
		{"1,2,3", Plane{}, ErrInvalidRegion},
		{"atlantis", Plane{}, ErrInvalidParams},
	}
	for _, tt := range tests {
		got, err := ParsePlane(tt.in)
		if !errors.Is(err, tt.err) || got != tt.want {
			t.Errorf("ParsePlane(%q) = %+v, %v; want %+v, %v", tt.in, got, err, tt.want, tt.err)
		}
	}
}
