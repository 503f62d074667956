package palette

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	fractal "github.com/marben/dist_fractal"
)

func TestNamedSet(t *testing.T) {
	names := Names()
	if len(names) < 10 {
		t.Fatalf("only %d palettes", len(names))
	}
	seen := make(map[string]bool)
	for i, name := range names {
		if seen[name] {
			t.Errorf("duplicate palette %q", name)
		}
		seen[name] = true

		p, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if p != ByIndex(i) {
			t.Errorf("ByIndex(%d) is not %q", i, name)
		}
		if Index(name) != i {
			t.Errorf("Index(%q) = %d, want %d", name, Index(name), i)
		}
		for j, c := range p {
			if c.A != 255 {
				t.Fatalf("%s[%d] is not opaque: %v", name, j, c)
			}
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-palette"); !errors.Is(err, fractal.ErrEmptyPalette) {
		t.Errorf("got %v", err)
	}
}

func TestByIndexWraps(t *testing.T) {
	n := Count()
	if ByIndex(-1) != ByIndex(n-1) {
		t.Error("ByIndex(-1) does not wrap to the last palette")
	}
	if ByIndex(n) != ByIndex(0) {
		t.Error("ByIndex(n) does not wrap to the first palette")
	}
}

func TestFromGradientEndpoints(t *testing.T) {
	p, err := FromGradient("#000000", "#ffffff")
	if err != nil {
		t.Fatal(err)
	}
	want := []color.RGBA{{0, 0, 0, 255}, {255, 255, 255, 255}}
	got := []color.RGBA{p[0], p[Size-1]}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("endpoints (-want +got):\n%s", d)
	}
	for i := 1; i < Size; i++ {
		if p[i].R < p[i-1].R {
			t.Fatalf("gradient not monotone at %d", i)
		}
	}
}

func TestFromGradientErrors(t *testing.T) {
	if _, err := FromGradient(); !errors.Is(err, fractal.ErrEmptyPalette) {
		t.Errorf("no stops: got %v", err)
	}
	if _, err := FromGradient("#zzzzzz"); err == nil {
		t.Error("bad hex accepted")
	}
}

func TestReversed(t *testing.T) {
	grays, err := Get("grays")
	if err != nil {
		t.Fatal(err)
	}
	paper, err := Get("paper")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(*paper, *grays.Reversed()); d != "" {
		t.Errorf("paper is not reversed grays (-want +got):\n%s", d)
	}
}

func TestAtMasksIndex(t *testing.T) {
	p := ByIndex(0)
	if p.At(256+7) != p[7] || p.At(-1) != p[255] {
		t.Error("At does not wrap to [0,255]")
	}
}
