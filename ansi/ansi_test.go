package ansi

import (
	"image"
	"image/color"
	"testing"
)

func TestHalfBlock(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 0, red)
	img.SetRGBA(0, 1, blue)
	img.SetRGBA(1, 1, red)
	img.SetRGBA(0, 2, blue)
	img.SetRGBA(1, 2, blue)

	want := "\x1b[38;2;255;0;0;48;2;0;0;255m▀\x1b[38;2;255;0;0;48;2;255;0;0m▀\x1b[0m\n" +
		"\x1b[0;38;2;0;0;255m▀▀\x1b[0m"
	if got := HalfBlock(img); got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestHalfBlockEmpty(t *testing.T) {
	if got := HalfBlock(image.NewRGBA(image.Rectangle{})); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestFit(t *testing.T) {
	green := color.RGBA{0, 200, 0, 255}
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	for i := 0; i < len(src.Pix); i += 4 {
		copy(src.Pix[i:], []uint8{green.R, green.G, green.B, green.A})
	}

	cases := []struct {
		cols, rows int
		want       image.Rectangle
	}{
		{20, 20, image.Rect(0, 0, 20, 10)},
		{200, 10, image.Rect(0, 0, 40, 20)},
		{0, 0, image.Rect(0, 0, 1, 1)},
	}
	for _, c := range cases {
		got := Fit(src, c.cols, c.rows)
		if got.Bounds() != c.want {
			t.Errorf("Fit(%d,%d) = %v, want %v", c.cols, c.rows, got.Bounds(), c.want)
			continue
		}
		if px := got.RGBAAt(0, 0); px != green {
			t.Errorf("Fit(%d,%d) corner %v", c.cols, c.rows, px)
		}
	}
}
