// Package ansi draws images as truecolor terminal text.
package ansi

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"

	// upper half block: foreground paints the top pixel, background the bottom
	halfBlock = '▀'
)

// HalfBlock encodes img as text, two pixel rows per line. Each cell carries
// 24-bit foreground and background colours. Lines are separated by '\n'
// and end with a reset.
func HalfBlock(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	sb.Grow(b.Dx() * (b.Dy() + 1) / 2 * 40)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		var last string
		for x := b.Min.X; x < b.Max.X; x++ {
			top := rgb(img.At(x, y))
			var sgr string
			if y+1 < b.Max.Y {
				sgr = cellSGR(top, rgb(img.At(x, y+1)))
			} else {
				sgr = fgSGR(top)
			}
			// runs of equal cells share one escape
			if sgr != last {
				sb.WriteString(sgr)
				last = sgr
			}
			sb.WriteRune(halfBlock)
		}
		sb.WriteString(Reset)
	}
	return sb.String()
}

func rgb(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func writeRGB(sb *strings.Builder, c color.RGBA) {
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.B)))
}

func cellSGR(fg, bg color.RGBA) string {
	var sb strings.Builder
	sb.WriteString(CSI + "38;2;")
	writeRGB(&sb, fg)
	sb.WriteString(";48;2;")
	writeRGB(&sb, bg)
	sb.WriteByte('m')
	return sb.String()
}

// fgSGR is used on the last line of an odd-height image, which has no
// bottom pixel to fill the background.
func fgSGR(fg color.RGBA) string {
	var sb strings.Builder
	sb.WriteString(CSI + "0;38;2;")
	writeRGB(&sb, fg)
	sb.WriteByte('m')
	return sb.String()
}

// Fit scales img to the largest size that fits cols × rows text cells when
// drawn with HalfBlock, keeping its aspect ratio.
func Fit(img image.Image, cols, rows int) *image.RGBA {
	sb := img.Bounds()
	w, h := max(cols, 1), max(2*rows, 1)
	if sb.Dx() > 0 && sb.Dy() > 0 {
		// width/height kept proportional to the source
		if w*sb.Dy() > h*sb.Dx() {
			w = max(1, h*sb.Dx()/sb.Dy())
		} else {
			h = max(1, w*sb.Dy()/sb.Dx())
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, sb, draw.Src, nil)
	return dst
}
