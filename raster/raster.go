// Package raster holds the scalar fields produced by the evaluators and
// turns them into images: min/max contrast normalization and palette
// compositing.
package raster

import (
	"fmt"
	"image"

	fractal "github.com/marben/dist_fractal"
)

func checkSize(r image.Rectangle) error {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: raster %v", fractal.ErrInvalidRegion, r)
	}
	if w > fractal.MaxPixels/h {
		return fmt.Errorf("%w: raster %v", fractal.ErrTooLarge, r)
	}
	return nil
}

// Iter is a raster of escape iteration counts. Count 0 means the sample never
// escaped. Offsets, when present, shifts the colour index of each cell.
type Iter struct {
	Rect    image.Rectangle
	Counts  []int32
	Offsets []int32
}

// NewIter allocates a zeroed count raster covering r.
func NewIter(r image.Rectangle) (*Iter, error) {
	if err := checkSize(r); err != nil {
		return nil, err
	}
	return &Iter{Rect: r, Counts: make([]int32, r.Dx()*r.Dy())}, nil
}

func (r *Iter) index(x, y int) int {
	return (y-r.Rect.Min.Y)*r.Rect.Dx() + (x - r.Rect.Min.X)
}

// At returns the count at pixel (x, y), which must lie inside Rect.
func (r *Iter) At(x, y int) int {
	return int(r.Counts[r.index(x, y)])
}

// Offset returns the colour offset at (x, y), or 0 without offsets.
func (r *Iter) Offset(x, y int) int {
	if r.Offsets == nil {
		return 0
	}
	return int(r.Offsets[r.index(x, y)])
}

func (r *Iter) Set(x, y, count int) {
	r.Counts[r.index(x, y)] = int32(count)
}

// SetOffset records a colour offset, allocating the offset plane on first use.
func (r *Iter) SetOffset(x, y, off int) {
	if r.Offsets == nil {
		r.Offsets = make([]int32, len(r.Counts))
	}
	r.Offsets[r.index(x, y)] = int32(off)
}

// Tile returns a copy of the counts inside rect in transferable form.
func (r *Iter) Tile(rect image.Rectangle) fractal.TileCounts {
	rect = rect.Intersect(r.Rect)
	t := fractal.TileCounts{Rect: rect, Counts: make([]int32, 0, rect.Dx()*rect.Dy())}
	if r.Offsets != nil {
		t.Offsets = make([]int32, 0, cap(t.Counts))
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		i := r.index(rect.Min.X, y)
		t.Counts = append(t.Counts, r.Counts[i:i+rect.Dx()]...)
		if r.Offsets != nil {
			t.Offsets = append(t.Offsets, r.Offsets[i:i+rect.Dx()]...)
		}
	}
	return t
}

// Paste copies a tile into the raster. The tile must lie within Rect.
func (r *Iter) Paste(t fractal.TileCounts) error {
	if !t.Rect.In(r.Rect) {
		return fmt.Errorf("tile %v outside raster %v", t.Rect, r.Rect)
	}
	w := t.Rect.Dx()
	if len(t.Counts) != w*t.Rect.Dy() {
		return fmt.Errorf("tile %v carries %d counts", t.Rect, len(t.Counts))
	}
	if t.Offsets != nil && len(t.Offsets) != len(t.Counts) {
		return fmt.Errorf("tile %v carries %d offsets", t.Rect, len(t.Offsets))
	}
	if t.Offsets != nil && r.Offsets == nil {
		r.Offsets = make([]int32, len(r.Counts))
	}
	for row := 0; row < t.Rect.Dy(); row++ {
		i := r.index(t.Rect.Min.X, t.Rect.Min.Y+row)
		copy(r.Counts[i:i+w], t.Counts[row*w:(row+1)*w])
		if t.Offsets != nil {
			copy(r.Offsets[i:i+w], t.Offsets[row*w:(row+1)*w])
		}
	}
	return nil
}

// Histogram counts escaped cells in bins equal-width bins spanning
// [1, maxIter). Cells with count 0 are left out.
func (r *Iter) Histogram(bins, maxIter int) []int {
	if bins <= 0 || maxIter <= 1 {
		return nil
	}
	h := make([]int, bins)
	span := maxIter - 1
	for _, c := range r.Counts {
		if c <= 0 {
			continue
		}
		b := (int(c) - 1) * bins / span
		if b >= bins {
			b = bins - 1
		}
		h[b]++
	}
	return h
}

// Float is a raster of accumulated densities or other real-valued fields.
type Float struct {
	Rect   image.Rectangle
	Values []float64
}

// NewFloat allocates a zeroed w × h raster anchored at the origin.
func NewFloat(w, h int) (*Float, error) {
	r := image.Rect(0, 0, w, h)
	if err := checkSize(r); err != nil {
		return nil, err
	}
	return &Float{Rect: r, Values: make([]float64, w*h)}, nil
}

func (r *Float) index(x, y int) int {
	return (y-r.Rect.Min.Y)*r.Rect.Dx() + (x - r.Rect.Min.X)
}

func (r *Float) At(x, y int) float64 {
	return r.Values[r.index(x, y)]
}

func (r *Float) Set(x, y int, v float64) {
	r.Values[r.index(x, y)] = v
}

// Add increments the cell at (x, y) by v. Points outside the raster are
// dropped and reported as false.
func (r *Float) Add(x, y int, v float64) bool {
	if !image.Pt(x, y).In(r.Rect) {
		return false
	}
	r.Values[r.index(x, y)] += v
	return true
}

// AddRaster sums o into r cell by cell. Both must cover the same rectangle.
func (r *Float) AddRaster(o *Float) error {
	if o.Rect != r.Rect {
		return fmt.Errorf("raster %v added to %v", o.Rect, r.Rect)
	}
	for i, v := range o.Values {
		r.Values[i] += v
	}
	return nil
}

// Mass is the sum of all cells.
func (r *Float) Mass() float64 {
	var m float64
	for _, v := range r.Values {
		m += v
	}
	return m
}

// NonZeroBounds returns the smallest rectangle holding every non-zero cell.
// The rectangle is empty for an all-zero raster.
func (r *Float) NonZeroBounds() image.Rectangle {
	var b image.Rectangle
	w := r.Rect.Dx()
	for i, v := range r.Values {
		if v == 0 {
			continue
		}
		p := image.Pt(r.Rect.Min.X+i%w, r.Rect.Min.Y+i/w)
		b = b.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return b
}
