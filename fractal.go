package fractal

import (
	"errors"
	"fmt"
	"image"
)

// MaxPixels bounds the size of a single raster. Larger requests are rejected
// before anything is allocated.
const MaxPixels = 1 << 26

var (
	ErrInvalidRegion  = errors.New("invalid region")
	ErrInvalidParams  = errors.New("invalid iteration parameters")
	ErrEmptyPalette   = errors.New("empty palette")
	ErrTooLarge       = errors.New("raster too large")
	ErrUnknownFormula = errors.New("unknown formula")
)

// Plane is a rectangle in plane coordinates.
type Plane struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Region is a Plane sampled on a Width × Height pixel grid.
type Region struct {
	Plane
	Width, Height int
}

// NewRegion returns a validated region.
func NewRegion(p Plane, width, height int) (Region, error) {
	r := Region{Plane: p, Width: width, Height: height}
	if err := r.Validate(); err != nil {
		return Region{}, err
	}
	return r, nil
}

func (r Region) Validate() error {
	if !(r.Xmax > r.Xmin) || !(r.Ymax > r.Ymin) {
		return fmt.Errorf("%w: bounds (%g,%g)-(%g,%g)", ErrInvalidRegion, r.Xmin, r.Ymin, r.Xmax, r.Ymax)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidRegion, r.Width, r.Height)
	}
	if r.Width > MaxPixels/r.Height {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, r.Width, r.Height, MaxPixels)
	}
	return nil
}

func (r Region) StepX() float64 { return (r.Xmax - r.Xmin) / float64(r.Width) }
func (r Region) StepY() float64 { return (r.Ymax - r.Ymin) / float64(r.Height) }

// Point maps pixel (px, py) to plane coordinates. Row 0 is Ymin.
func (r Region) Point(px, py int) complex128 {
	return complex(r.Xmin+float64(px)*r.StepX(), r.Ymin+float64(py)*r.StepY())
}

// Pixel is the inverse of Point, truncating towards the containing pixel.
func (r Region) Pixel(z complex128) image.Point {
	return image.Pt(int((real(z)-r.Xmin)/r.StepX()), int((imag(z)-r.Ymin)/r.StepY()))
}

// Bounds returns the pixel rectangle covered by the region.
func (r Region) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

// IterationParams bound a single escape-time evaluation.
type IterationParams struct {
	MaxIter int
	Bailout float64
}

func (p IterationParams) Validate() error {
	if p.MaxIter <= 0 {
		return fmt.Errorf("%w: max iterations %d", ErrInvalidParams, p.MaxIter)
	}
	if !(p.Bailout > 0) {
		return fmt.Errorf("%w: bailout %g", ErrInvalidParams, p.Bailout)
	}
	return nil
}

// Axes selects which two state components a Projection draws.
type Axes int

const (
	AxesXY Axes = iota
	AxesXZ
	AxesYZ
)

func (a Axes) String() string {
	switch a {
	case AxesXZ:
		return "xz"
	case AxesYZ:
		return "yz"
	default:
		return "xy"
	}
}

// ParseAxes is the inverse of Axes.String.
func ParseAxes(s string) (Axes, error) {
	switch s {
	case "", "xy":
		return AxesXY, nil
	case "xz":
		return AxesXZ, nil
	case "yz":
		return AxesYZ, nil
	}
	return AxesXY, fmt.Errorf("%w: unknown axes %q", ErrInvalidParams, s)
}

// Projection maps attractor states onto raster pixels:
//
//	px = W/2 + Scale*a + OffsetX
//	py = H/2 + Scale*b + OffsetY
//
// where (a, b) are the components picked by Axes.
type Projection struct {
	Scale            float64
	OffsetX, OffsetY float64
	Axes             Axes
}

func (p Projection) Validate() error {
	if p.Scale == 0 {
		return fmt.Errorf("%w: zero projection scale", ErrInvalidParams)
	}
	return nil
}

// Pick returns the two components of (x, y, z) selected by the axes.
func (p Projection) Pick(x, y, z float64) (float64, float64) {
	switch p.Axes {
	case AxesXZ:
		return x, z
	case AxesYZ:
		return y, z
	default:
		return x, y
	}
}

// Project returns the pixel for state (x, y, z) on a w × h raster. The result
// may lie outside the raster.
func (p Projection) Project(x, y, z float64, w, h int) (int, int) {
	a, b := p.Pick(x, y, z)
	return int(float64(w)/2 + p.Scale*a + p.OffsetX), int(float64(h)/2 + p.Scale*b + p.OffsetY)
}

// Limits returns the window of plane coordinates visible on a w × h raster.
func (p Projection) Limits(w, h int) Plane {
	x0 := (-float64(w)/2 - p.OffsetX) / p.Scale
	x1 := (float64(w)/2 - p.OffsetX) / p.Scale
	y0 := (-float64(h)/2 - p.OffsetY) / p.Scale
	y1 := (float64(h)/2 - p.OffsetY) / p.Scale
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Plane{Xmin: x0, Xmax: x1, Ymin: y0, Ymax: y1}
}

// Unproject maps a pixel back to the plane coordinates of its top-left corner.
func (p Projection) Unproject(px, py, w, h int) (float64, float64) {
	return (float64(px) - float64(w)/2 - p.OffsetX) / p.Scale, (float64(py) - float64(h)/2 - p.OffsetY) / p.Scale
}
