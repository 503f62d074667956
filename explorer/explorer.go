// Package explorer couples a parameter map with the state map of the
// parameter selected on it, recomputing only what a change invalidates.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
	"sync/atomic"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/escape"
	"github.com/marben/dist_fractal/formula"
	"github.com/marben/dist_fractal/palette"
	"github.com/marben/dist_fractal/raster"
)

// ErrStale is returned by Render when a newer state was requested before
// the render started.
var ErrStale = errors.New("stale frame")

const (
	DefaultSize    = 256
	DefaultMaxIter = 100
)

// Config selects the family to explore.
type Config struct {
	// Family is the registry name of a parameter-map formula with a
	// state-map pair, such as "mandelbrot".
	Family  string
	Size    int
	MaxIter int
	Palette string
	Workers int
}

// Phase is Idle when the last requested state has been committed.
type Phase int

const (
	Idle Phase = iota
	Recomputing
)

func (p Phase) String() string {
	if p == Recomputing {
		return "recomputing"
	}
	return "idle"
}

// Frame is one rendered pair of maps.
type Frame struct {
	Version uint64
	State   State
	// C is the selected parameter in plane coordinates.
	C complex128

	ParamIter  *raster.Iter
	StateIter  *raster.Iter
	ParamImage *image.RGBA
	StateImage *image.RGBA
}

type stateKey struct {
	sel     image.Point
	maxIter int
}

// Explorer renders frames for successive states. Render may be called from
// several goroutines; Commit keeps only the newest requested frame.
type Explorer struct {
	param, state   formula.Entry
	paramRegion    fractal.Region
	stateRegion    fractal.Region
	workers        int
	initialMaxIter int
	initialPalette int

	mu sync.Mutex
	// the parameter map only depends on the iteration budget
	paramIter    *raster.Iter
	paramMaxIter int
	stateIter    *raster.Iter
	stateKey     stateKey
	frame        *Frame

	latest    atomic.Uint64
	committed atomic.Uint64
}

// New prepares an explorer. Nothing is evaluated until the first Render.
func New(cfg Config) (*Explorer, error) {
	if cfg.Family == "" {
		cfg.Family = "mandelbrot"
	}
	param, err := formula.Lookup(cfg.Family)
	if err != nil {
		return nil, err
	}
	if !param.EscapeTime || param.Pair == "" {
		return nil, fmt.Errorf("%w: %s has no state map to explore", fractal.ErrUnknownFormula, param.Name)
	}
	state, err := formula.Lookup(param.Pair)
	if err != nil {
		return nil, err
	}
	size := cfg.Size
	if size == 0 {
		size = DefaultSize
	}
	paramRegion, err := fractal.NewRegion(param.Plane, size, size)
	if err != nil {
		return nil, err
	}
	stateRegion, err := fractal.NewRegion(state.Plane, size, size)
	if err != nil {
		return nil, err
	}
	maxIter := cfg.MaxIter
	if maxIter == 0 {
		maxIter = DefaultMaxIter
	}
	pal := param.Palette
	if cfg.Palette != "" {
		pal = cfg.Palette
	}
	idx := palette.Index(pal)
	if idx < 0 {
		return nil, fmt.Errorf("palette %q: %w", pal, fractal.ErrEmptyPalette)
	}
	return &Explorer{
		param:          param,
		state:          state,
		paramRegion:    paramRegion,
		stateRegion:    stateRegion,
		workers:        cfg.Workers,
		initialMaxIter: maxIter,
		initialPalette: idx,
	}, nil
}

// Initial is the state the explorer starts in: the pixel of the state map
// entry's default parameter, or the centre of the parameter map.
func (x *Explorer) Initial() State {
	sel := x.paramRegion.Pixel(x.state.C)
	if !sel.In(x.Bounds()) {
		b := x.Bounds()
		sel = image.Pt(b.Dx()/2, b.Dy()/2)
	}
	return State{Selected: sel, MaxIter: x.initialMaxIter, Palette: x.initialPalette}
}

// Bounds are the pixel bounds of the parameter map.
func (x *Explorer) Bounds() image.Rectangle { return x.paramRegion.Bounds() }

// Names returns the registry names of the parameter and state maps.
func (x *Explorer) Names() (param, state string) { return x.param.Name, x.state.Name }

// Parameter translates a parameter-map pixel to plane coordinates. The
// pixel is clamped to the map first.
func (x *Explorer) Parameter(sel image.Point) complex128 {
	sel = clamp(sel, x.Bounds())
	return x.paramRegion.Point(sel.X, sel.Y)
}

// Request registers s as the newest wanted state and returns the version
// its frame must carry to be committed.
func (x *Explorer) Request(State) uint64 {
	return x.latest.Add(1)
}

// Phase reports whether a requested frame is still outstanding.
func (x *Explorer) Phase() Phase {
	if x.committed.Load() == x.latest.Load() {
		return Idle
	}
	return Recomputing
}

// Frame returns the last committed frame, or nil.
func (x *Explorer) Frame() *Frame {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.frame
}

// Render evaluates what s needs and composites both maps. Rasters that s
// does not invalidate are reused from earlier renders.
func (x *Explorer) Render(ctx context.Context, s State, version uint64) (*Frame, error) {
	if version < x.latest.Load() {
		return nil, ErrStale
	}
	s.Selected = clamp(s.Selected, x.Bounds())
	c := x.Parameter(s.Selected)

	pi, err := x.paramMap(ctx, s.MaxIter)
	if err != nil {
		return nil, err
	}
	si, err := x.stateMap(ctx, s, c)
	if err != nil {
		return nil, err
	}

	p := palette.ByIndex(s.Palette)
	paramImg, err := raster.CompositeIter(pi, p, raster.IterOptions{Multiplier: x.param.Multiplier})
	if err != nil {
		return nil, err
	}
	crosshair(paramImg, s.Selected)
	stateImg, err := raster.CompositeIter(si, p, raster.IterOptions{Multiplier: x.state.Multiplier})
	if err != nil {
		return nil, err
	}
	return &Frame{
		Version:    version,
		State:      s,
		C:          c,
		ParamIter:  pi,
		StateIter:  si,
		ParamImage: paramImg,
		StateImage: stateImg,
	}, nil
}

func (x *Explorer) paramMap(ctx context.Context, maxIter int) (*raster.Iter, error) {
	x.mu.Lock()
	if x.paramIter != nil && x.paramMaxIter == maxIter {
		it := x.paramIter
		x.mu.Unlock()
		return it, nil
	}
	x.mu.Unlock()

	params := fractal.IterationParams{MaxIter: maxIter, Bailout: x.param.Bailout}
	it, err := escape.Evaluate(ctx, x.paramRegion, params, x.param.Escape, 0, escape.WithWorkers(x.workers))
	if err != nil {
		return nil, fmt.Errorf("parameter map: %w", err)
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	// a concurrent render may have published the same map meanwhile
	if x.paramIter != nil && x.paramMaxIter == maxIter {
		return x.paramIter, nil
	}
	x.paramIter, x.paramMaxIter = it, maxIter
	return it, nil
}

func (x *Explorer) stateMap(ctx context.Context, s State, c complex128) (*raster.Iter, error) {
	key := stateKey{sel: s.Selected, maxIter: s.MaxIter}
	x.mu.Lock()
	if x.stateIter != nil && x.stateKey == key {
		it := x.stateIter
		x.mu.Unlock()
		return it, nil
	}
	x.mu.Unlock()

	params := fractal.IterationParams{MaxIter: s.MaxIter, Bailout: x.state.Bailout}
	it, err := escape.Evaluate(ctx, x.stateRegion, params, x.state.Escape, c, escape.WithWorkers(x.workers))
	if err != nil {
		return nil, fmt.Errorf("state map: %w", err)
	}
	x.mu.Lock()
	x.stateIter, x.stateKey = it, key
	x.mu.Unlock()
	return it, nil
}

// Commit publishes f if it belongs to the newest request. Frames of older
// requests are dropped and reported as false.
func (x *Explorer) Commit(f *Frame) bool {
	if f == nil {
		return false
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	if f.Version != x.latest.Load() || f.Version <= x.committed.Load() {
		return false
	}
	x.frame = f
	x.committed.Store(f.Version)
	return true
}

// crosshair inverts the row and column through p.
func crosshair(img *image.RGBA, p image.Point) {
	b := img.Bounds()
	invert := func(x, y int) {
		c := img.RGBAAt(x, y)
		img.SetRGBA(x, y, color.RGBA{255 - c.R, 255 - c.G, 255 - c.B, 255})
	}
	for x := b.Min.X; x < b.Max.X; x++ {
		invert(x, p.Y)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if y != p.Y {
			invert(p.X, y)
		}
	}
}
