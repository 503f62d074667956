// Package farm splits escape-time jobs into tiles and hands them to any
// number of local or remote tile renderers.
package farm

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/raster"
)

// TileSize is the edge of the square tiles a job is split into.
const TileSize = 64

// Scheduler owns one job. Renderers pull tiles from it until every tile is
// finished. When no unstarted tile is left, tiles still in process are
// handed out again, so a slow or lost worker cannot stall the job.
type Scheduler struct {
	job fractal.Job
	out *raster.Iter

	done   chan struct{}
	closed bool

	workers        int
	totalPixels    int
	finishedPixels int

	unstarted map[image.Rectangle]struct{}
	inProcess map[image.Rectangle]struct{}
	m         sync.Mutex
}

// NewScheduler prepares job for rendering.
func NewScheduler(job fractal.Job) (*Scheduler, error) {
	if err := job.Region.Validate(); err != nil {
		return nil, err
	}
	if err := job.Params.Validate(); err != nil {
		return nil, err
	}
	out, err := raster.NewIter(job.Region.Bounds())
	if err != nil {
		return nil, err
	}
	tiles := SplitRect(out.Rect, TileSize, TileSize)
	unstarted := make(map[image.Rectangle]struct{}, len(tiles))
	for _, t := range tiles {
		unstarted[t] = struct{}{}
	}
	return &Scheduler{
		job:         job,
		out:         out,
		done:        make(chan struct{}),
		unstarted:   unstarted,
		inProcess:   make(map[image.Rectangle]struct{}),
		totalPixels: out.Rect.Dx() * out.Rect.Dy(),
	}, nil
}

// Job returns the job being rendered.
func (s *Scheduler) Job() fractal.Job { return s.job }

func (s *Scheduler) popTile() (tile image.Rectangle, found bool) {
	s.m.Lock()
	defer s.m.Unlock()

	if len(s.unstarted) > 0 {
		for tile = range s.unstarted {
			break
		}
		delete(s.unstarted, tile)
		s.inProcess[tile] = struct{}{}
		return tile, true
	}

	// work again on a started one
	if len(s.inProcess) > 0 {
		for tile = range s.inProcess {
			break
		}
		return tile, true
	}

	return image.Rectangle{}, false
}

// Progress is the finished fraction of the job.
func (s *Scheduler) Progress() float32 {
	s.m.Lock()
	defer s.m.Unlock()
	return float32(s.finishedPixels) / float32(s.totalPixels)
}

func (s *Scheduler) tileFinished(t fractal.TileCounts) error {
	s.m.Lock()
	defer s.m.Unlock()

	if _, found := s.inProcess[t.Rect]; !found {
		// a duplicate of a tile someone else already delivered
		return nil
	}
	if err := s.out.Paste(t); err != nil {
		return err
	}
	s.finishedPixels += t.Rect.Dx() * t.Rect.Dy()
	delete(s.inProcess, t.Rect)
	log.Printf("finished: %.3f", float32(s.finishedPixels)/float32(s.totalPixels))

	if len(s.unstarted) == 0 && len(s.inProcess) == 0 && !s.closed {
		s.closed = true
		close(s.done)
	}
	return nil
}

func (s *Scheduler) addWorker(delta int) {
	s.m.Lock()
	s.workers += delta
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}

// Workers is the number of renderers currently attached.
func (s *Scheduler) Workers() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.workers
}

// Render pulls tiles and renders them on r until the job is complete or ctx
// is done. It may be called from many goroutines, one per renderer. A
// renderer that fails is detached and its tile left for the others.
func (s *Scheduler) Render(ctx context.Context, r fractal.TileRenderer) error {
	s.addWorker(1)
	defer s.addWorker(-1)

	for ctx.Err() == nil {
		tile, found := s.popTile()
		if !found {
			return nil
		}
		t, err := r.RenderTile(ctx, s.job, tile)
		if err != nil {
			return fmt.Errorf("render of tile %s: %w", tile, err)
		}
		if t.Rect != tile {
			return fmt.Errorf("asked for tile %s, got %s", tile, t.Rect)
		}
		if err := s.tileFinished(t); err != nil {
			return err
		}
	}
	return ctx.Err()
}

// Wait blocks until every tile is finished and returns the assembled
// raster.
func (s *Scheduler) Wait(ctx context.Context) (*raster.Iter, error) {
	select {
	case <-s.done:
		return s.out, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// SplitRect splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func SplitRect(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	var tiles []image.Rectangle
	for y := r.Min.Y; y < r.Max.Y; y += tileH {
		for x := r.Min.X; x < r.Max.X; x += tileW {
			tiles = append(tiles, image.Rect(x, y, min(x+tileW, r.Max.X), min(y+tileH, r.Max.Y)))
		}
	}
	return tiles
}
