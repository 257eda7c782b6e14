package pixel

import (
	"fmt"
	"sync"
	"time"

	"github.com/anthonynsimon/bild/parallel"
)

// MaterializeOption configures Materialize.
type MaterializeOption func(*materializeConfig)

type materializeConfig struct {
	sequential bool
}

// Sequential makes Materialize walk the source on the calling goroutine.
func Sequential() MaterializeOption {
	return func(c *materializeConfig) { c.sequential = true }
}

// Parallel selects row-partitioned evaluation across GOMAXPROCS goroutines
// when on is true. It is the default.
func Parallel(on bool) MaterializeOption {
	return func(c *materializeConfig) { c.sequential = !on }
}

// Materialize visits every coordinate of src exactly once and records the
// colors in a new Raster.
//
// No ordering between pixels is assumed, so rows are evaluated concurrently
// unless Sequential is given. Each worker writes a disjoint set of rows of
// the result and only reads src. The first pixel error stops further work
// and is returned; the partially filled raster is discarded.
func Materialize(src Source, opts ...MaterializeOption) (*Raster, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrIncompatibleSources)
	}
	var cfg materializeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	dst, err := NewRaster(src.Width(), src.Height())
	if err != nil {
		return nil, fmt.Errorf("failed to materialize: %w", err)
	}

	start := time.Now()
	if cfg.sequential {
		err = fillRows(src, dst, 0, dst.height, nil)
	} else {
		var (
			once     sync.Once
			firstErr error
			failed   = make(chan struct{})
		)
		parallel.Line(dst.height, func(start, end int) {
			if rowErr := fillRows(src, dst, start, end, failed); rowErr != nil {
				once.Do(func() {
					firstErr = rowErr
					close(failed)
				})
			}
		})
		err = firstErr
	}
	if err != nil {
		Logger().Warn("pixel: materialize failed", "width", dst.width, "height", dst.height, "err", err)
		return nil, err
	}

	Logger().Debug("pixel: materialized",
		"width", dst.width, "height", dst.height,
		"sequential", cfg.sequential, "elapsed", time.Since(start))
	return dst, nil
}

// fillRows evaluates rows [start,end) of src into dst. It returns early
// once failed is closed by another worker.
func fillRows(src Source, dst *Raster, start, end int, failed <-chan struct{}) error {
	for y := start; y < end; y++ {
		if failed != nil {
			select {
			case <-failed:
				return nil
			default:
			}
		}
		row := dst.pix[y*dst.width : (y+1)*dst.width]
		for x := range row {
			c, err := src.Pixel(x, y)
			if err != nil {
				return fmt.Errorf("failed to evaluate pixel (%d,%d): %w", x, y, err)
			}
			row[x] = c
		}
	}
	return nil
}
