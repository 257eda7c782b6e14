package filter

import (
	"sync"

	"github.com/ironsheep/pixel-pipeline-mcp/internal/pixel"
)

// Memo caches its upstream as a full raster the first time any pixel is
// requested, and serves every later query from that raster.
//
// Memo is the explicit escape from the exponential cost of stacking
// neighbor-sampling stages: place one between two BoxBlur or UnsharpMask
// stages and the inner stage is evaluated once per pixel per pass. The cache
// is dropped by Reset and by Bind. Memo is safe for concurrent use.
type Memo struct {
	stage
	opts []pixel.MaterializeOption

	mu     sync.Mutex
	cached *pixel.Raster
}

// NewMemo returns a caching stage over src. opts are passed to
// pixel.Materialize when the cache is filled.
func NewMemo(src pixel.Source, opts ...pixel.MaterializeOption) (*Memo, error) {
	s, err := newStage(KindMemo, src)
	if err != nil {
		return nil, err
	}
	return &Memo{stage: s, opts: opts}, nil
}

// Pixel implements pixel.Source.
func (f *Memo) Pixel(x, y int) (pixel.Color, error) {
	r, err := f.raster()
	if err != nil {
		return pixel.Color{}, err
	}
	return r.Pixel(x, y)
}

// Bind implements pixel.Source. Binding may change the upstream, so the
// cache is dropped.
func (f *Memo) Bind(env pixel.Environment) error {
	f.Reset()
	return f.src.Bind(env)
}

// Reset drops the cached raster. The next query re-evaluates the upstream.
func (f *Memo) Reset() {
	f.mu.Lock()
	f.cached = nil
	f.mu.Unlock()
}

// Cached reports whether the upstream has been materialized.
func (f *Memo) Cached() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cached != nil
}

func (f *Memo) raster() (*pixel.Raster, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cached != nil {
		return f.cached, nil
	}
	r, err := pixel.Materialize(f.src, f.opts...)
	if err != nil {
		return nil, err
	}
	pixel.Logger().Debug("filter: memo filled", "width", r.Width(), "height", r.Height())
	f.cached = r
	return r, nil
}
