package blend

import (
	"errors"
	"fmt"

	"github.com/ironsheep/pixel-pipeline-mcp/internal/pixel"
)

// Composite is a pixel.Source that blends two equally sized sources pixel
// by pixel. Like the filter stages it is lazy and holds no cache.
//
// Sources of different size can be brought to a common geometry first
// with filter.CanvasPad.
type Composite struct {
	src  pixel.Source
	dst  pixel.Source
	mode Mode
	fn   func(src, dst pixel.Color) pixel.Color
}

// NewComposite returns a stage computing Blend(mode, src(x,y), dst(x,y)).
// Both sources must be non-nil. Their geometry is compared on every
// query, since bound sources may change size.
func NewComposite(src, dst pixel.Source, mode Mode) (*Composite, error) {
	if src == nil || dst == nil {
		return nil, fmt.Errorf("%w: composite needs a source and a destination", pixel.ErrIncompatibleSources)
	}
	fn, err := Func(mode)
	if err != nil {
		return nil, err
	}
	return &Composite{src: src, dst: dst, mode: mode, fn: fn}, nil
}

// Mode returns the blend mode.
func (c *Composite) Mode() Mode { return c.mode }

// Width implements pixel.Source.
func (c *Composite) Width() int { return c.src.Width() }

// Height implements pixel.Source.
func (c *Composite) Height() int { return c.src.Height() }

// Bind implements pixel.Source. Both inputs are bound and their errors
// joined.
func (c *Composite) Bind(env pixel.Environment) error {
	return errors.Join(c.src.Bind(env), c.dst.Bind(env))
}

// Pixel implements pixel.Source.
func (c *Composite) Pixel(x, y int) (pixel.Color, error) {
	if c.src.Width() != c.dst.Width() || c.src.Height() != c.dst.Height() {
		return pixel.Color{}, fmt.Errorf("%w: source %dx%d, destination %dx%d",
			pixel.ErrIncompatibleSources, c.src.Width(), c.src.Height(), c.dst.Width(), c.dst.Height())
	}
	s, err := c.src.Pixel(x, y)
	if err != nil {
		return pixel.Color{}, err
	}
	d, err := c.dst.Pixel(x, y)
	if err != nil {
		return pixel.Color{}, err
	}
	return c.fn(s, d), nil
}
