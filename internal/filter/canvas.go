package filter

import (
	"errors"
	"fmt"

	"github.com/ironsheep/pixel-pipeline-mcp/internal/pixel"
)

// CanvasPad grows its primary source to the larger of two sizes.
//
// Its width and height are the componentwise maximum of the primary and
// reference geometries. Coordinates inside the primary return the primary's
// pixel; the rest of the combined area is fully transparent. The reference
// contributes only its size.
type CanvasPad struct {
	stage
	ref pixel.Source
}

// NewCanvasPad returns a CanvasPad over primary, sized against reference.
func NewCanvasPad(primary, reference pixel.Source) (*CanvasPad, error) {
	s, err := newStage(KindCanvasPad, primary)
	if err != nil {
		return nil, err
	}
	if reference == nil {
		return nil, fmt.Errorf("%w: %s needs a reference source", pixel.ErrIncompatibleSources, KindCanvasPad)
	}
	return &CanvasPad{stage: s, ref: reference}, nil
}

// Reference returns the source whose size the canvas is compared against.
func (f *CanvasPad) Reference() pixel.Source { return f.ref }

// Width implements pixel.Source.
func (f *CanvasPad) Width() int { return max(f.src.Width(), f.ref.Width()) }

// Height implements pixel.Source.
func (f *CanvasPad) Height() int { return max(f.src.Height(), f.ref.Height()) }

// Bind implements pixel.Source. Both inputs are bound and their errors
// joined.
func (f *CanvasPad) Bind(env pixel.Environment) error {
	return errors.Join(f.src.Bind(env), f.ref.Bind(env))
}

// Pixel implements pixel.Source.
func (f *CanvasPad) Pixel(x, y int) (pixel.Color, error) {
	if err := pixel.CheckBounds(f, x, y); err != nil {
		return pixel.Color{}, err
	}
	if x < f.src.Width() && y < f.src.Height() {
		return f.src.Pixel(x, y)
	}
	return pixel.Transparent, nil
}
