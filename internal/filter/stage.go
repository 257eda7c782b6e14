package filter

import (
	"fmt"

	"github.com/ironsheep/pixel-pipeline-mcp/internal/pixel"
)

// stage carries the primary upstream of a filter and provides the default
// geometry and binding behavior: both are delegated to the upstream.
type stage struct {
	src pixel.Source
}

func newStage(kind Kind, src pixel.Source) (stage, error) {
	if src == nil {
		return stage{}, fmt.Errorf("%w: %s needs a source", pixel.ErrIncompatibleSources, kind)
	}
	return stage{src: src}, nil
}

// Upstream returns the source this stage reads from.
func (s stage) Upstream() pixel.Source { return s.src }

// Width implements pixel.Source.
func (s stage) Width() int { return s.src.Width() }

// Height implements pixel.Source.
func (s stage) Height() int { return s.src.Height() }

// Bind implements pixel.Source by passing env upstream.
func (s stage) Bind(env pixel.Environment) error { return s.src.Bind(env) }
