package pixel

import (
	"fmt"
	"image"
	"sync"
)

// ImageSource presents an image.Image as a Source without copying it.
//
// Coordinates are relative to the image's bounds, so (0,0) is always the
// top-left pixel even for sub-images.
type ImageSource struct {
	img    image.Image
	bounds image.Rectangle
}

// NewImageSource wraps img. A nil image is rejected with
// ErrIncompatibleSources.
func NewImageSource(img image.Image) (*ImageSource, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrIncompatibleSources)
	}
	return &ImageSource{img: img, bounds: img.Bounds()}, nil
}

// Width implements Source.
func (s *ImageSource) Width() int { return s.bounds.Dx() }

// Height implements Source.
func (s *ImageSource) Height() int { return s.bounds.Dy() }

// Pixel implements Source.
func (s *ImageSource) Pixel(x, y int) (Color, error) {
	if err := CheckBounds(s, x, y); err != nil {
		return Color{}, err
	}
	return fromStdColor(s.img.At(s.bounds.Min.X+x, s.bounds.Min.Y+y)), nil
}

// Bind implements Source.
func (s *ImageSource) Bind(Environment) error { return nil }

// Named is a Source whose image is looked up by name in the Environment
// when the chain is bound.
//
// Until Bind succeeds a Named source is 0x0 and every pixel query fails with
// ErrIncompatibleSources.
type Named struct {
	name string

	mu  sync.RWMutex
	src *ImageSource
}

// NewNamed returns an unresolved source for name.
func NewNamed(name string) *Named {
	return &Named{name: name}
}

// Name returns the name the source resolves.
func (n *Named) Name() string { return n.name }

func (n *Named) resolved() *ImageSource {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.src
}

// Width implements Source.
func (n *Named) Width() int {
	if s := n.resolved(); s != nil {
		return s.Width()
	}
	return 0
}

// Height implements Source.
func (n *Named) Height() int {
	if s := n.resolved(); s != nil {
		return s.Height()
	}
	return 0
}

// Pixel implements Source.
func (n *Named) Pixel(x, y int) (Color, error) {
	s := n.resolved()
	if s == nil {
		return Color{}, fmt.Errorf("%w: %q is not bound", ErrIncompatibleSources, n.name)
	}
	return s.Pixel(x, y)
}

// Bind implements Source by opening the named image in env.
func (n *Named) Bind(env Environment) error {
	if env == nil {
		return fmt.Errorf("%w: no environment to resolve %q", ErrIncompatibleSources, n.name)
	}
	img, err := env.Open(n.name)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", n.name, err)
	}
	src, err := NewImageSource(img)
	if err != nil {
		return err
	}

	n.mu.Lock()
	n.src = src
	n.mu.Unlock()

	Logger().Debug("pixel: bound named source", "name", n.name, "width", src.Width(), "height", src.Height())
	return nil
}
