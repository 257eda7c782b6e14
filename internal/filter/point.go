package filter

import (
	"github.com/ironsheep/pixel-pipeline-mcp/internal/pixel"
)

// ThresholdLevel is the average intensity at which Threshold switches from
// its low color to its high color.
const ThresholdLevel = 127

// Invert replaces each color channel c with 255-c. Alpha is kept, so
// inverting twice restores the original color.
type Invert struct {
	stage
}

// NewInvert returns an Invert stage over src.
func NewInvert(src pixel.Source) (*Invert, error) {
	s, err := newStage(KindInvert, src)
	if err != nil {
		return nil, err
	}
	return &Invert{stage: s}, nil
}

// Pixel implements pixel.Source.
func (f *Invert) Pixel(x, y int) (pixel.Color, error) {
	c, err := f.src.Pixel(x, y)
	if err != nil {
		return pixel.Color{}, err
	}
	return pixel.Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}, nil
}

// Grayscale sets R, G and B to the truncating average of the three. Alpha
// is kept.
type Grayscale struct {
	stage
}

// NewGrayscale returns a Grayscale stage over src.
func NewGrayscale(src pixel.Source) (*Grayscale, error) {
	s, err := newStage(KindGrayscale, src)
	if err != nil {
		return nil, err
	}
	return &Grayscale{stage: s}, nil
}

// Pixel implements pixel.Source.
func (f *Grayscale) Pixel(x, y int) (pixel.Color, error) {
	c, err := f.src.Pixel(x, y)
	if err != nil {
		return pixel.Color{}, err
	}
	i := uint8(c.Intensity())
	return pixel.Color{R: i, G: i, B: i, A: c.A}, nil
}

// Threshold maps every pixel to one of two fixed colors: Low when the
// average of R, G and B is below ThresholdLevel, High otherwise.
type Threshold struct {
	stage
	low  pixel.Color
	high pixel.Color
}

// NewThreshold returns a Threshold stage mapping dark pixels to black and
// the rest to white.
func NewThreshold(src pixel.Source) (*Threshold, error) {
	return NewThresholdColors(src, pixel.Black, pixel.White)
}

// NewThresholdColors returns a Threshold stage with caller-chosen colors.
func NewThresholdColors(src pixel.Source, low, high pixel.Color) (*Threshold, error) {
	s, err := newStage(KindThreshold, src)
	if err != nil {
		return nil, err
	}
	return &Threshold{stage: s, low: low, high: high}, nil
}

// Colors returns the low and high output colors.
func (f *Threshold) Colors() (low, high pixel.Color) { return f.low, f.high }

// Pixel implements pixel.Source.
func (f *Threshold) Pixel(x, y int) (pixel.Color, error) {
	c, err := f.src.Pixel(x, y)
	if err != nil {
		return pixel.Color{}, err
	}
	if c.Intensity() < ThresholdLevel {
		return f.low, nil
	}
	return f.high, nil
}
