package filter

import (
	"math"

	"github.com/ironsheep/pixel-pipeline-mcp/internal/pixel"
)

// neighborOffsets lists the 8 neighbors of a pixel, row by row.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// onBorder reports whether (x, y) is in the first or last row or column of
// src. Border pixels are passed through by the 3x3 filters, which therefore
// never read past the edge.
func onBorder(src pixel.Source, x, y int) bool {
	return x == 0 || y == 0 || x == src.Width()-1 || y == src.Height()-1
}

// neighborSums returns the per-channel sums of the 8 neighbors of (x, y).
// The caller guarantees (x, y) is an interior pixel.
func neighborSums(src pixel.Source, x, y int) (r, g, b int, err error) {
	for _, off := range neighborOffsets {
		c, err := src.Pixel(x+off[0], y+off[1])
		if err != nil {
			return 0, 0, 0, err
		}
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
	}
	return r, g, b, nil
}

// BoxBlur replaces every interior pixel with the truncating average of its
// 8 neighbors; the center pixel is not part of the average. Alpha is taken
// from the center pixel. Border pixels are returned unchanged.
type BoxBlur struct {
	stage
}

// NewBoxBlur returns a 3x3 box blur over src.
func NewBoxBlur(src pixel.Source) (*BoxBlur, error) {
	s, err := newStage(KindBoxBlur, src)
	if err != nil {
		return nil, err
	}
	return &BoxBlur{stage: s}, nil
}

// Pixel implements pixel.Source.
func (f *BoxBlur) Pixel(x, y int) (pixel.Color, error) {
	if err := pixel.CheckBounds(f, x, y); err != nil {
		return pixel.Color{}, err
	}
	center, err := f.src.Pixel(x, y)
	if err != nil || onBorder(f.src, x, y) {
		return center, err
	}

	r, g, b, err := neighborSums(f.src, x, y)
	if err != nil {
		return pixel.Color{}, err
	}
	return pixel.Color{R: uint8(r / 8), G: uint8(g / 8), B: uint8(b / 8), A: center.A}, nil
}

// UnsharpMask sharpens interior pixels with a 3x3 Laplacian mask:
//
//	mask = 8*center - sum(neighbors)
//	out  = clamp(center + scale*mask)
//
// per color channel. Alpha is taken from the center pixel and border pixels
// are returned unchanged. Scale is not validated; large values saturate.
type UnsharpMask struct {
	stage
	scale float64
}

// NewUnsharpMask returns an unsharp mask over src. Typical scale factors are
// between 0.1 and 1; a scale of 0 leaves the image unchanged.
func NewUnsharpMask(src pixel.Source, scale float64) (*UnsharpMask, error) {
	s, err := newStage(KindUnsharpMask, src)
	if err != nil {
		return nil, err
	}
	return &UnsharpMask{stage: s, scale: scale}, nil
}

// Scale returns the scale factor applied to the mask.
func (f *UnsharpMask) Scale() float64 { return f.scale }

// Pixel implements pixel.Source.
func (f *UnsharpMask) Pixel(x, y int) (pixel.Color, error) {
	if err := pixel.CheckBounds(f, x, y); err != nil {
		return pixel.Color{}, err
	}
	center, err := f.src.Pixel(x, y)
	if err != nil || onBorder(f.src, x, y) {
		return center, err
	}

	r, g, b, err := neighborSums(f.src, x, y)
	if err != nil {
		return pixel.Color{}, err
	}
	return pixel.Color{
		R: f.sharpen(center.R, r),
		G: f.sharpen(center.G, g),
		B: f.sharpen(center.B, b),
		A: center.A,
	}, nil
}

func (f *UnsharpMask) sharpen(center uint8, neighbors int) uint8 {
	mask := 8*int(center) - neighbors
	return clampChannel(float64(center) + f.scale*float64(mask))
}

// clampChannel truncates v toward zero and limits it to [0,255].
// NaN maps to 0.
func clampChannel(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
