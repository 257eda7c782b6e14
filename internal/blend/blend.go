package blend

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/pixel-pipeline-mcp/internal/pixel"
)

// channelFunc blends one normalized source channel s with one normalized
// destination channel d.
type channelFunc func(s, d float64) float64

var channelFuncs = [...]channelFunc{
	Normal:     normal,
	Multiply:   multiply,
	Screen:     screen,
	Darken:     math.Min,
	Lighten:    math.Max,
	Difference: difference,
	Exclusion:  exclusion,
	Overlay:    overlay,
	HardLight:  hardLight,
	ColorBurn:  colorBurn,
	SoftLight:  softLight,
}

// Blend composites src over dst with mode m. The result's alpha is src.A.
func Blend(m Mode, src, dst pixel.Color) (pixel.Color, error) {
	if !m.Valid() {
		return pixel.Color{}, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return apply(channelFuncs[m], src, dst), nil
}

// Func returns the blend of mode m as a plain function, for callers that
// apply one mode to many pixels.
func Func(m Mode) (func(src, dst pixel.Color) pixel.Color, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	fn := channelFuncs[m]
	return func(src, dst pixel.Color) pixel.Color {
		return apply(fn, src, dst)
	}, nil
}

func apply(fn channelFunc, src, dst pixel.Color) pixel.Color {
	s, d := normalize(src), normalize(dst)
	out := colorful.Color{
		R: fn(s.R, d.R),
		G: fn(s.G, d.G),
		B: fn(s.B, d.B),
	}
	return denormalize(out, src.A)
}

// normalize maps 8-bit channels onto [0,1].
func normalize(c pixel.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// denormalize clamps c to [0,1] and rounds each channel to 8 bits.
func denormalize(c colorful.Color, alpha uint8) pixel.Color {
	r, g, b := c.Clamped().RGB255()
	return pixel.Color{R: r, G: g, B: b, A: alpha}
}

func normal(s, _ float64) float64 { return s }

func multiply(s, d float64) float64 { return s * d }

func screen(s, d float64) float64 { return s + d - s*d }

func difference(s, d float64) float64 { return math.Abs(d - s) }

func exclusion(s, d float64) float64 { return s + d - 2*s*d }

func overlay(s, d float64) float64 {
	if d <= 0.5 {
		return 2 * s * d
	}
	return 1 - 2*(1-s)*(1-d)
}

func hardLight(s, d float64) float64 { return overlay(d, s) }

func colorBurn(s, d float64) float64 {
	switch {
	case d == 1:
		return 1
	case s == 0:
		return 0
	default:
		return 1 - math.Min(1, (1-d)/s)
	}
}

func softLight(s, d float64) float64 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	return d + (2*s-1)*(softLightD(d)-d)
}

func softLightD(x float64) float64 {
	if x <= 0.25 {
		return ((16*x-12)*x + 4) * x
	}
	return math.Sqrt(x)
}
