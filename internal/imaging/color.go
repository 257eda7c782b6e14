package imaging

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/pixel-pipeline-mcp/internal/pixel"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB  RGBColor  `json:"rgb"`  // RGB components
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// NewColorResult describes c in every supported representation.
func NewColorResult(c pixel.Color) ColorResult {
	return ColorResult{
		Hex:  c.Hex(),
		RGB:  RGBColor{R: c.R, G: c.G, B: c.B},
		RGBA: RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A},
		HSL:  toHSL(c),
	}
}

// SampleColor evaluates a single pixel of src.
//
// For a filter chain this computes only what the pixel depends on; nothing
// is materialized. Coordinates outside src fail with pixel.ErrOutOfRange.
func SampleColor(src pixel.Source, x, y int) (*ColorResult, error) {
	c, err := src.Pixel(x, y)
	if err != nil {
		return nil, err
	}
	result := NewColorResult(c)
	return &result, nil
}

// LabeledPoint represents a pixel coordinate with an optional label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains color samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti evaluates several pixels of src. Any failing point
// fails the whole call; no partial results are returned.
func SampleColorsMulti(src pixel.Source, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		color, err := SampleColor(src, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *color,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// ParseHexColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA". The leading '#'
// is optional. Colors without an alpha component are opaque.
func ParseHexColor(s string) (pixel.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	alpha := uint8(255)

	switch len(hex) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return pixel.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	default:
		return pixel.Color{}, fmt.Errorf("invalid hex color %q: want #RGB, #RRGGBB or #RRGGBBAA", s)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return pixel.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return pixel.Color{R: r, G: g, B: b, A: alpha}, nil
}

// toHSL converts the RGB channels of c to HSL. Alpha is ignored.
func toHSL(c pixel.Color) HSLColor {
	cc := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	h, s, l := cc.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}
