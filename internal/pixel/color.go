package pixel

import "fmt"

// Color is an immutable 8-bit RGBA color with straight (non-premultiplied)
// alpha.
//
// The uint8 channels make an out-of-range Color unrepresentable; the RGBA and
// RGB constructors clamp wider integer inputs on the way in.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha component (0 = transparent, 255 = opaque)
}

// Commonly used colors.
var (
	Black       = Color{R: 0, G: 0, B: 0, A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Transparent = Color{}
)

// RGBA returns a color with every channel clamped to [0,255].
func RGBA(r, g, b, a int) Color {
	return Color{R: Clamp(r), G: Clamp(g), B: Clamp(b), A: Clamp(a)}
}

// RGB returns an opaque color with every channel clamped to [0,255].
func RGB(r, g, b int) Color {
	return RGBA(r, g, b, 255)
}

// Clamp limits v to the channel range [0,255].
func Clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// WithAlpha returns a copy of c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Intensity is the truncating average of the red, green and blue channels.
func (c Color) Intensity() int {
	return (int(c.R) + int(c.G) + int(c.B)) / 3
}

// Hex formats the color as "#RRGGBB". Alpha is not included.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA implements color.Color. The returned values are alpha-premultiplied
// 16-bit channels, as the image/color package expects.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return r, g, b, a
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
}
