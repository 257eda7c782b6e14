// Package blend implements separable blend modes: pure functions that
// combine a source and a destination color into a composited color.
//
// Each mode works per RGB channel on values normalized to [0,1] by true
// fractional division, then converts the result back to 8 bits with
// rounding and clamping. Alpha is taken from the source; none of the modes
// combine alpha.
//
// Formulas (s = source channel, d = destination channel):
//
//	Normal      s
//	Multiply    s*d
//	Screen      s + d - s*d
//	Darken      min(s, d)
//	Lighten     max(s, d)
//	Difference  |d - s|
//	Exclusion   s + d - 2*s*d
//	Overlay     d <= 0.5 ? 2*s*d : 1 - 2*(1-s)*(1-d)
//	HardLight   Overlay with s and d swapped
//	ColorBurn   d == 1 ? 1 : s == 0 ? 0 : 1 - min(1, (1-d)/s)
//	SoftLight   s <= 0.5 ? d - (1-2s)*d*(1-d) : d + (2s-1)*(D(d)-d)
//	            D(x) = x <= 0.25 ? ((16x-12)x+4)x : sqrt(x)
//
// The blend functions know nothing about position or geometry. Composite
// applies a mode pixel by pixel to two sources of equal size.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend
