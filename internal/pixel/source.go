package pixel

import "image"

// Source is anything that can report its dimensions and the color at an
// integer coordinate.
//
// Pixel must be a pure function of (x, y) and the current upstream state:
// repeated calls with the same arguments return equal colors as long as no
// upstream raster is mutated in between. Implementations hold no per-pixel
// cache unless they say so explicitly.
type Source interface {
	// Width returns the number of columns.
	Width() int

	// Height returns the number of rows.
	Height() int

	// Pixel returns the color at (x, y).
	Pixel(x, y int) (Color, error)

	// Bind propagates env to this source and everything it wraps. It is
	// called once, top-down, before the first pixel query.
	Bind(env Environment) error
}

// Environment is the external resolution context handed down a chain by
// Bind. The presentation layer owns it; the pipeline only consults it to
// resolve named images.
type Environment interface {
	// Open returns the decoded image registered under name.
	Open(name string) (image.Image, error)
}
