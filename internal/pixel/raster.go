package pixel

import (
	"fmt"
	"image"
	"image/color"
)

// Raster is a Source backed by a fixed grid of colors.
//
// It is the eager, terminal form of a chain and the write target of
// Materialize. A Raster is not safe for concurrent Set calls on the same
// coordinate; distinct coordinates may be written from different goroutines.
type Raster struct {
	width  int
	height int
	pix    []Color // row-major, len = width*height
}

// NewRaster returns a fully transparent raster of the given size.
// Both dimensions must be positive.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: raster size %dx%d", ErrInvalidGeometry, width, height)
	}
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}, nil
}

// NewFilledRaster returns a raster with every pixel set to c.
func NewFilledRaster(width, height int, c Color) (*Raster, error) {
	r, err := NewRaster(width, height)
	if err != nil {
		return nil, err
	}
	for i := range r.pix {
		r.pix[i] = c
	}
	return r, nil
}

// FromImage copies img into a new raster. Coordinates are rebased so that
// img.Bounds().Min maps to (0,0).
func FromImage(img image.Image) (*Raster, error) {
	b := img.Bounds()
	r, err := NewRaster(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.pix[y*r.width+x] = fromStdColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return r, nil
}

// Width implements Source.
func (r *Raster) Width() int { return r.width }

// Height implements Source.
func (r *Raster) Height() int { return r.height }

// Pixel implements Source.
func (r *Raster) Pixel(x, y int) (Color, error) {
	if err := CheckBounds(r, x, y); err != nil {
		return Color{}, err
	}
	return r.pix[y*r.width+x], nil
}

// Bind implements Source. A raster has nothing to resolve.
func (r *Raster) Bind(Environment) error { return nil }

// Set stores c at (x, y).
func (r *Raster) Set(x, y int, c Color) error {
	if err := CheckBounds(r, x, y); err != nil {
		return err
	}
	r.pix[y*r.width+x] = c
	return nil
}

// Image returns the raster as an *image.NRGBA with bounds (0,0)-(w,h).
// The result shares no memory with r.
func (r *Raster) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	for i, c := range r.pix {
		o := i * 4
		img.Pix[o+0] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = c.A
	}
	return img
}

// fromStdColor converts any color.Color to a straight-alpha Color.
func fromStdColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
