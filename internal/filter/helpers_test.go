package filter

import (
	"testing"

	"github.com/ironsheep/pixel-pipeline-mcp/internal/pixel"
)

// filledRaster returns a w x h raster of a single color.
func filledRaster(t *testing.T, w, h int, c pixel.Color) *pixel.Raster {
	t.Helper()
	r, err := pixel.NewFilledRaster(w, h, c)
	if err != nil {
		t.Fatalf("NewFilledRaster(%d,%d) failed: %v", w, h, err)
	}
	return r
}

// gradientRaster returns a raster whose channels vary with position so that
// neighbor-sampling filters see distinct values.
func gradientRaster(t *testing.T, w, h int) *pixel.Raster {
	t.Helper()
	r, err := pixel.NewRaster(w, h)
	if err != nil {
		t.Fatalf("NewRaster(%d,%d) failed: %v", w, h, err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := pixel.RGBA((x*37+y*11)%256, (x*5+y*53)%256, (x*y*7)%256, 200+(x+y)%56)
			if err := r.Set(x, y, c); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
		}
	}
	return r
}

// mustPixel queries src and fails the test on error.
func mustPixel(t *testing.T, src pixel.Source, x, y int) pixel.Color {
	t.Helper()
	c, err := src.Pixel(x, y)
	if err != nil {
		t.Fatalf("Pixel(%d,%d) failed: %v", x, y, err)
	}
	return c
}

// countingSource wraps a source and counts pixel queries.
type countingSource struct {
	pixel.Source
	calls int
}

func (c *countingSource) Pixel(x, y int) (pixel.Color, error) {
	c.calls++
	return c.Source.Pixel(x, y)
}
