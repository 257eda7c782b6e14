package pixel

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a coordinate lies outside a source.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrInvalidGeometry is returned when a zero or negative width or height
	// is supplied to a constructor.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrIncompatibleSources is returned when a stage is given a missing or
	// unusable input, such as a nil source.
	ErrIncompatibleSources = errors.New("incompatible sources")
)

// CheckBounds reports whether (x, y) lies inside src, returning a wrapped
// ErrOutOfRange if it does not.
func CheckBounds(src Source, x, y int) error {
	w, h := src.Width(), src.Height()
	if x < 0 || y < 0 || x >= w || y >= h {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, w, h)
	}
	return nil
}
