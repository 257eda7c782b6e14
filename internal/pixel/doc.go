// Package pixel defines the color value and the PixelSource capability shared
// by every stage of a filter pipeline.
//
// A Source reports its dimensions and the color at an integer coordinate.
// Raw rasters, decoded images and filter stages all implement it, so stages
// compose by reference into a chain that is evaluated lazily: nothing is
// computed until a pixel is asked for.
//
// # Coordinate System
//
// Coordinates are 0-based with (0,0) at the top-left corner. Valid queries
// satisfy 0 <= x < Width() and 0 <= y < Height().
//
// # Materialization
//
// Materialize is the single point where laziness ends: it visits every
// coordinate of a source exactly once and records the result in a new
// Raster. Rows are independent, so the work is split across goroutines.
//
// # Environment Binding
//
// Bind propagates an Environment down a chain before the first pixel query.
// Most sources ignore it; Named sources use it to resolve their image.
//
// # Error Handling
//
// Failures are reported with the sentinel errors ErrOutOfRange,
// ErrInvalidGeometry and ErrIncompatibleSources, wrapped with context.
// Use errors.Is to test for them.
package pixel
