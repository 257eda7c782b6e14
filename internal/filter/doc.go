// Package filter implements the lazily evaluated stages of a pixel pipeline.
//
// Every filter is a pixel.Source that wraps one or more upstream sources and
// computes each output pixel from upstream pixels on demand. Stages never
// store computed pixels and never mutate what they wrap, so a chain can be
// queried one pixel at a time (cheap, for inspection) or handed to
// pixel.Materialize to produce a Raster.
//
// # Filters
//
//   - Invert: 255 minus each color channel
//   - Grayscale: channel average in R, G and B
//   - Threshold: two-color split at average intensity 127
//   - BoxBlur: 3x3 neighbor average, border passed through
//   - UnsharpMask: 3x3 Laplacian sharpening, border passed through
//   - CanvasPad: pads a source with transparency to the larger of two sizes
//   - Memo: opt-in cache that materializes its upstream once
//
// # Evaluation Cost
//
// BoxBlur and UnsharpMask read 9 upstream pixels per output pixel. Stacking
// k of them costs O(9^k) upstream evaluations per pixel. Insert a Memo
// between neighbor-sampling stages when building deep chains.
//
// # Tagged Construction
//
// Kind and Spec describe a filter as data so chains can be assembled from
// configuration (see Chain).
package filter
