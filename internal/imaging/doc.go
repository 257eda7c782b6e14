// Package imaging connects the pixel pipeline to image files.
//
// It sits at the pipeline's I/O boundary: ImageCache decodes files and acts
// as the pixel.Environment that Named sources resolve against, Render turns
// a chain into a PNG, and SampleColor queries a single pixel lazily.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Rendering and sampling are
// stateless and may run concurrently as long as no raster in the chain is
// mutated at the same time.
//
// # Color Representation
//
// Sampled colors are returned in several formats:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - RGBA: 8-bit components with alpha (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Error Handling
//
// Functions return errors for coordinates outside a source, invalid scale
// factors, unreadable files and encoding failures. Pipeline errors keep
// their pixel sentinels, so errors.Is(err, pixel.ErrOutOfRange) works on
// results from this package.
package imaging
