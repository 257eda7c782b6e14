package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-pipeline-mcp/internal/pixel"
)

// MaxRenderPixels is the largest width*height Render will produce.
const MaxRenderPixels = 64 << 20

// ErrRenderTooLarge is returned when a scaled render would exceed
// MaxRenderPixels.
var ErrRenderTooLarge = errors.New("render too large")

// RenderResult contains a materialized source encoded as base64 PNG.
type RenderResult struct {
	// Width and Height are the size of the encoded image, after scaling.
	Width  int `json:"width"`
	Height int `json:"height"`

	// SourceWidth and SourceHeight are the size of the rendered chain.
	SourceWidth  int `json:"source_width"`
	SourceHeight int `json:"source_height"`

	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Render materializes src and encodes it as PNG.
//
// A scale other than 1 resizes the materialized raster with a Lanczos
// filter, which is useful for zooming into small outputs. Scale must be
// positive and finite, and the scaled size may not exceed MaxRenderPixels.
// opts are passed to pixel.Materialize.
func Render(src pixel.Source, scale float64, opts ...pixel.MaterializeOption) (*RenderResult, error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return nil, fmt.Errorf("invalid scale %v: must be positive", scale)
	}
	if src != nil {
		w := float64(src.Width()) * scale
		h := float64(src.Height()) * scale
		if w*h > MaxRenderPixels {
			return nil, fmt.Errorf("%w: %dx%d at scale %v exceeds %d pixels",
				ErrRenderTooLarge, src.Width(), src.Height(), scale, MaxRenderPixels)
		}
	}

	raster, err := pixel.Materialize(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to render: %w", err)
	}

	var img image.Image = raster.Image()
	if scale != 1.0 {
		w := max(1, int(float64(raster.Width())*scale))
		h := max(1, int(float64(raster.Height())*scale))
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	encoded, err := EncodePNG(img)
	if err != nil {
		return nil, err
	}

	return &RenderResult{
		Width:        img.Bounds().Dx(),
		Height:       img.Bounds().Dy(),
		SourceWidth:  raster.Width(),
		SourceHeight: raster.Height(),
		ImageBase64:  encoded,
		MimeType:     "image/png",
	}, nil
}

// EncodePNG encodes img as base64 PNG.
func EncodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
