package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/shape-detect-mcp/internal/detection"
)

// OverlayResult contains the source image annotated with detected shapes,
// encoded as base64 PNG.
type OverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	ShapeCount  int    `json:"shape_count"`
}

// OverlayOptions controls how shapes are drawn.
type OverlayOptions struct {
	// LineWidth is the outline stroke width in pixels.
	LineWidth float64

	// ShowBoundingBox draws a dashed box around each shape.
	ShowBoundingBox bool

	// ShowCenter draws a dot at each shape's centroid.
	ShowCenter bool
}

// DefaultOverlayOptions returns the options used by the MCP tool and CLI.
func DefaultOverlayOptions() OverlayOptions {
	return OverlayOptions{
		LineWidth:       2,
		ShowBoundingBox: true,
		ShowCenter:      true,
	}
}

// shapeColor returns the outline color for a shape type. Hues are spread
// evenly around the wheel so adjacent types stay distinguishable.
func shapeColor(t detection.ShapeType) colorful.Color {
	return colorful.Hsv(float64(t)*72, 0.85, 0.95)
}

// DrawOverlay draws the shapes on top of a copy of img and returns it.
//
// Each shape's vertex polygon is stroked in a per-type color. Optionally a
// dashed bounding box and a centroid dot are added. Shape coordinates are
// relative to the image origin, as produced by ToPixelBuffer; img itself is
// never modified.
func DrawOverlay(img image.Image, shapes []detection.Shape, opts OverlayOptions) image.Image {
	return drawOverlay(img, shapes, opts).Image()
}

func drawOverlay(img image.Image, shapes []detection.Shape, opts OverlayOptions) *gg.Context {
	b := img.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.DrawImage(img, -b.Min.X, -b.Min.Y)

	lw := opts.LineWidth
	if lw <= 0 {
		lw = 1
	}

	for _, s := range shapes {
		c := shapeColor(s.Type)

		if len(s.Vertices) > 0 {
			// Pixel centers sit at +0.5.
			dc.NewSubPath()
			for i, v := range s.Vertices {
				x, y := float64(v.X)+0.5, float64(v.Y)+0.5
				if i == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
			dc.ClosePath()
			dc.SetColor(c)
			dc.SetLineWidth(lw)
			dc.SetDash()
			dc.Stroke()
		}

		if opts.ShowBoundingBox {
			bb := s.BoundingBox
			dc.DrawRectangle(float64(bb.X), float64(bb.Y), float64(bb.Width), float64(bb.Height))
			dc.SetRGBA(c.R, c.G, c.B, 0.6)
			dc.SetLineWidth(1)
			dc.SetDash(4, 3)
			dc.Stroke()
		}

		if opts.ShowCenter {
			dc.DrawCircle(float64(s.Center.X)+0.5, float64(s.Center.Y)+0.5, lw+1)
			dc.SetColor(c)
			dc.Fill()
		}
	}

	return dc
}

// RenderOverlay draws the shapes on img and encodes the result as a base64 PNG.
//
// Returns:
//   - *OverlayResult: The annotated image and the number of shapes drawn.
//   - error: Non-nil if PNG encoding fails.
func RenderOverlay(img image.Image, shapes []detection.Shape, opts OverlayOptions) (*OverlayResult, error) {
	dc := drawOverlay(img, shapes, opts)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode overlay: %w", err)
	}

	return &OverlayResult{
		Width:       dc.Width(),
		Height:      dc.Height(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		ShapeCount:  len(shapes),
	}, nil
}

// WriteOverlay draws the shapes on img and saves the result as a PNG file.
func WriteOverlay(path string, img image.Image, shapes []detection.Shape, opts OverlayOptions) error {
	dc := drawOverlay(img, shapes, opts)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write overlay: %w", err)
	}
	return nil
}
