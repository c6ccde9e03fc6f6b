package imaging

import (
	"fmt"
	"image"

	imgx "github.com/disintegration/imaging"

	"github.com/ironsheep/shape-detect-mcp/internal/detection"
)

// RegionNames lists the named regions accepted by RegionRect, besides the
// empty string.
var RegionNames = []string{
	"full",
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-half", "bottom-half", "left-half", "right-half",
	"center",
}

// RegionRect resolves a named region of a width x height image to a
// 0-based rectangle. An empty name selects the whole image.
func RegionRect(width, height int, region string) (image.Rectangle, error) {
	midX := width / 2
	midY := height / 2

	var x1, y1, x2, y2 int
	switch region {
	case "", "full":
		x1, y1, x2, y2 = 0, 0, width, height
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, width, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, height
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, width, height
	case "top-half":
		x1, y1, x2, y2 = 0, 0, width, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, width, height
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, height
	case "right-half":
		x1, y1, x2, y2 = midX, 0, width, height
	case "center":
		// Center 50% of the image
		qW := width / 4
		qH := height / 4
		x1, y1, x2, y2 = qW, qH, width-qW, height-qH
	default:
		return image.Rectangle{}, fmt.Errorf("unknown region: %s", region)
	}

	r := image.Rect(x1, y1, x2, y2)
	if r.Empty() {
		return image.Rectangle{}, fmt.Errorf("region %s of %dx%d image is empty", region, width, height)
	}
	return r, nil
}

// CropRegion returns the named region of img with its origin at (0,0),
// together with the position of that origin relative to img's top-left
// corner. The whole image is returned as-is without copying.
func CropRegion(img image.Image, region string) (image.Image, image.Point, error) {
	bounds := img.Bounds()
	r, err := RegionRect(bounds.Dx(), bounds.Dy(), region)
	if err != nil {
		return nil, image.Point{}, err
	}
	if r.Dx() == bounds.Dx() && r.Dy() == bounds.Dy() {
		return img, image.Point{}, nil
	}
	return imgx.Crop(img, r.Add(bounds.Min)), r.Min, nil
}

// TranslateShapes shifts every coordinate of shapes by off, in place.
// It maps shapes detected in a cropped region back onto the full image.
func TranslateShapes(shapes []detection.Shape, off image.Point) {
	if off == (image.Point{}) {
		return
	}
	for i := range shapes {
		s := &shapes[i]
		s.BoundingBox.X += off.X
		s.BoundingBox.Y += off.Y
		s.Center.X += off.X
		s.Center.Y += off.Y
		for j := range s.Vertices {
			s.Vertices[j].X += off.X
			s.Vertices[j].Y += off.Y
		}
	}
}

// DetectInImage runs shape detection over a named region of img.
//
// The region is cropped, converted with ToPixelBuffer and passed to
// detection.DetectShapes. Shape coordinates in the result are translated
// back so they are relative to img's top-left corner, while ImageWidth and
// ImageHeight describe the searched region.
func DetectInImage(img image.Image, region string, invert bool, cfg detection.Config) (*detection.Result, error) {
	src, off, err := CropRegion(img, region)
	if err != nil {
		return nil, err
	}

	result, err := detection.DetectShapes(ToPixelBuffer(src, invert), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to detect shapes: %w", err)
	}
	TranslateShapes(result.Shapes, off)
	return result, nil
}
