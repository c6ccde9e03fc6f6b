package detection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// BoundingBox is an axis-aligned box in pixel coordinates.
//
// (X, Y) is the top-left pixel; Width and Height are inclusive pixel extents,
// so a single pixel has Width = Height = 1.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ShapeType is the classified kind of a detected shape.
type ShapeType int

const (
	// Circle is any non-triangle, non-quadrilateral shape with circularity > 0.7.
	Circle ShapeType = iota
	// Triangle has a three-vertex hull.
	Triangle
	// Square has a four-vertex hull whose bounding box aspect ratio is within 0.12 of 1.
	Square
	// Rectangle has a four-vertex hull that is not square.
	Rectangle
	// Polygon is everything else.
	Polygon
)

func (t ShapeType) String() string {
	switch t {
	case Circle:
		return "circle"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case Rectangle:
		return "rectangle"
	case Polygon:
		return "polygon"
	default:
		return fmt.Sprintf("ShapeType(%d)", int(t))
	}
}

// MarshalText encodes the type as its lowercase name.
func (t ShapeType) MarshalText() ([]byte, error) {
	switch t {
	case Circle, Triangle, Square, Rectangle, Polygon:
		return []byte(t.String()), nil
	}
	return nil, fmt.Errorf("unknown shape type %d", int(t))
}

// UnmarshalText decodes a lowercase shape name.
func (t *ShapeType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "circle":
		*t = Circle
	case "triangle":
		*t = Triangle
	case "square":
		*t = Square
	case "rectangle":
		*t = Rectangle
	case "polygon":
		*t = Polygon
	default:
		return fmt.Errorf("unknown shape type %q", text)
	}
	return nil
}

// Shape is one detected and classified region.
type Shape struct {
	// Type is the classified kind.
	Type ShapeType `json:"type"`

	// BoundingBox is the pixel extent of the flood-filled region.
	BoundingBox BoundingBox `json:"boundingBox"`

	// Center is the pixel centroid of the region (mean of every pixel
	// coordinate), rounded to the nearest integer.
	Center Point `json:"center"`

	// Area is the region's pixel count.
	Area int `json:"area"`

	// Perimeter is the length of the traced boundary walk before
	// simplification, rounded to 4 decimals.
	Perimeter float64 `json:"perimeter"`

	// Circularity is 4π·area/perimeter², rounded to 4 decimals.
	// 1.0 for a perfect disc, lower for angular shapes.
	Circularity float64 `json:"circularity"`

	// Confidence is a heuristic certainty in [0.12, 0.99], 2 decimals.
	Confidence float64 `json:"confidence"`

	// Vertices is the canonical polygon: the convex hull of the simplified
	// boundary with near-straight vertices removed. Always at least 3 points.
	Vertices []Point `json:"vertices"`
}

// Result contains all shapes detected in one image.
type Result struct {
	// Shapes in discovery order (row-major scan of the labeling pass).
	Shapes []Shape `json:"shapes"`

	// ProcessingTime is the wall-clock duration of the call in milliseconds.
	ProcessingTime float64 `json:"processingTime"`

	ImageWidth  int `json:"imageWidth"`
	ImageHeight int `json:"imageHeight"`
}

// Classification thresholds and confidence bounds.
const (
	squareTolerance    = 0.12
	circleCircularity  = 0.7
	minConfidence      = 0.12
	maxConfidence      = 0.99
	maxCircularityGain = 0.15
	maxSizeGain        = 0.2
)

// classify decides the shape type from the canonical polygon.
//
// The rules are evaluated in a fixed order:
//  1. 3 vertices → Triangle
//  2. 4 vertices → Square if the vertices' bounding box aspect ratio is within
//     squareTolerance of 1, else Rectangle
//  3. circularity > circleCircularity → Circle
//  4. otherwise → Polygon
//
// Circularity is always computed from the raw pixel area and the traced
// perimeter, and is returned alongside the type.
func classify(hull []Point, area int, perimeter float64) (ShapeType, float64) {
	circ := circularity(area, perimeter)

	switch len(hull) {
	case 3:
		return Triangle, circ
	case 4:
		if math.Abs(aspectRatio(hull)-1) < squareTolerance {
			return Square, circ
		}
		return Rectangle, circ
	}

	if circ > circleCircularity {
		return Circle, circ
	}
	return Polygon, circ
}

// circularity returns 4π·area/perimeter². The perimeter is floored at 1.
func circularity(area int, perimeter float64) float64 {
	p := math.Max(1, perimeter)
	return 4 * math.Pi * float64(area) / (p * p)
}

// aspectRatio returns width/height of the axis-aligned bounding box of the
// vertices. Both extents are floored at 1.
func aspectRatio(vertices []Point) float64 {
	minX, minY := vertices[0].X, vertices[0].Y
	maxX, maxY := minX, minY
	for _, v := range vertices[1:] {
		minX = min(minX, v.X)
		maxX = max(maxX, v.X)
		minY = min(minY, v.Y)
		maxY = max(maxY, v.Y)
	}
	w := max(1, maxX-minX)
	h := max(1, maxY-minY)
	return float64(w) / float64(h)
}

// confidence scores a classification.
//
//	score = base(type)
//	      + min(0.15, max(0, (circularity - 0.4) * 0.5))
//	      + min(0.2, log10(max(10, area)) * 0.03)
//
// The score is clamped to [0.12, 0.99] and rounded to 2 decimals.
func confidence(t ShapeType, circ float64, area int) float64 {
	var base float64
	switch t {
	case Triangle:
		base = 0.90
	case Square, Rectangle:
		base = 0.88
	case Circle:
		base = 0.93
	case Polygon:
		base = 0.65
	}

	circGain := math.Min(maxCircularityGain, math.Max(0, (circ-0.4)*0.5))
	sizeGain := math.Min(maxSizeGain, math.Log10(math.Max(10, float64(area)))*0.03)

	score := base + circGain + sizeGain
	score = math.Max(minConfidence, math.Min(maxConfidence, score))
	return scalar.Round(score, 2)
}
