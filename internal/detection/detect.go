package detection

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// minBoundaryPoints is the shortest traced boundary worth classifying.
	minBoundaryPoints = 6

	// minEpsilon is the floor of the Douglas-Peucker tolerance in pixels.
	minEpsilon = 4.0
)

// DetectShapes finds and classifies the dark shapes in a pixel buffer.
//
// Parameters:
//   - buf: Source pixels. Must satisfy buf.Validate(); it is never modified.
//   - cfg: Detection parameters. Must satisfy cfg.Validate(). Use
//     DefaultConfig() for the standard settings.
//
// Returns:
//   - *Result: Shapes in discovery order plus timing and image dimensions.
//     Shapes is empty (not nil) when nothing is found.
//   - error: Non-nil only for a malformed buffer or config. No partial result
//     is returned on error.
//
// # Algorithm
//
//  1. Grayscale and threshold the buffer into a foreground mask
//  2. Label 4-connected components, discarding those below cfg.MinArea
//  3. For each component, trace and order its boundary; skip it if the
//     boundary has fewer than 6 points
//  4. Simplify the boundary with epsilon = max(4, ratio × perimeter)
//  5. Take the convex hull and prune near-straight vertices; skip the
//     component if fewer than 3 vertices remain
//  6. Classify, then compute centroid and confidence
//
// All scratch buffers are allocated per call, so concurrent calls are safe.
func DetectShapes(buf PixelBuffer, cfg Config) (*Result, error) {
	start := time.Now()

	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	width, height := buf.Width, buf.Height
	mask := segment(grayscale(buf), cfg.Threshold)
	components, labels := labelComponents(mask, width, height, cfg.MinArea)

	shapes := make([]Shape, 0, len(components))
	for i := range components {
		comp := &components[i]
		shape, ok := buildShape(comp, labels, mask, width, height, cfg)
		if !ok {
			continue
		}
		shapes = append(shapes, shape)
	}

	return &Result{
		Shapes:         shapes,
		ProcessingTime: float64(time.Since(start).Microseconds()) / 1000,
		ImageWidth:     width,
		ImageHeight:    height,
	}, nil
}

// buildShape runs boundary tracing through classification for one component.
// It returns false when the component is geometrically degenerate.
func buildShape(comp *component, labels []int32, mask []uint8, width, height int, cfg Config) (Shape, bool) {
	boundary := traceBoundary(comp, labels, mask, width, height)
	if len(boundary) < minBoundaryPoints {
		return Shape{}, false
	}

	path := orderBoundary(boundary)
	perimeter := pathLength(path)

	epsilon := math.Max(minEpsilon, cfg.DouglasPeuckerRatio*perimeter)
	simplified := SimplifyPath(path, epsilon)
	hull := FilterColinear(ConvexHull(simplified), cfg.ColinearToleranceDeg)
	if len(hull) < 3 {
		return Shape{}, false
	}

	kind, circ := classify(hull, comp.area, perimeter)

	return Shape{
		Type:        kind,
		BoundingBox: comp.bounds(),
		Center:      comp.centroid(width),
		Area:        comp.area,
		Perimeter:   scalar.Round(perimeter, 4),
		Circularity: scalar.Round(circ, 4),
		Confidence:  confidence(kind, circ, comp.area),
		Vertices:    hull,
	}, true
}
