// Package detection converts a raster pixel buffer into classified geometric shapes.
//
// This package is the algorithmic core of the server. It takes an RGBA pixel
// buffer and returns circles, triangles, squares, rectangles and generic
// polygons, each with a bounding box, centroid, area, vertex list and a
// confidence score. It's designed for clean, high-contrast diagrams where
// shapes are drawn darker than the background.
//
// # Pipeline
//
// DetectShapes runs the following stages over one image:
//
//  1. Grayscale: ITU-R BT.601 luminance, floor(0.299*R + 0.587*G + 0.114*B)
//  2. Segmentation: fixed threshold, foreground = intensity < Threshold
//  3. Labeling: 4-connected flood fill with an explicit stack
//  4. Boundary tracing: boundary pixels ordered by a greedy nearest-neighbor walk
//  5. Simplification: iterative Douglas-Peucker with an index-range stack
//  6. Canonicalization: monotone-chain convex hull, then colinear vertex pruning
//  7. Classification: vertex count, aspect ratio and circularity heuristics
//
// # Determinism
//
// Every stage is single-threaded and breaks ties by scan order, so two calls
// with the same buffer and Config return identical shape lists in the same
// order. Shapes are reported in discovery order, which follows the row-major
// scan of the labeling pass.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//   - Bounding boxes are inclusive pixel extents (Width = maxX - minX + 1)
//
// # Confidence Scores
//
// Confidence combines a per-type prior with circularity and size boosts and is
// always clamped to [0.12, 0.99]:
//   - Triangle 0.90, Square/Rectangle 0.88, Circle 0.93, Polygon 0.65
//   - Circularity boost: min(0.15, max(0, (circularity - 0.4) * 0.5))
//   - Size boost: min(0.2, log10(max(10, area)) * 0.03)
//
// # Error Handling
//
// Degenerate geometry is never an error. Components smaller than MinArea,
// boundaries shorter than six points and hulls that collapse below three
// vertices are skipped silently. Only malformed input (bad dimensions, a
// buffer of the wrong length, or an out-of-range Config) fails, and it fails
// before any work is done.
//
// # Limitations
//
//   - Light shapes on a dark background must be inverted by the caller
//   - The greedy boundary walk can self-intersect on ragged outlines; the
//     convex hull absorbs most of that noise but concave shapes lose detail
//   - No denoising is performed, so speckle above MinArea is reported
package detection
