package detection

import "math"

// traceBoundary returns the boundary pixels of a component in row-major order.
//
// Only the component's bounding box is scanned. A pixel is on the boundary
// when it belongs to the component and at least one of its four axis
// neighbors is background; neighbors outside the image count as background.
func traceBoundary(c *component, labels []int32, mask []uint8, width, height int) []Point {
	boundary := make([]Point, 0, 2*(c.maxX-c.minX+c.maxY-c.minY+2))

	for y := c.minY; y <= c.maxY; y++ {
		for x := c.minX; x <= c.maxX; x++ {
			idx := y*width + x
			if labels[idx] != c.label {
				continue
			}
			if x == 0 || mask[idx-1] == 0 ||
				x == width-1 || mask[idx+1] == 0 ||
				y == 0 || mask[idx-width] == 0 ||
				y == height-1 || mask[idx+width] == 0 {
				boundary = append(boundary, Point{X: x, Y: y})
			}
		}
	}

	return boundary
}

// orderBoundary turns an unordered boundary set into a closed walk.
//
// Starting at the first point, it repeatedly steps to the nearest unvisited
// point by squared Euclidean distance. Ties go to the earliest point in the
// input order, so the walk is deterministic for scan-ordered input.
// This is O(n²) and the result is not guaranteed to be a simple polygon.
func orderBoundary(points []Point) []Point {
	n := len(points)
	if n == 0 {
		return nil
	}

	path := make([]Point, 0, n)
	visited := make([]bool, n)
	cur := 0
	visited[0] = true
	path = append(path, points[0])

	for len(path) < n {
		best := -1
		bestDist := math.MaxInt
		p := points[cur]
		for i, q := range points {
			if visited[i] {
				continue
			}
			dx, dy := q.X-p.X, q.Y-p.Y
			if d := dx*dx + dy*dy; d < bestDist {
				bestDist = d
				best = i
				if d == 1 {
					// No unvisited pixel can be closer than an axis neighbor.
					break
				}
			}
		}
		visited[best] = true
		path = append(path, points[best])
		cur = best
	}

	return path
}

// pathLength returns the length of the closed walk, including the segment
// from the last point back to the first.
func pathLength(path []Point) float64 {
	if len(path) < 2 {
		return 0
	}
	var length float64
	for i := range path {
		a := path[i]
		b := path[(i+1)%len(path)]
		length += math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
	}
	return length
}
