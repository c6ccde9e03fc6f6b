package detection

import "math"

// SimplifyPath reduces the number of vertices using the Douglas-Peucker algorithm.
//
// Parameters:
//   - path: Ordered points. The first and last points are always kept.
//   - epsilon: Maximum perpendicular deviation tolerated before a point is
//     considered essential. Values <= 0 disable reduction.
//
// Returns a new slice; the input is never modified. Point order is preserved.
//
// # Algorithm
//
// Rather than recursing, the range [0, n-1] is pushed on an explicit stack.
// For each popped range the interior point farthest from the chord between the
// range endpoints is found (the first one wins on ties). If its distance
// exceeds epsilon it is marked as kept and both halves are pushed; otherwise
// the whole interior is dropped. Stack depth is bounded by the number of kept
// points, not by recursion depth, so contours with thousands of points are
// safe.
func SimplifyPath(path []Point, epsilon float64) []Point {
	if len(path) <= 2 || epsilon <= 0 {
		out := make([]Point, len(path))
		copy(out, path)
		return out
	}

	last := len(path) - 1
	keep := make([]bool, len(path))
	keep[0] = true
	keep[last] = true

	type span struct{ start, end int }
	stack := []span{{0, last}}

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.end-r.start < 2 {
			continue
		}

		dmax := 0.0
		index := -1
		for i := r.start + 1; i < r.end; i++ {
			d := perpendicularDistance(path[i], path[r.start], path[r.end])
			if d > dmax {
				dmax = d
				index = i
			}
		}

		if index >= 0 && dmax > epsilon {
			keep[index] = true
			stack = append(stack, span{r.start, index}, span{index, r.end})
		}
	}

	out := make([]Point, 0, 8)
	for i, k := range keep {
		if k {
			out = append(out, path[i])
		}
	}
	return out
}

// perpendicularDistance returns the distance from p to the infinite line
// through a and b. A zero-length chord falls back to the distance from p to a.
func perpendicularDistance(p, a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)

	if dx == 0 && dy == 0 {
		return math.Hypot(float64(p.X-a.X), float64(p.Y-a.Y))
	}

	num := math.Abs(dy*float64(p.X) - dx*float64(p.Y) + float64(b.X*a.Y) - float64(b.Y*a.X))
	return num / math.Sqrt(dx*dx+dy*dy)
}
