package detection

import (
	"math"
	"sort"
)

// ConvexHull computes the convex hull of a set of points using Andrew's
// monotone chain algorithm.
//
// Returns the hull vertices starting from the smallest (x, y) point, turning
// left at every vertex under the cross product (a-o)×(b-o); collinear points
// on hull edges are not included. Duplicate input points collapse. If fewer
// than three distinct points remain, the distinct points are returned in
// sorted order. The input slice is not modified.
func ConvexHull(points []Point) []Point {
	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	// Drop exact duplicates; they are adjacent after sorting.
	uniq := pts[:0]
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			uniq = append(uniq, p)
		}
	}
	pts = uniq

	if len(pts) < 3 {
		return pts
	}

	hull := make([]Point, 0, 2*len(pts))

	// Lower chain
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper chain
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// The last point repeats the first.
	hull = hull[:len(hull)-1]
	if len(hull) < 3 {
		// All points collinear: keep the two extremes.
		return []Point{pts[0], pts[len(pts)-1]}
	}
	return hull
}

// FilterColinear removes vertices where the polygon runs nearly straight.
//
// For each vertex, the angle between the vectors to its previous and next
// vertex is measured; if it is within toleranceDeg of 180° the vertex is
// dropped. Neighbors are always the original ones, so the decision for one
// vertex never depends on another being removed. A vertex that coincides with
// a neighbor is dropped as a duplicate.
//
// If filtering would leave fewer than three vertices, the input is returned
// unchanged (as a copy).
func FilterColinear(poly []Point, toleranceDeg float64) []Point {
	n := len(poly)
	if n < 3 {
		out := make([]Point, n)
		copy(out, poly)
		return out
	}

	out := make([]Point, 0, n)
	for i, p := range poly {
		prev := poly[(i+n-1)%n]
		next := poly[(i+1)%n]

		ax, ay := float64(prev.X-p.X), float64(prev.Y-p.Y)
		bx, by := float64(next.X-p.X), float64(next.Y-p.Y)
		la := math.Hypot(ax, ay)
		lb := math.Hypot(bx, by)
		if la == 0 || lb == 0 {
			continue
		}

		cos := (ax*bx + ay*by) / (la * lb)
		cos = math.Max(-1, math.Min(1, cos))
		angle := math.Acos(cos) * 180 / math.Pi
		if math.Abs(angle-180) < toleranceDeg {
			continue
		}
		out = append(out, p)
	}

	if len(out) < 3 {
		out = make([]Point, n)
		copy(out, poly)
	}
	return out
}

// cross computes the cross product of vectors OA and OB.
// Positive means O→A→B turns left (counter-clockwise in a y-up frame).
func cross(o, a, b Point) int {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
