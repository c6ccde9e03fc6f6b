package detection

import "math"

// rejectedLabel marks pixels of components that fell below MinArea. They stay
// visited so the scan never floods them again.
const rejectedLabel int32 = -1

// component is one 4-connected foreground region found by labelComponents.
type component struct {
	label  int32
	pixels []int // arena indices (y*width + x), in fill order
	area   int

	minX, minY, maxX, maxY int
}

// bounds returns the inclusive pixel extent of the component.
func (c *component) bounds() BoundingBox {
	return BoundingBox{
		X:      c.minX,
		Y:      c.minY,
		Width:  c.maxX - c.minX + 1,
		Height: c.maxY - c.minY + 1,
	}
}

// labelComponents finds the connected components of a binary mask.
//
// The scan is row-major and each unvisited foreground pixel seeds a flood fill.
// The returned labels arena has one entry per pixel: 0 for background, a
// positive component label, or rejectedLabel for components smaller than
// minArea. Components are returned in discovery order.
func labelComponents(mask []uint8, width, height, minArea int) ([]component, []int32) {
	labels := make([]int32, len(mask))
	components := make([]component, 0)
	stack := make([]int, 0, 64)
	next := int32(1)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if mask[idx] == 0 || labels[idx] != 0 {
				continue
			}

			comp := floodFill(mask, labels, idx, width, height, next, &stack)
			if comp.area < minArea {
				for _, p := range comp.pixels {
					labels[p] = rejectedLabel
				}
				continue
			}
			components = append(components, comp)
			next++
		}
	}

	return components, labels
}

// floodFill labels every pixel 4-connected to seed and returns the region.
//
// Uses an explicit stack instead of recursion so large regions can't overflow
// the goroutine stack. A pixel is labeled when it is pushed, so each pixel is
// pushed at most once. The stack slice is reused between calls.
func floodFill(mask []uint8, labels []int32, seed, width, height int, label int32, stack *[]int) component {
	comp := component{
		label: label,
		minX:  seed % width,
		minY:  seed / width,
		maxX:  seed % width,
		maxY:  seed / width,
	}

	s := (*stack)[:0]
	labels[seed] = label
	s = append(s, seed)

	push := func(idx int) {
		if mask[idx] != 0 && labels[idx] == 0 {
			labels[idx] = label
			s = append(s, idx)
		}
	}

	for len(s) > 0 {
		idx := s[len(s)-1]
		s = s[:len(s)-1]

		x, y := idx%width, idx/width
		comp.pixels = append(comp.pixels, idx)
		comp.area++
		if x < comp.minX {
			comp.minX = x
		}
		if x > comp.maxX {
			comp.maxX = x
		}
		if y < comp.minY {
			comp.minY = y
		}
		if y > comp.maxY {
			comp.maxY = y
		}

		// 4-connected neighbors
		if x > 0 {
			push(idx - 1)
		}
		if x < width-1 {
			push(idx + 1)
		}
		if y > 0 {
			push(idx - width)
		}
		if y < height-1 {
			push(idx + width)
		}
	}

	*stack = s
	return comp
}

// centroid returns the mean pixel coordinate of the component, rounded to
// the nearest integer.
func (c *component) centroid(width int) Point {
	var sumX, sumY int64
	for _, idx := range c.pixels {
		sumX += int64(idx % width)
		sumY += int64(idx / width)
	}
	n := float64(c.area)
	return Point{
		X: int(math.Round(float64(sumX) / n)),
		Y: int(math.Round(float64(sumY) / n)),
	}
}
