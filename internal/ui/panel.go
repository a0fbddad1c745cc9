package ui

import "editkit/internal/dock"

// Bounds is a panel's position and size in terminal cells.
type Bounds struct {
	X, Y, W, H int
}

// Panel hosts one spawned dock widget and its place in the layout.
type Panel struct {
	Instance *dock.Instance
	Bounds   Bounds
}

// SplitBounds divides a region into n slices along the given axis.
// horizontal=true splits into columns, otherwise into rows. The last
// slice absorbs the remainder so the slices always cover the region.
func SplitBounds(width, height, n int, horizontal bool) []Bounds {
	if n <= 0 {
		return nil
	}
	out := make([]Bounds, n)
	if horizontal {
		step := width / n
		for i := range out {
			out[i] = Bounds{X: i * step, Y: 0, W: step, H: height}
		}
		out[n-1].W = width - (n-1)*step
	} else {
		step := height / n
		for i := range out {
			out[i] = Bounds{X: 0, Y: i * step, W: width, H: step}
		}
		out[n-1].H = height - (n-1)*step
	}
	return out
}
