package nptable

import "cmp"

// PointsPerRow is the number of noise points stored per node.
const PointsPerRow = 6

// Point is one interval of a node, stored in the catalog as a pair.
type Point struct {
	X, Y int
}

// Compare orders points by X, then Y.
func (p Point) Compare(o Point) int {
	if c := cmp.Compare(p.X, o.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, o.Y)
}
