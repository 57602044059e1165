package nptable

import "slices"

// MaxCatalog is the number of points a one-byte index can address.
const MaxCatalog = 256

// Catalog is the sorted, duplicate-free set of noise points of a table.
type Catalog struct {
	points []Point
	index  map[Point]uint8
}

// BuildCatalog interns every point of rows.
func BuildCatalog(rows []Row) (*Catalog, error) {
	set := make(map[Point]struct{})
	for _, r := range rows {
		for _, p := range r.Points {
			set[p] = struct{}{}
		}
	}
	if len(set) > MaxCatalog {
		return nil, &CatalogOverflowError{Size: len(set)}
	}

	points := make([]Point, 0, len(set))
	for p := range set {
		points = append(points, p)
	}
	slices.SortFunc(points, Point.Compare)

	index := make(map[Point]uint8, len(points))
	for i, p := range points {
		index[p] = uint8(i)
	}
	return &Catalog{points: points, index: index}, nil
}

// Index returns the catalog index of p.
func (c *Catalog) Index(p Point) (uint8, bool) {
	i, ok := c.index[p]
	return i, ok
}

// At returns the point stored at index i.
func (c *Catalog) At(i uint8) Point {
	return c.points[i]
}

// Len returns the number of points.
func (c *Catalog) Len() int {
	return len(c.points)
}

// Points returns a copy of the points in catalog order.
func (c *Catalog) Points() []Point {
	return slices.Clone(c.points)
}
