package index

// Point is a normalized 2D coordinate plus a unique integer key equal to the
// point's position in its originating ordered set. The key is a weak
// back-reference: it relates the point to its owner without holding it.
type Point struct {
	Time float64
	Mass float64
	Key  int
}

// Neighbor describes a candidate returned by a nearest-neighbor query.
type Neighbor struct {
	Point    Point
	Distance float64
}

// Index defines a 2D spatial index built once over a point set and queried
// for k nearest neighbors.
type Index interface {
	// Build constructs the index from the given points. Build replaces any
	// previous content.
	Build(points []Point) error

	// Nearest runs a kNN search with the provided query point and returns
	// up to k neighbors ordered nearest-first by Euclidean distance.
	Nearest(query Point, k int) ([]Neighbor, error)
}
