package bruteforce

import (
	"math"
	"sort"

	"github.com/mzmatch/mzmatch/index"
)

// Index is a brute-force spatial index over 2D points.
type Index struct {
	points []index.Point
}

// New returns an empty brute-force index.
func New() *Index { return &Index{} }

// Build copies the points into the index.
func (i *Index) Build(points []index.Point) error {
	i.points = append([]index.Point(nil), points...)
	return nil
}

// Nearest returns up to k points ordered by ascending Euclidean distance.
// Equidistant points are ordered by key so results are deterministic.
func (i *Index) Nearest(query index.Point, k int) ([]index.Neighbor, error) {
	if len(i.points) == 0 || k <= 0 {
		return nil, nil
	}
	scored := make([]index.Neighbor, 0, len(i.points))
	for _, p := range i.points {
		dt := query.Time - p.Time
		dm := query.Mass - p.Mass
		scored = append(scored, index.Neighbor{Point: p, Distance: math.Sqrt(dt*dt + dm*dm)})
	}
	sort.Slice(scored, func(a, b int) bool {
		if scored[a].Distance != scored[b].Distance {
			return scored[a].Distance < scored[b].Distance
		}
		return scored[a].Point.Key < scored[b].Point.Key
	})
	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}

// Ensure Index satisfies the index interface.
var _ index.Index = (*Index)(nil)
