package match

import (
	"github.com/mzmatch/mzmatch/feature"
	"github.com/mzmatch/mzmatch/index"
)

// Pair links a reference (model) element to a scene element by their
// positions in the input maps. Indices instead of pointers keep the pair
// valid even if the owning containers are reallocated.
type Pair struct {
	Model int
	Scene int
}

// FindPairs finds a conflict-free 1:1 correspondence between scene and
// reference elements. Scene coordinates pass through tf before the mass
// rescaling; use the zero MapTransform to match untransformed maps.
//
// Every scene element queries its two nearest reference neighbors. A pair
// candidate must lie within the precision window of the nearest neighbor,
// and the runner-up must be separated from the nearest by more than the max
// pair distance on at least one axis. A reference element claimed by two
// distinct scene elements is permanently excluded. Pairs are returned in
// reference element order.
func (m *Matcher) FindPairs(ref, scene feature.Map, tf MapTransform) ([]Pair, error) {
	if len(ref) == 0 || len(scene) == 0 {
		return nil, nil
	}

	points := make([]index.Point, len(ref))
	for i, f := range ref {
		points[i] = m.point(f.Position, i)
	}
	idx := m.newIndex(len(ref))
	if err := idx.Build(points); err != nil {
		return nil, err
	}

	claims := newClaimTable(len(ref))
	var candidates []Pair

	for si, f := range scene {
		q := m.point(tf.apply(f.Position), si)
		nb, err := idx.Nearest(q, 2)
		if err != nil {
			return nil, err
		}
		if len(nb) == 0 {
			continue
		}
		nearest := nb[0].Point
		if !m.withinPrecision(q, nearest) {
			continue
		}
		// A lone neighbor has no runner-up to be confused with.
		if len(nb) > 1 && !m.unambiguous(nearest, nb[1].Point) {
			continue
		}
		ci := len(candidates)
		candidates = append(candidates, Pair{Model: nearest.Key, Scene: si})
		claims.claimSticky(nearest.Key, ci)
	}

	var pairs []Pair
	for key := range ref {
		if c := claims[key]; c.state == claimed {
			pairs = append(pairs, candidates[c.candidate])
		}
	}
	return pairs, nil
}
