package feature

// Position is a 2D coordinate on the time-like axis (retention time) and the
// mass-like axis (m/z).
type Position struct {
	Time float64
	Mass float64
}

// Range is a closed 2D interval around a feature: [MinTime, MaxTime] x
// [MinMass, MaxMass]. A zero Range encloses only the origin.
type Range struct {
	MinTime float64
	MaxTime float64
	MinMass float64
	MaxMass float64
}

// Encloses reports whether p lies inside the range, bounds included.
func (r Range) Encloses(p Position) bool {
	return p.Time >= r.MinTime && p.Time <= r.MaxTime &&
		p.Mass >= r.MinMass && p.Mass <= r.MaxMass
}

// Extend grows the range so that it encloses p. An empty range (Min > Max on
// either axis) collapses onto p.
func (r Range) Extend(p Position) Range {
	if r.MinTime > r.MaxTime || r.MinMass > r.MaxMass {
		return Range{MinTime: p.Time, MaxTime: p.Time, MinMass: p.Mass, MaxMass: p.Mass}
	}
	if p.Time < r.MinTime {
		r.MinTime = p.Time
	}
	if p.Time > r.MaxTime {
		r.MaxTime = p.Time
	}
	if p.Mass < r.MinMass {
		r.MinMass = p.Mass
	}
	if p.Mass > r.MaxMass {
		r.MaxMass = p.Mass
	}
	return r
}

// PointRange returns the degenerate range containing exactly p.
func PointRange(p Position) Range {
	return Range{MinTime: p.Time, MaxTime: p.Time, MinMass: p.Mass, MaxMass: p.Mass}
}

// Feature represents a single positioned element of a feature map.
type Feature struct {
	Position  Position
	Intensity float64
	Range     Range
}

// Map is an ordered feature set. Element order is significant: matching
// results are expressed as indices into the map, and the matching engine is
// deterministic only for a fixed element order.
type Map []Feature
