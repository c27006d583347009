package feature

// ConsensusFeature is a merged representation of one or more features. Its
// position is the mean of its member positions and its range is the bounding
// interval of all member positions (at minimum the lead member's own range).
type ConsensusFeature struct {
	Position Position
	Range    Range
	Members  []Feature
}

// NewConsensusFeature lifts a single feature to a singleton consensus
// element. A zero feature range collapses to the point range of the position
// so that enclosure tests remain meaningful.
func NewConsensusFeature(f Feature) ConsensusFeature {
	r := f.Range
	if r.MinTime > r.MaxTime || r.MinMass > r.MaxMass || (r == Range{}) {
		r = PointRange(f.Position)
	}
	return ConsensusFeature{
		Position: f.Position,
		Range:    r,
		Members:  []Feature{f},
	}
}

// Lead returns the first member, the feature the consensus element was
// created from. Merging another consensus element absorbs its lead only.
func (c *ConsensusFeature) Lead() Feature {
	if len(c.Members) == 0 {
		return Feature{}
	}
	return c.Members[0]
}

// Merge absorbs the lead member of other into c: the member list grows by
// one, the range extends over the new member's position, and the position is
// recentered on the member mean.
func (c *ConsensusFeature) Merge(other *ConsensusFeature) {
	if other == nil || len(other.Members) == 0 {
		return
	}
	m := other.Lead()
	c.Members = append(c.Members, m)
	c.Range = c.Range.Extend(m.Position)

	var t, mz float64
	for _, member := range c.Members {
		t += member.Position.Time
		mz += member.Position.Mass
	}
	n := float64(len(c.Members))
	c.Position = Position{Time: t / n, Mass: mz / n}
}

// ConsensusMap is an ordered, mutable set of consensus elements. Consensus
// building mutates it in place: matched elements absorb their reference
// partners and unmatched reference elements are appended as singletons.
type ConsensusMap []ConsensusFeature

// NewConsensusMap lifts every feature of m to a singleton consensus element,
// preserving order.
func NewConsensusMap(m Map) ConsensusMap {
	out := make(ConsensusMap, 0, len(m))
	for _, f := range m {
		out = append(out, NewConsensusFeature(f))
	}
	return out
}
