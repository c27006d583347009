package match

import (
	"math"

	"github.com/mzmatch/mzmatch/feature"
	"github.com/mzmatch/mzmatch/index"
)

// MergeStats reports what happened during a Merge call.
type MergeStats struct {
	// Merged counts reference elements absorbed into consensus elements.
	Merged int
	// Singletons counts reference elements appended as new consensus
	// elements because nothing claimed them.
	Singletons int
	// Unmatched counts consensus elements with no corresponding reference
	// element (failed proximity or ambiguity gate, or empty query result).
	Unmatched int
	// Unresolved counts contested claims the tie-break could not settle;
	// each one conflicts its reference element and induces no merge.
	Unresolved int
}

// claimOutcome is the result of resolving a contested claim.
type claimOutcome int

const (
	winIncumbent claimOutcome = iota
	winNew
	unresolvedConflict
)

// Merge builds a consensus map in place. Elements of consensus that match a
// reference element absorb it; reference elements no consensus element
// claims are appended as singletons. The scene side of the matching loop is
// the consensus map itself, so consensus is expected to be dewarped already;
// no transform is applied.
//
// A contested claim is resolved in favor of the candidate whose positional
// range exclusively encloses the reference position. When enclosure does not
// separate the candidates and their normalized mass gap is wide enough to
// tell them apart, the candidate closer to the reference element in raw
// coordinates wins; otherwise the reference element is conflicted and
// excluded.
func (m *Matcher) Merge(ref feature.ConsensusMap, consensus *feature.ConsensusMap) (MergeStats, error) {
	var stats MergeStats
	if len(ref) == 0 || consensus == nil || len(*consensus) == 0 {
		return stats, nil
	}

	points := make([]index.Point, len(ref))
	for i, f := range ref {
		points[i] = m.point(f.Position, i)
	}
	idx := m.newIndex(len(ref))
	if err := idx.Build(points); err != nil {
		return stats, err
	}

	claims := newClaimTable(len(ref))
	type candidate struct {
		model int
		scene int
	}
	var candidates []candidate

	scene := *consensus
	for si := range scene {
		q := m.point(scene[si].Position, si)
		nb, err := idx.Nearest(q, 2)
		if err != nil {
			return stats, err
		}
		if len(nb) == 0 || !m.withinPrecision(q, nb[0].Point) ||
			(len(nb) > 1 && !m.unambiguous(nb[0].Point, nb[1].Point)) {
			stats.Unmatched++
			continue
		}

		key := nb[0].Point.Key
		ci := len(candidates)
		candidates = append(candidates, candidate{model: key, scene: si})

		switch claims[key].state {
		case unclaimed:
			claims.assign(key, ci)
		case claimed:
			prev := candidates[claims[key].candidate]
			outcome := m.resolveClaim(&ref[key], &scene[prev.scene], &scene[si])
			switch outcome {
			case winNew:
				claims.assign(key, ci)
			case unresolvedConflict:
				claims.conflict(key)
				stats.Unresolved++
			}
		case conflicted:
			// terminal, nothing to do
		}
	}

	// Merge first, then append: appending may reallocate the consensus
	// backing array, which would orphan in-place merges.
	var singletons []int
	for key := range ref {
		switch cl := claims[key]; cl.state {
		case claimed:
			scene[candidates[cl.candidate].scene].Merge(&ref[key])
			stats.Merged++
		case unclaimed:
			singletons = append(singletons, key)
		}
	}
	for _, key := range singletons {
		*consensus = append(*consensus, ref[key])
		stats.Singletons++
	}
	return stats, nil
}

// resolveClaim decides between the incumbent b and the new candidate c for
// the reference element a.
func (m *Matcher) resolveClaim(a, b, c *feature.ConsensusFeature) claimOutcome {
	bEncloses := b.Range.Encloses(a.Position)
	cEncloses := c.Range.Encloses(a.Position)
	if cEncloses && !bEncloses {
		return winNew
	}
	if bEncloses && !cEncloses {
		return winIncumbent
	}
	// Enclosure does not separate the candidates. A distance comparison is
	// only trustworthy if the candidates are clearly distinct on the mass
	// axis; co-located candidates stay ambiguous.
	gap := math.Abs(b.Position.Mass/m.scale - c.Position.Mass/m.scale)
	if gap > m.cfg.MaxPairDistanceMass {
		if rawDistance(a.Position, c.Position) < rawDistance(a.Position, b.Position) {
			return winNew
		}
		return winIncumbent
	}
	return unresolvedConflict
}

// rawDistance is the Euclidean distance in raw (time, mass) coordinates.
func rawDistance(p, q feature.Position) float64 {
	return math.Hypot(p.Time-q.Time, p.Mass-q.Mass)
}
