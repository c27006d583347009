// Package match implements pair finding and consensus building between 2D
// feature maps.
//
// Both operations walk the scene map once, query the two nearest reference
// neighbors of each scene element in mass-rescaled coordinate space, and
// gate candidates with a proximity test against the nearest neighbor and an
// ambiguity test against the runner-up. A per-reference claim table keeps
// the mapping one-to-one: in pair finding a reference element claimed by two
// scene elements is conflicted for good, while consensus building first
// tries to break the tie by positional-range enclosure and candidate
// distance before giving up on the element.
//
// Results are deterministic for a fixed scene element order; reordering the
// scene map can change which element wins a contested claim.
package match
