package match

// claimState tracks how a reference element relates to the candidate list
// during one matching run.
type claimState uint8

const (
	// unclaimed: no scene element has claimed the reference element yet.
	unclaimed claimState = iota
	// claimed: exactly one surviving candidate references the element.
	claimed
	// conflicted: the element was claimed ambiguously and is excluded from
	// the output. Conflicted is terminal.
	conflicted
)

type claim struct {
	state     claimState
	candidate int // index into the candidate list, valid only when claimed
}

// claimTable holds one claim per reference element, indexed by element key.
// Its lifetime is a single matching call.
type claimTable []claim

func newClaimTable(n int) claimTable {
	return make(claimTable, n)
}

// claimSticky records a claim with sticky conflict semantics: a second claim
// on the same key conflicts it permanently.
func (t claimTable) claimSticky(key, candidate int) {
	switch t[key].state {
	case unclaimed:
		t[key] = claim{state: claimed, candidate: candidate}
	case claimed:
		t[key] = claim{state: conflicted}
	}
}

// assign sets or reassigns the surviving candidate for key.
func (t claimTable) assign(key, candidate int) {
	t[key] = claim{state: claimed, candidate: candidate}
}

// conflict marks key as terminally conflicted.
func (t claimTable) conflict(key int) {
	t[key] = claim{state: conflicted}
}
