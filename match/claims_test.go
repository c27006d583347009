package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimStickyTransitions(t *testing.T) {
	claims := newClaimTable(2)
	assert.Equal(t, unclaimed, claims[0].state)

	claims.claimSticky(0, 7)
	assert.Equal(t, claimed, claims[0].state)
	assert.Equal(t, 7, claims[0].candidate)

	// Second claim conflicts permanently.
	claims.claimSticky(0, 9)
	assert.Equal(t, conflicted, claims[0].state)
	claims.claimSticky(0, 11)
	assert.Equal(t, conflicted, claims[0].state, "conflicted is terminal")

	// Other keys are unaffected.
	assert.Equal(t, unclaimed, claims[1].state)
}

func TestClaimAssignReassigns(t *testing.T) {
	claims := newClaimTable(1)
	claims.assign(0, 3)
	claims.assign(0, 5)
	assert.Equal(t, claimed, claims[0].state)
	assert.Equal(t, 5, claims[0].candidate)

	claims.conflict(0)
	assert.Equal(t, conflicted, claims[0].state)
}
