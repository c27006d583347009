package engine

import (
	"math"
	"testing"
)

func TestRegisterPositionFunctionsAndUse(t *testing.T) {
	// Register globally before first connection so functions are available.
	if err := RegisterPositionFunctions(nil); err != nil {
		t.Fatalf("RegisterPositionFunctions failed: %v", err)
	}
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	// pos_l2 between (0,0) and (3,4) -> 5
	var dist float64
	if err := db.QueryRow(`SELECT pos_l2(0, 0, 3, 4)`).Scan(&dist); err != nil {
		t.Fatalf("pos_l2 query failed: %v", err)
	}
	if math.Abs(dist-5) > 1e-9 {
		t.Fatalf("pos_l2 = %v, want 5", dist)
	}

	// pos_l2 of identical positions -> 0
	if err := db.QueryRow(`SELECT pos_l2(10.5, 5.1, 10.5, 5.1)`).Scan(&dist); err != nil {
		t.Fatalf("pos_l2 query failed: %v", err)
	}
	if dist != 0 {
		t.Fatalf("pos_l2 identical = %v, want 0", dist)
	}

	// pos_scale_mass divides by the scale.
	var scaled float64
	if err := db.QueryRow(`SELECT pos_scale_mass(5.0, 0.1)`).Scan(&scaled); err != nil {
		t.Fatalf("pos_scale_mass query failed: %v", err)
	}
	if math.Abs(scaled-50) > 1e-9 {
		t.Fatalf("pos_scale_mass(5, 0.1) = %v, want 50", scaled)
	}

	// NULL propagates.
	var null any
	if err := db.QueryRow(`SELECT pos_l2(NULL, 0, 3, 4)`).Scan(&null); err != nil {
		t.Fatalf("pos_l2 NULL query failed: %v", err)
	}
	if null != nil {
		t.Fatalf("pos_l2 with NULL = %v, want NULL", null)
	}

	// Zero scale is an error.
	if err := db.QueryRow(`SELECT pos_scale_mass(5.0, 0)`).Scan(&scaled); err == nil {
		t.Fatalf("pos_scale_mass with zero scale should fail")
	}
}
