package vptree

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mzmatch/mzmatch/index"
	"github.com/mzmatch/mzmatch/index/bruteforce"
)

func TestNearestSinglePoint(t *testing.T) {
	idx := New()
	if err := idx.Build([]index.Point{{Time: 3, Mass: 4, Key: 0}}); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	nb, err := idx.Nearest(index.Point{}, 2)
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	if len(nb) != 1 {
		t.Fatalf("Nearest returned %d neighbors, want 1", len(nb))
	}
	if nb[0].Point.Key != 0 {
		t.Errorf("Nearest key = %d, want 0", nb[0].Point.Key)
	}
	if math.Abs(nb[0].Distance-5) > 1e-3 {
		t.Errorf("Nearest distance = %v, want 5", nb[0].Distance)
	}
}

func TestNearestEmptyTree(t *testing.T) {
	idx := New()
	if err := idx.Build(nil); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	nb, err := idx.Nearest(index.Point{}, 2)
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	if nb != nil {
		t.Errorf("Nearest on empty tree = %v, want nil", nb)
	}
}

// TestNearestAgreesWithBruteForce checks the tree against the exhaustive
// baseline on a seeded random point set. Distances are compared rather than
// keys: the tree computes in float32 and may legitimately swap neighbors
// whose distances differ by less than the conversion error.
func TestNearestAgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	points := make([]index.Point, 300)
	for i := range points {
		points[i] = index.Point{
			Time: rng.Float64() * 1000,
			Mass: rng.Float64() * 100,
			Key:  i,
		}
	}

	tree := New()
	if err := tree.Build(points); err != nil {
		t.Fatalf("tree Build failed: %v", err)
	}
	brute := bruteforce.New()
	if err := brute.Build(points); err != nil {
		t.Fatalf("brute Build failed: %v", err)
	}

	for q := 0; q < 50; q++ {
		query := index.Point{Time: rng.Float64() * 1000, Mass: rng.Float64() * 100}
		want, err := brute.Nearest(query, 2)
		if err != nil {
			t.Fatalf("brute Nearest failed: %v", err)
		}
		got, err := tree.Nearest(query, 2)
		if err != nil {
			t.Fatalf("tree Nearest failed: %v", err)
		}
		if len(got) != len(want) {
			t.Fatalf("query %d: tree returned %d neighbors, brute %d", q, len(got), len(want))
		}
		for i := range want {
			if math.Abs(got[i].Distance-want[i].Distance) > 1e-2 {
				t.Errorf("query %d neighbor %d: tree distance %v, brute distance %v",
					q, i, got[i].Distance, want[i].Distance)
			}
		}
	}
}
