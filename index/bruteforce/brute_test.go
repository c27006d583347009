package bruteforce

import (
	"testing"

	"github.com/mzmatch/mzmatch/index"
)

func TestNearestOrdersByDistance(t *testing.T) {
	idx := New()
	err := idx.Build([]index.Point{
		{Time: 0, Mass: 10, Key: 0},
		{Time: 0, Mass: 1, Key: 1},
		{Time: 0, Mass: 4, Key: 2},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	nb, err := idx.Nearest(index.Point{Time: 0, Mass: 0}, 2)
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	if len(nb) != 2 {
		t.Fatalf("Nearest returned %d neighbors, want 2", len(nb))
	}
	if nb[0].Point.Key != 1 || nb[1].Point.Key != 2 {
		t.Errorf("Nearest keys = [%d, %d], want [1, 2]", nb[0].Point.Key, nb[1].Point.Key)
	}
	if nb[0].Distance != 1 || nb[1].Distance != 4 {
		t.Errorf("Nearest distances = [%v, %v], want [1, 4]", nb[0].Distance, nb[1].Distance)
	}
}

func TestNearestBreaksTiesByKey(t *testing.T) {
	idx := New()
	err := idx.Build([]index.Point{
		{Time: 1, Mass: 0, Key: 3},
		{Time: -1, Mass: 0, Key: 1},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	nb, err := idx.Nearest(index.Point{}, 2)
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	if nb[0].Point.Key != 1 || nb[1].Point.Key != 3 {
		t.Errorf("equidistant keys = [%d, %d], want key order [1, 3]", nb[0].Point.Key, nb[1].Point.Key)
	}
}

func TestNearestClampsK(t *testing.T) {
	idx := New()
	if err := idx.Build([]index.Point{{Time: 1, Mass: 1, Key: 0}}); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	nb, err := idx.Nearest(index.Point{}, 5)
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	if len(nb) != 1 {
		t.Errorf("Nearest returned %d neighbors, want 1", len(nb))
	}
}

func TestNearestEmptyIndex(t *testing.T) {
	idx := New()
	if err := idx.Build(nil); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	nb, err := idx.Nearest(index.Point{}, 2)
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	if nb != nil {
		t.Errorf("Nearest on empty index = %v, want nil", nb)
	}
}
