package feature

import "testing"

func TestRangeEncloses(t *testing.T) {
	r := Range{MinTime: 10, MaxTime: 20, MinMass: 5, MaxMass: 6}

	cases := []struct {
		name string
		p    Position
		want bool
	}{
		{"inside", Position{Time: 15, Mass: 5.5}, true},
		{"lower bounds inclusive", Position{Time: 10, Mass: 5}, true},
		{"upper bounds inclusive", Position{Time: 20, Mass: 6}, true},
		{"time below", Position{Time: 9.9, Mass: 5.5}, false},
		{"mass above", Position{Time: 15, Mass: 6.1}, false},
	}
	for _, tc := range cases {
		if got := r.Encloses(tc.p); got != tc.want {
			t.Errorf("%s: Encloses(%+v) = %v, want %v", tc.name, tc.p, got, tc.want)
		}
	}
}

func TestRangeExtend(t *testing.T) {
	r := PointRange(Position{Time: 10, Mass: 5})
	r = r.Extend(Position{Time: 12, Mass: 4})
	if !r.Encloses(Position{Time: 11, Mass: 4.5}) {
		t.Errorf("extended range %+v should enclose the midpoint", r)
	}
	if r.MinTime != 10 || r.MaxTime != 12 || r.MinMass != 4 || r.MaxMass != 5 {
		t.Errorf("extended range = %+v, want [10,12]x[4,5]", r)
	}
}

func TestNewConsensusFeatureDefaultsToPointRange(t *testing.T) {
	f := Feature{Position: Position{Time: 10, Mass: 5}}
	c := NewConsensusFeature(f)
	if !c.Range.Encloses(f.Position) {
		t.Errorf("singleton range %+v should enclose its own position", c.Range)
	}
	if len(c.Members) != 1 {
		t.Fatalf("singleton has %d members, want 1", len(c.Members))
	}
}

func TestConsensusMerge(t *testing.T) {
	c := NewConsensusFeature(Feature{Position: Position{Time: 10, Mass: 5}})
	other := NewConsensusFeature(Feature{Position: Position{Time: 12, Mass: 5.2}})
	c.Merge(&other)

	if len(c.Members) != 2 {
		t.Fatalf("merged consensus has %d members, want 2", len(c.Members))
	}
	if c.Position.Time != 11 {
		t.Errorf("merged time = %v, want member mean 11", c.Position.Time)
	}
	if !c.Range.Encloses(Position{Time: 12, Mass: 5.2}) {
		t.Errorf("merged range %+v should enclose the absorbed position", c.Range)
	}
}

func TestNewConsensusMapPreservesOrder(t *testing.T) {
	m := Map{
		{Position: Position{Time: 1, Mass: 1}},
		{Position: Position{Time: 2, Mass: 2}},
	}
	cm := NewConsensusMap(m)
	if len(cm) != 2 {
		t.Fatalf("consensus map has %d elements, want 2", len(cm))
	}
	if cm[0].Position.Time != 1 || cm[1].Position.Time != 2 {
		t.Errorf("consensus map order changed: %+v", cm)
	}
}
