package cdcl

import "testing"

func TestPropagator_unitChain(t *testing.T) {
	// {1} forces 1=TRUE; {-1, 2} then forces 2=TRUE; {-2, 3} forces 3=TRUE.
	f := NewFormula(3, [][]Literal{{1}, {-1, 2}, {-2, 3}})
	a := NewAssignment(3)
	g := NewGraph(3)
	p := NewPropagator(f, a, g)

	if conflict := p.Propagate(0); conflict != nil {
		t.Fatalf("Propagate() = conflict %v, want nil", conflict)
	}

	for v, want := range map[int]Value{1: True, 2: True, 3: True} {
		if got := a.Get(v); got != want {
			t.Errorf("Get(%d) = %v, want %v", v, got, want)
		}
	}
	if g.Node(3).Antecedent == nil {
		t.Errorf("Node(3).Antecedent = nil, want the forcing clause")
	}
}

func TestPropagator_detectsConflict(t *testing.T) {
	f := NewFormula(1, [][]Literal{{1}, {-1}})
	a := NewAssignment(1)
	g := NewGraph(1)
	p := NewPropagator(f, a, g)

	conflict := p.Propagate(0)
	if conflict == nil {
		t.Fatalf("Propagate() = nil, want a conflicting clause")
	}
}

func TestPropagator_fixpointWithNoUnits(t *testing.T) {
	f := NewFormula(2, [][]Literal{{1, 2}})
	a := NewAssignment(2)
	g := NewGraph(2)
	p := NewPropagator(f, a, g)

	if conflict := p.Propagate(0); conflict != nil {
		t.Fatalf("Propagate() = conflict %v, want nil", conflict)
	}
	if a.Get(1) != Unassigned || a.Get(2) != Unassigned {
		t.Errorf("Propagate() assigned variables with no unit clause present")
	}
}
