package cdcl

import (
	"math/rand"
	"testing"
)

func TestRandomHeuristic_selectsOnlyUnassigned(t *testing.T) {
	f := NewFormula(3, [][]Literal{{1, 2, 3}})
	a := NewAssignment(3)
	a.Set(1, True)

	rng := rand.New(rand.NewSource(1))
	h := RandomHeuristic{}
	h.Preprocess(f, a)

	for i := 0; i < 20; i++ {
		d := h.Select(f, a, rng)
		if d.Var == 1 {
			t.Fatalf("Select() returned already-assigned variable 1")
		}
	}
}

func TestUnassignedVars(t *testing.T) {
	f := NewFormula(3, nil)
	a := NewAssignment(3)
	a.Set(2, True)

	got := unassignedVars(f, a)
	want := []int{1, 3}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("unassignedVars() = %v, want %v", got, want)
	}
}
