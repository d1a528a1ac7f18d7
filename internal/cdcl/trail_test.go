package cdcl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssignment_SetGetUnset(t *testing.T) {
	a := NewAssignment(2)

	if got := a.Get(1); got != Unassigned {
		t.Errorf("Get(1) = %v before Set, want Unassigned", got)
	}

	a.Set(1, True)
	if got := a.Get(1); got != True {
		t.Errorf("Get(1) = %v, want True", got)
	}

	a.Unset(1)
	if got := a.Get(1); got != Unassigned {
		t.Errorf("Get(1) = %v after Unset, want Unassigned", got)
	}
}

func TestAssignment_IsTotal(t *testing.T) {
	a := NewAssignment(2)
	if a.IsTotal() {
		t.Errorf("IsTotal() = true on a fresh assignment, want false")
	}

	a.Set(1, True)
	if a.IsTotal() {
		t.Errorf("IsTotal() = true with one variable still unassigned, want false")
	}

	a.Set(2, False)
	if !a.IsTotal() {
		t.Errorf("IsTotal() = false with every variable assigned, want true")
	}
}

func TestAssignment_DecisionAndPropagationHistory(t *testing.T) {
	a := NewAssignment(3)

	a.RecordDecision(1, 1)
	a.RecordPropagation(1, Literal(2))
	a.RecordPropagation(1, Literal(-3))

	if v, ok := a.DecisionAt(1); !ok || v != 1 {
		t.Errorf("DecisionAt(1) = (%d, %v), want (1, true)", v, ok)
	}
	if diff := cmp.Diff([]Literal{2, -3}, a.PropagatedAt(1)); diff != "" {
		t.Errorf("PropagatedAt(1) mismatch (-want +got):\n%s", diff)
	}
	if _, ok := a.DecisionAt(2); ok {
		t.Errorf("DecisionAt(2) ok = true, want false")
	}
}

func TestAssignment_ForgetAbove(t *testing.T) {
	a := NewAssignment(3)
	a.RecordDecision(1, 1)
	a.RecordDecision(2, 2)
	a.RecordPropagation(2, Literal(3))

	a.ForgetAbove(1)

	if _, ok := a.DecisionAt(1); !ok {
		t.Errorf("DecisionAt(1) missing after ForgetAbove(1), want present")
	}
	if _, ok := a.DecisionAt(2); ok {
		t.Errorf("DecisionAt(2) present after ForgetAbove(1), want gone")
	}
	if got := a.PropagatedAt(2); len(got) != 0 {
		t.Errorf("PropagatedAt(2) = %v after ForgetAbove(1), want empty", got)
	}
}
