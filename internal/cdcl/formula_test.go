package cdcl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewFormula(t *testing.T) {
	f := NewFormula(3, [][]Literal{
		{1, 2, 2, -1}, // duplicate 2, both polarities of 1
		{3},
	})

	if f.NumVars != 3 {
		t.Errorf("NumVars = %d, want 3", f.NumVars)
	}
	if len(f.Original) != 2 {
		t.Fatalf("len(Original) = %d, want 2", len(f.Original))
	}
	if diff := cmp.Diff([]Literal{-1, 1, 2}, f.Original[0].Literals); diff != "" {
		t.Errorf("Original[0].Literals mismatch (-want +got):\n%s", diff)
	}
	if got, want := f.Ratio, 2.0/3.0; got != want {
		t.Errorf("Ratio = %v, want %v", got, want)
	}
}

func TestFormula_ForEachActive_stopsEarly(t *testing.T) {
	f := NewFormula(2, [][]Literal{{1}, {2}, {-1, -2}})

	var seen []Literal
	f.ForEachActive(func(c *Clause) bool {
		seen = append(seen, c.Literals[0])
		return len(seen) < 2
	})

	if len(seen) != 2 {
		t.Fatalf("ForEachActive visited %d clauses, want 2", len(seen))
	}
}

func TestFormula_InsertLearned_dedups(t *testing.T) {
	f := NewFormula(3, nil)

	ok1 := f.InsertLearned(newClause([]Literal{1, -2}, true))
	ok2 := f.InsertLearned(newClause([]Literal{-2, 1}, true)) // same set, different order

	if !ok1 {
		t.Errorf("first InsertLearned returned false, want true")
	}
	if ok2 {
		t.Errorf("second InsertLearned returned true, want false (duplicate)")
	}
	if len(f.Learned) != 1 {
		t.Errorf("len(Learned) = %d, want 1", len(f.Learned))
	}
}
