package cdcl

import "math/rand"

// Decision is a branching heuristic's choice of the next variable to assign
// and the polarity to assign it (spec §4.H).
type Decision struct {
	Var   int
	Value Value // True or False, never Unassigned.
}

// Heuristic selects the next decision variable and polarity. preprocess()
// runs once before the search begins and may scan the formula to build
// score tables; select() is called once per decision. OnAssign/OnUnassign
// are engine bookkeeping hooks so heuristics that maintain an index over
// unassigned variables (Two-Clause, Jeroslow-Wang) can keep it in sync with
// backtracking; heuristics that recompute from scratch each call (Random,
// DLIS) ignore them.
type Heuristic interface {
	Preprocess(f *Formula, a *Assignment)
	Select(f *Formula, a *Assignment, rng *rand.Rand) Decision
	OnAssign(v int)
	OnUnassign(v int)
}

// unassignedVars returns every currently Unassigned variable, in variable-id
// order.
func unassignedVars(f *Formula, a *Assignment) []int {
	vars := make([]int, 0, f.NumVars)
	for v := 1; v <= f.NumVars; v++ {
		if a.Get(v) == Unassigned {
			vars = append(vars, v)
		}
	}
	return vars
}

// randomPolarity draws TRUE or FALSE with equal probability.
func randomPolarity(rng *rand.Rand) Value {
	if rng.Intn(2) == 0 {
		return True
	}
	return False
}

// RandomHeuristic selects uniformly among unassigned variables and draws the
// polarity uniformly at random (spec §4.H.1).
type RandomHeuristic struct{}

func (RandomHeuristic) Preprocess(*Formula, *Assignment)   {}
func (RandomHeuristic) OnAssign(int)                       {}
func (RandomHeuristic) OnUnassign(int)                     {}
func (RandomHeuristic) Select(f *Formula, a *Assignment, rng *rand.Rand) Decision {
	vars := unassignedVars(f, a)
	v := vars[rng.Intn(len(vars))]
	return Decision{Var: v, Value: randomPolarity(rng)}
}
