package cdcl

import "math/rand"

// DLISHeuristic is the Dynamic Largest Individual Sum heuristic (spec
// §4.H.3). It has no preprocessing: at every decision it rescans the
// currently unresolved clauses, so — unlike Two-Clause and Jeroslow-Wang —
// there is no static score table to index with a heap.
type DLISHeuristic struct{}

func (DLISHeuristic) Preprocess(*Formula, *Assignment) {}
func (DLISHeuristic) OnAssign(int)                     {}
func (DLISHeuristic) OnUnassign(int)                   {}

func (DLISHeuristic) Select(f *Formula, a *Assignment, rng *rand.Rand) Decision {
	pos := make(map[int]int)
	neg := make(map[int]int)
	for _, v := range unassignedVars(f, a) {
		pos[v] = 0
		neg[v] = 0
	}

	f.ForEachActive(func(c *Clause) bool {
		if EvalClause(a, c) != Unassigned {
			return true
		}
		for _, l := range c.Literals {
			v := l.Var()
			if a.Get(v) != Unassigned {
				continue
			}
			if l.IsPositive() {
				pos[v]++
			} else {
				neg[v]++
			}
		}
		return true
	})

	bestPosVar, bestPosCount := argMax(f, a, pos)
	bestNegVar, bestNegCount := argMax(f, a, neg)

	if bestPosCount > bestNegCount {
		return Decision{Var: bestPosVar, Value: True}
	}
	return Decision{Var: bestNegVar, Value: False}
}

// argMax returns the unassigned variable with the largest count, breaking
// ties by the lowest variable id — the first one encountered when scanning
// in variable-id order, matching Python's dict-iteration-order tie-break in
// the original implementation this heuristic is grounded on.
func argMax(f *Formula, a *Assignment, counts map[int]int) (int, int) {
	bestVar, bestCount := 0, -1
	for v := 1; v <= f.NumVars; v++ {
		c, ok := counts[v]
		if !ok {
			continue
		}
		if c > bestCount {
			bestVar, bestCount = v, c
		}
	}
	return bestVar, bestCount
}
