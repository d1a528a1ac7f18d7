package cdcl

import "math/rand"

// JeroslowWangHeuristic is the static one-sided Jeroslow-Wang heuristic
// (spec §4.H.4): score(v) = sum over clauses containing either polarity of
// v of 2^(-|c|), computed once in preprocess() over the original clauses.
type JeroslowWangHeuristic struct {
	order *scoreOrder
}

func (h *JeroslowWangHeuristic) Preprocess(f *Formula, a *Assignment) {
	scores := make([]float64, f.NumVars+1)
	// scoredIn[v] is one plus the index of the last clause that added to v's
	// score, so a clause holding both v and -v counts once.
	scoredIn := make([]int, f.NumVars+1)
	for i, c := range f.Original {
		weight := jwWeight(len(c.Literals))
		for _, l := range c.Literals {
			if scoredIn[l.Var()] == i+1 {
				continue
			}
			scoredIn[l.Var()] = i + 1
			scores[l.Var()] += weight
		}
	}
	h.order = newScoreOrder(scores)
}

func jwWeight(clauseLen int) float64 {
	w := 1.0
	for i := 0; i < clauseLen; i++ {
		w /= 2
	}
	return w
}

func (h *JeroslowWangHeuristic) Select(f *Formula, a *Assignment, rng *rand.Rand) Decision {
	v, ok := h.order.selectMax(a, rng)
	if !ok {
		// Defensive only: select() is never called once the assignment is
		// total, so the order always holds at least one unassigned
		// variable. A variable absent from every clause still has an entry
		// with score 0 (spec §8's "variable appearing in no clause remains
		// assignable").
		return RandomHeuristic{}.Select(f, a, rng)
	}
	return Decision{Var: v, Value: randomPolarity(rng)}
}

func (h *JeroslowWangHeuristic) OnAssign(int) {}

func (h *JeroslowWangHeuristic) OnUnassign(v int) {
	h.order.reinsert(v)
}
