package cdcl

import "math/rand"

// TwoClauseHeuristic is the static MOMS-style heuristic (spec §4.H.2): each
// variable's score is the number of *original* clauses of initial length 2
// it appears in, computed once in preprocess() and never updated as clauses
// are satisfied — this staticness is intentional (spec §9's design notes)
// and is preserved here even though it would be easy to recompute.
type TwoClauseHeuristic struct {
	order   *scoreOrder
	allZero bool
}

func (h *TwoClauseHeuristic) Preprocess(f *Formula, a *Assignment) {
	scores := make([]float64, f.NumVars+1)
	for _, c := range f.Original {
		if len(c.Literals) != 2 {
			continue
		}
		for i, l := range c.Literals {
			if i == 1 && c.Literals[0].Var() == l.Var() {
				continue // {v, -v} counts once for v.
			}
			scores[l.Var()]++
		}
	}

	h.allZero = true
	for _, s := range scores[1:] {
		if s != 0 {
			h.allZero = false
			break
		}
	}
	h.order = newScoreOrder(scores)
}

func (h *TwoClauseHeuristic) Select(f *Formula, a *Assignment, rng *rand.Rand) Decision {
	if h.allZero {
		return RandomHeuristic{}.Select(f, a, rng)
	}
	v, ok := h.order.selectMax(a, rng)
	if !ok {
		return RandomHeuristic{}.Select(f, a, rng)
	}
	if h.order.scores[v] == 0 {
		// The remaining unassigned variables all have a zero score, even
		// though the global preprocess score table was not all zero — fall
		// back to Random over every unassigned variable, not just the
		// zero-score ones, matching the original Python's per-call check.
		h.order.reinsert(v)
		return RandomHeuristic{}.Select(f, a, rng)
	}
	return Decision{Var: v, Value: randomPolarity(rng)}
}

func (h *TwoClauseHeuristic) OnAssign(int) {}

func (h *TwoClauseHeuristic) OnUnassign(v int) {
	h.order.reinsert(v)
}
