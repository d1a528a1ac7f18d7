package cdcl

import (
	"math/rand"

	"github.com/rhartert/yagh"
)

// scoreOrder is an index over unassigned variables ordered by a static,
// precomputed score. It is the shared backbone of the Two-Clause and
// Jeroslow-Wang heuristics (spec §4.H.2, §4.H.4), both of which compute
// their scores once in preprocess() and then repeatedly ask "which
// unassigned variable currently has the highest score".
//
// It is adapted from the teacher's VSIDS variable-ordering heap
// (internal/sat/ordering.go): a min-heap keyed on the negated score gives
// the maximum in O(log n). Unlike VSIDS, scores here never change, so the
// only heap traffic is removal on assignment (lazy, via Pop-and-skip) and
// reinsertion on backtrack (OnUnassign).
type scoreOrder struct {
	heap   *yagh.IntMap[float64]
	scores []float64 // indexed by variable id; index 0 unused.
}

// newScoreOrder builds a scoreOrder over the given per-variable scores
// (index 0 unused, indices 1..len(scores)-1 are variable ids).
func newScoreOrder(scores []float64) *scoreOrder {
	h := yagh.New[float64](0)
	h.GrowBy(len(scores))
	so := &scoreOrder{heap: h, scores: scores}
	for v := 1; v < len(scores); v++ {
		h.Put(v, -scores[v])
	}
	return so
}

// reinsert puts v back into the order, e.g. after it was unassigned by a
// backtrack.
func (so *scoreOrder) reinsert(v int) {
	so.heap.Put(v, -so.scores[v])
}

// selectMax pops the set of currently unassigned variables that share the
// single highest score, discarding every already-assigned variable it
// encounters along the way (those are only restored via reinsert), and
// returns one of the tied variables chosen uniformly at random. It reports
// false if no unassigned variable remains in the heap.
func (so *scoreOrder) selectMax(a *Assignment, rng *rand.Rand) (int, bool) {
	var top float64
	var tied []int
	var boundary int
	haveBoundary := false

	for {
		item, ok := so.heap.Pop()
		if !ok {
			break
		}
		v := item.Elem
		if a.Get(v) != Unassigned {
			continue // assigned; only OnUnassign brings it back.
		}
		if len(tied) == 0 {
			top = so.scores[v]
			tied = append(tied, v)
			continue
		}
		if so.scores[v] == top {
			tied = append(tied, v)
			continue
		}
		boundary, haveBoundary = v, true
		break
	}

	if haveBoundary {
		so.heap.Put(boundary, -so.scores[boundary])
	}
	if len(tied) == 0 {
		return 0, false
	}

	winner := tied[rng.Intn(len(tied))]
	for _, v := range tied {
		if v != winner {
			so.heap.Put(v, -so.scores[v])
		}
	}
	return winner, true
}
