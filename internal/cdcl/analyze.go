package cdcl

// Analyzer derives a learned clause and a non-chronological backtrack level
// from a conflicting clause, using the First-UIP scheme (spec §4.E).
type Analyzer struct {
	assign *Assignment
	graph  *Graph
	seen   *ResetSet
}

// NewAnalyzer returns an Analyzer over numVars variables.
func NewAnalyzer(numVars int, a *Assignment, g *Graph) *Analyzer {
	seen := &ResetSet{}
	for v := 0; v <= numVars; v++ {
		seen.Expand()
	}
	return &Analyzer{assign: a, graph: g, seen: seen}
}

// Analyze derives the learned clause and backtrack level for a conflict
// observed at decisionLevel. It returns (nil, -1) when decisionLevel is 0,
// signifying a top-level conflict (the formula is UNSAT).
func (an *Analyzer) Analyze(conflict *Clause, decisionLevel int) (*Clause, int) {
	if decisionLevel == 0 {
		return nil, -1
	}
	an.seen.Clear()

	// Chronological history of variables assigned at decisionLevel: the
	// decision variable first, then every propagated variable in the order
	// it was forced.
	history := make([]int, 0, 8)
	if v, ok := an.assign.DecisionAt(decisionLevel); ok {
		history = append(history, v)
	}
	for _, l := range an.assign.PropagatedAt(decisionLevel) {
		history = append(history, l.Var())
	}

	pool := append([]Literal(nil), conflict.Literals...)
	current := make(map[Literal]struct{})
	previous := make(map[Literal]struct{})

	for {
		for _, l := range pool {
			if an.graph.Node(l.Var()).Level == decisionLevel {
				current[l] = struct{}{}
			} else {
				previous[l] = struct{}{}
			}
		}

		if len(current) == 1 {
			break
		}

		latestVar, latestLit, found := latestAssigned(history, current)
		if !found {
			panic("cdcl: conflict analysis could not find a latest-assigned variable")
		}
		delete(current, latestLit)
		an.seen.Add(latestVar)

		ante := an.graph.Node(latestVar).Antecedent
		pool = pool[:0]
		if ante != nil {
			for _, l := range ante.Literals {
				if !an.seen.Contains(l.Var()) {
					pool = append(pool, l)
				}
			}
		}
	}

	lits := make([]Literal, 0, len(current)+len(previous))
	maxPrevLevel := -1
	for l := range current {
		lits = append(lits, l)
	}
	for l := range previous {
		lits = append(lits, l)
		if lvl := an.graph.Node(l.Var()).Level; lvl > maxPrevLevel {
			maxPrevLevel = lvl
		}
	}

	backtrackLevel := decisionLevel - 1
	if maxPrevLevel >= 0 {
		backtrackLevel = maxPrevLevel
	}

	return newClause(lits, true), backtrackLevel
}

// latestAssigned scans history in reverse for the last variable whose
// literal (either polarity) is present in current.
func latestAssigned(history []int, current map[Literal]struct{}) (v int, lit Literal, found bool) {
	for i := len(history) - 1; i >= 0; i-- {
		cand := history[i]
		if _, ok := current[Literal(cand)]; ok {
			return cand, Literal(cand), true
		}
		if _, ok := current[Literal(-cand)]; ok {
			return cand, Literal(-cand), true
		}
	}
	return 0, 0, false
}
