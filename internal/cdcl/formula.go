package cdcl

// Formula is the canonical container of original and learned clauses over a
// fixed set of variables (spec §4.A). Original clauses live for the entire
// search; learned clauses are appended by the conflict analyzer and never
// removed.
type Formula struct {
	NumVars int

	Original []*Clause
	Learned  []*Clause

	// Ratio is |clauses| / |variables| captured at parse time, carried over
	// from the original Python implementation's r_value and reported on
	// Result (see SPEC_FULL.md §D.1).
	Ratio float64

	learnedKeys map[string]struct{}
}

// NewFormula builds a Formula from the variable count and clause literals
// produced by the DIMACS parser.
func NewFormula(numVars int, clauseLiterals [][]Literal) *Formula {
	f := &Formula{
		NumVars:     numVars,
		learnedKeys: make(map[string]struct{}),
	}
	f.Original = make([]*Clause, 0, len(clauseLiterals))
	for _, lits := range clauseLiterals {
		f.Original = append(f.Original, newClause(lits, false))
	}
	if numVars > 0 {
		f.Ratio = float64(len(f.Original)) / float64(numVars)
	}
	return f
}

// ForEachActive iterates over every active clause — the union of original
// and learned — calling fn for each. It stops early if fn returns false,
// which the unit-propagation engine uses to short-circuit as soon as it
// finds a conflicting clause.
func (f *Formula) ForEachActive(fn func(c *Clause) bool) {
	for _, c := range f.Original {
		if !fn(c) {
			return
		}
	}
	for _, c := range f.Learned {
		if !fn(c) {
			return
		}
	}
}

// InsertLearned adds a learned clause to the store. It is idempotent: a
// clause whose literal set already exists in the learned set is a no-op,
// and InsertLearned reports false in that case.
func (f *Formula) InsertLearned(c *Clause) bool {
	key := c.key()
	if _, ok := f.learnedKeys[key]; ok {
		return false
	}
	f.learnedKeys[key] = struct{}{}
	c.Learnt = true
	f.Learned = append(f.Learned, c)
	return true
}
