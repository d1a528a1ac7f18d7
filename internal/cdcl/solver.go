package cdcl

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Status is the solver's verdict.
type Status int

const (
	Unsat Status = iota
	Sat
)

func (s Status) String() string {
	if s == Sat {
		return "SAT"
	}
	return "UNSAT"
}

// Result is the full record the search driver produces (spec §6): enough to
// report SAT/UNSAT plus the decision count on stdout, and everything else
// the CLI logs for debugging.
type Result struct {
	Status    Status
	Decisions int64
	Elapsed   time.Duration
	Ratio     float64

	// assignment holds the final values when Status == Sat; nil otherwise.
	assignment []Value
}

// Assignment renders the model as signed variable ids in variable-id
// iteration order — positive for TRUE, negated for FALSE — matching the
// original implementation's result rendering (SPEC_FULL.md §D.3). It is nil
// when Status == Unsat.
func (r *Result) Assignment() []int {
	if r.assignment == nil {
		return nil
	}
	out := make([]int, 0, len(r.assignment)-1)
	for v := 1; v < len(r.assignment); v++ {
		if r.assignment[v] == True {
			out = append(out, v)
		} else {
			out = append(out, -v)
		}
	}
	return out
}

// Solver is the CDCL search driver (spec §4.G): single-threaded, synchronous,
// owns every mutable piece of state (formula, assignment, implication graph,
// trail, heuristic) and mutates it only from Solve.
type Solver struct {
	formula *Formula
	assign  *Assignment
	graph   *Graph
	prop    *Propagator
	analyze *Analyzer
	backtr  *Backtracker

	heuristic Heuristic
	rng       *rand.Rand

	decisionLevel int
	decisions     int64

	log *logrus.Entry
}

// New returns a Solver over formula, driven by heuristic and seeded PRNG
// seed (spec §4.H "Determinism": a single seeded source shared by every
// random draw a heuristic makes).
func New(formula *Formula, heuristic Heuristic, seed int64, log *logrus.Entry) *Solver {
	assign := NewAssignment(formula.NumVars)
	graph := NewGraph(formula.NumVars)

	if log == nil {
		log = logrus.NewEntry(logrus.New())
	}

	return &Solver{
		formula:   formula,
		assign:    assign,
		graph:     graph,
		prop:      NewPropagator(formula, assign, graph),
		analyze:   NewAnalyzer(formula.NumVars, assign, graph),
		backtr:    NewBacktracker(formula.NumVars, assign, graph),
		heuristic: heuristic,
		rng:       rand.New(rand.NewSource(seed)),
		log:       log,
	}
}

// Solve runs the CDCL loop to completion and returns the full record.
func (s *Solver) Solve() *Result {
	start := time.Now()
	s.heuristic.Preprocess(s.formula, s.assign)

	for {
		if s.assign.IsTotal() {
			return s.finish(Sat, start)
		}

		if conflict := s.prop.Propagate(s.decisionLevel); conflict != nil {
			learned, backtrackLevel := s.analyze.Analyze(conflict, s.decisionLevel)
			if backtrackLevel < 0 {
				return s.finish(Unsat, start)
			}

			s.log.WithFields(logrus.Fields{
				"level":     s.decisionLevel,
				"decisions": s.decisions,
				"learnt":    learned.String(),
				"backtrack": backtrackLevel,
			}).Debug("conflict")

			s.applyBacktrack(backtrackLevel)
			s.insertLearned(learned)
			// Do not immediately re-enter propagation here: the next loop
			// iteration does that (spec §4.G step 2).
			continue
		}

		// Propagation may have assigned the last unassigned variables.
		if s.assign.IsTotal() {
			return s.finish(Sat, start)
		}

		s.decisions++
		s.decisionLevel++

		d := s.heuristic.Select(s.formula, s.assign, s.rng)
		s.assign.RecordDecision(s.decisionLevel, d.Var)
		s.assign.Set(d.Var, d.Value)
		s.heuristic.OnAssign(d.Var)
		s.graph.Assign(d.Var, d.Value, s.decisionLevel, nil)

		s.log.WithFields(logrus.Fields{
			"level":     s.decisionLevel,
			"decisions": s.decisions,
			"var":       d.Var,
			"value":     d.Value.String(),
		}).Debug("decision")
	}
}

func (s *Solver) applyBacktrack(level int) {
	for v := 1; v <= s.formula.NumVars; v++ {
		if s.graph.Node(v).Level > level && s.assign.Get(v) != Unassigned {
			s.heuristic.OnUnassign(v)
		}
	}
	s.backtr.Backtrack(level)
	s.decisionLevel = level
}

func (s *Solver) insertLearned(c *Clause) {
	s.formula.InsertLearned(c)
}

func (s *Solver) finish(status Status, start time.Time) *Result {
	r := &Result{
		Status:    status,
		Decisions: s.decisions,
		Elapsed:   time.Since(start),
		Ratio:     s.formula.Ratio,
	}
	if status == Sat {
		values := make([]Value, len(s.assign.values))
		copy(values, s.assign.values)
		r.assignment = values
	}

	s.log.WithFields(logrus.Fields{
		"status":    status.String(),
		"decisions": s.decisions,
		"elapsed":   r.Elapsed,
		"ratio":     r.Ratio,
	}).Debug("solve complete")

	return r
}
