package cdcl

// propUnit is a unit clause queued for propagation: the clause that forced
// the assignment, and the literal it forces.
type propUnit struct {
	clause *Clause
	lit    Literal
}

// Propagator is the unit-propagation engine (spec §4.D). It repeatedly
// sweeps every active clause to a fixpoint, applying every unit discovered
// in a sweep before starting the next one.
type Propagator struct {
	formula *Formula
	assign  *Assignment
	graph   *Graph
	queue   *Queue[propUnit]
}

// NewPropagator returns a Propagator over the given formula, assignment and
// implication graph.
func NewPropagator(f *Formula, a *Assignment, g *Graph) *Propagator {
	return &Propagator{
		formula: f,
		assign:  a,
		graph:   g,
		queue:   NewQueue[propUnit](64),
	}
}

// Propagate runs sweeps until a fixpoint is reached (no more units to apply)
// or a clause evaluates to False, which it returns immediately as the
// conflict. level is the decision level new propagations are attributed to.
func (p *Propagator) Propagate(level int) *Clause {
	for {
		p.queue.Clear()

		var conflict *Clause
		p.formula.ForEachActive(func(c *Clause) bool {
			switch EvalClause(p.assign, c) {
			case False:
				conflict = c
				return false
			case Unassigned:
				if lit, ok := unitLiteral(p.assign, c); ok {
					p.queue.Push(propUnit{clause: c, lit: lit})
				}
			}
			return true
		})
		if conflict != nil {
			return conflict
		}
		if p.queue.IsEmpty() {
			return nil
		}

		// Apply every unit discovered by this sweep before starting the
		// next. A unit whose variable was already assigned by an earlier
		// unit in the same drain is left alone: if that leads to a
		// contradiction, the next sweep observes a False clause and reports
		// it (spec §4.D, "tie-breaks and ordering").
		for _, u := range p.queue.Drain() {
			v := u.lit.Var()
			if p.assign.Get(v) != Unassigned {
				continue
			}
			val := Lift(u.lit.IsPositive())
			p.assign.Set(v, val)
			p.assign.RecordPropagation(level, u.lit)
			p.graph.Assign(v, val, level, u.clause)
		}
	}
}
