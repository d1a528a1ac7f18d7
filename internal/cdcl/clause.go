package cdcl

import (
	"sort"
	"strconv"
	"strings"
)

// Clause is a finite set of literals with no duplicates. The empty clause
// evaluates to False (see EvalClause); the parser never constructs one.
type Clause struct {
	Literals []Literal
	Learnt   bool
}

// newClause builds a Clause from lits, deduplicating and canonically sorting
// its literals so that two clauses containing the same set of literals
// always compare equal via Clause.key, regardless of the order they were
// discovered in.
func newClause(lits []Literal, learnt bool) *Clause {
	seen := make(map[Literal]struct{}, len(lits))
	uniq := make([]Literal, 0, len(lits))
	for _, l := range lits {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		uniq = append(uniq, l)
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })
	return &Clause{Literals: uniq, Learnt: learnt}
}

// key returns a canonical string representation used to detect duplicate
// clauses on insertion into the learned set (spec: "Clauses must be
// hashable/comparable").
func (c *Clause) key() string {
	var sb strings.Builder
	for i, l := range c.Literals {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(l)))
	}
	return sb.String()
}

func (c *Clause) String() string {
	if len(c.Literals) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, l := range c.Literals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// EvalLiteral is the evaluation of literal l under assignment a: Unassigned
// if its variable is unassigned, otherwise its variable's value XOR its
// polarity (spec §3).
func EvalLiteral(a *Assignment, l Literal) Value {
	v := a.Get(l.Var())
	if v == Unassigned {
		return Unassigned
	}
	if l.IsPositive() {
		return v
	}
	return v.Negate()
}

// EvalClause evaluates c under a: True if any literal is True, False if
// every literal is False, Unassigned otherwise. The empty clause evaluates
// to False — the DIMACS parser never produces one, but NewFormula accepts an
// empty literal slice, and such a formula is then reported as a conflict at
// level 0. Clauses never shrink once created.
func EvalClause(a *Assignment, c *Clause) Value {
	if len(c.Literals) == 0 {
		return False
	}
	sawUnassigned := false
	for _, l := range c.Literals {
		switch EvalLiteral(a, l) {
		case True:
			return True
		case Unassigned:
			sawUnassigned = true
		}
	}
	if sawUnassigned {
		return Unassigned
	}
	return False
}

// unitLiteral reports whether c is a unit clause under a — exactly one
// Unassigned literal and every other literal False — returning that
// literal.
func unitLiteral(a *Assignment, c *Clause) (Literal, bool) {
	var lit Literal
	count := 0
	for _, l := range c.Literals {
		switch EvalLiteral(a, l) {
		case True:
			return 0, false
		case Unassigned:
			count++
			lit = l
			if count > 1 {
				return 0, false
			}
		}
	}
	return lit, count == 1
}
