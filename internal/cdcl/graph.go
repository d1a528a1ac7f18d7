package cdcl

// Node is the implication graph's per-variable record (spec §3). Its
// identity is stable for the solver's lifetime; only its mutable fields are
// reset on backtrack.
type Node struct {
	Var   int
	Value Value
	// Level is the decision level at which the current value was set, or -1
	// if the variable is Unassigned.
	Level int
	// Antecedent is the clause that propagated this assignment, or nil for
	// decisions and unassigned variables.
	Antecedent *Clause
	Parents    []*Node
	Children   []*Node
}

// Graph is the implication graph: one Node per variable, related by
// parent/child edges that are relations, not ownership — pruning a node's
// children never frees the child node itself.
type Graph struct {
	nodes []*Node // indexed by variable id; index 0 unused.
}

// NewGraph returns a Graph with numVars Unassigned nodes.
func NewGraph(numVars int) *Graph {
	g := &Graph{nodes: make([]*Node, numVars+1)}
	for v := 1; v <= numVars; v++ {
		g.nodes[v] = &Node{Var: v, Level: -1}
	}
	return g
}

// Node returns the stable node for variable v.
func (g *Graph) Node(v int) *Node {
	return g.nodes[v]
}

// Assign sets a newly assigned variable's node fields and links it to the
// parents implied by antecedent (nil for a decision). Parent/child edges are
// appended, never deduplicated eagerly — spec §9 leaves that choice to the
// implementation since Backtrack already filters children by level.
func (g *Graph) Assign(v int, val Value, level int, antecedent *Clause) {
	n := g.nodes[v]
	n.Value = val
	n.Level = level
	n.Antecedent = antecedent

	if antecedent == nil {
		return
	}
	for _, l := range antecedent.Literals {
		pv := l.Var()
		if pv == v {
			continue
		}
		p := g.nodes[pv]
		n.Parents = append(n.Parents, p)
		p.Children = append(p.Children, n)
	}
}

// Reset clears v's node back to its Unassigned shape (spec invariant 1).
func (g *Graph) Reset(v int) {
	n := g.nodes[v]
	n.Value = Unassigned
	n.Level = -1
	n.Antecedent = nil
	n.Parents = nil
	n.Children = nil
}

// PruneChildren filters v's children down to those still at a level no
// greater than maxLevel, in place.
func (g *Graph) PruneChildren(v int, maxLevel int) {
	n := g.nodes[v]
	kept := n.Children[:0]
	for _, c := range n.Children {
		if c.Level != -1 && c.Level <= maxLevel {
			kept = append(kept, c)
		}
	}
	n.Children = kept
}
