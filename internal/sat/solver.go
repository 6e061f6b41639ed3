package sat

import (
	"sort"

	"github.com/kr/pretty"
)

const verbose = false

// Solver decides satisfiability of one knowledge base with a recursive
// DPLL search. The assignment slice and the symbol order are shared by the
// whole search tree and mutated in place; correctness relies on every failed
// branch restoring what it committed before the failure propagates.
type Solver struct {
	symbols []string       // interned symbol table, lexicographic
	ids     map[string]int // symbol name -> index in symbols
	clauses [][]lit
	assigns []LBool // one entry per symbol, indexed like symbols
	order   *varOrder

	// Search statistics.
	Decisions  int64
	Backtracks int64
}

// NewSolver interns kb's symbols and clauses and builds the branching order.
// Symbols are interned in lexicographic order, so ranking ties break the
// same way however the clauses of a base are arranged. Clauses are taken
// exactly as given: duplicate or opposing literals within a clause are left
// alone and the occurrence counts see them all.
func NewSolver(kb KnowledgeBase) *Solver {
	seen := map[string]struct{}{}
	names := []string{}
	for _, c := range kb {
		for _, l := range c {
			if _, ok := seen[l.Symbol]; !ok {
				seen[l.Symbol] = struct{}{}
				names = append(names, l.Symbol)
			}
		}
	}
	sort.Strings(names)

	s := &Solver{
		symbols: names,
		ids:     make(map[string]int, len(names)),
		clauses: make([][]lit, len(kb)),
		assigns: make([]LBool, len(names)),
	}
	for i, name := range names {
		s.ids[name] = i
	}
	for i, c := range kb {
		interned := make([]lit, len(c))
		for j, l := range c {
			if l.Negated {
				interned[j] = negativeLit(s.ids[l.Symbol])
			} else {
				interned[j] = positiveLit(s.ids[l.Symbol])
			}
		}
		s.clauses[i] = interned
	}
	s.order = newVarOrder(s.clauses, len(names))
	return s
}

// Solve reports whether kb is satisfiable, together with the model the
// search ended on. For an unsatisfiable base every symbol of the model is
// Free: each exhausted branch restored its symbol on the way out. For a
// satisfiable base, symbols left Free were never forced and may take either
// value.
func Solve(kb KnowledgeBase) (bool, Model) {
	s := NewSolver(kb)
	return s.Solve(), s.Model()
}

// Solve runs the search and reports whether the base is satisfiable. An
// empty base has no clause to violate and is trivially satisfiable.
func (s *Solver) Solve() bool {
	return s.dpll(s.clauses)
}

// Model returns the current truth state of every symbol in the base.
func (s *Solver) Model() Model {
	m := make(Model, len(s.symbols))
	for i, name := range s.symbols {
		m[name] = s.assigns[i]
	}
	return m
}

// NumSymbols returns the number of distinct symbols in the base.
func (s *Solver) NumSymbols() int {
	return len(s.symbols)
}

// dpll decides whether the given clauses can be satisfied by extending the
// current assignments. Each invocation evaluates its full clause list: any
// falsified clause fails the node immediately, satisfied clauses are
// dropped, and the node succeeds only when nothing is left pending. The
// scan never stops early on a satisfied prefix, since a clause further down
// the list may already be falsified.
//
// Otherwise the node branches: the highest-ranked remaining symbol is
// committed to True and the pending subset searched, then to False on
// failure. If both branches fail, the symbol is restored to Free and
// reinserted at its original priority so outer frames can still branch on
// it, and the failure propagates. An empty order with clauses still pending
// means this path is exhausted.
func (s *Solver) dpll(clauses [][]lit) bool {
	pending := make([][]lit, 0, len(clauses))
	for _, c := range clauses {
		switch s.evaluate(c) {
		case False:
			return false
		case Free:
			pending = append(pending, c)
		}
	}
	if len(pending) == 0 {
		return true
	}

	v, ok := s.order.pop()
	if !ok {
		return false
	}
	s.Decisions++
	if verbose {
		pretty.Println("branching on", s.symbols[v], s.assigns)
	}

	s.assigns[v] = True
	if s.dpll(pending) {
		return true
	}
	s.Backtracks++

	s.assigns[v] = False
	if s.dpll(pending) {
		return true
	}
	s.Backtracks++

	s.assigns[v] = Free
	s.order.reinsert(v)
	return false
}
