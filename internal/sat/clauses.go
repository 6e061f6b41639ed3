package sat

import "strings"

// Clause is a disjunction of literals. The collection is unordered: nothing
// in the solver depends on literal positions within a clause.
type Clause []Literal

// KnowledgeBase is the conjunction of its clauses. Clause order only decides
// the order in which evaluation visits them, never the result.
type KnowledgeBase []Clause

// Model maps every symbol of a knowledge base to a truth state. A model
// returned for a satisfiable base may keep some symbols Free: their value
// was never forced and either choice preserves satisfiability.
type Model map[string]LBool

// Satisfies reports whether every clause of kb contains at least one literal
// made true by the model. Free symbols satisfy nothing, so a model with Free
// entries satisfies kb only if those symbols are irrelevant to it.
func (m Model) Satisfies(kb KnowledgeBase) bool {
	for _, c := range kb {
		satisfied := false
		for _, l := range c {
			if m[l.Symbol] == Lift(!l.Negated) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

func (c Clause) String() string {
	if len(c) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c[0].String())
	for _, l := range c[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
