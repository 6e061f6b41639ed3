package sat

// litValue returns the truth state of an interned literal under the current
// assignments: the state of its symbol if the literal is positive, the
// opposite state if it is negated.
func (s *Solver) litValue(l lit) LBool {
	if l.isPositive() {
		return s.assigns[l.varID()]
	}
	return s.assigns[l.varID()].Opposite()
}

// evaluate returns the three-valued status of one clause under the current
// assignments:
//
//	True  - some literal is already satisfied.
//	False - every symbol in the clause is committed and none satisfies it.
//	Free  - the clause still depends on at least one free symbol.
//
// A free literal never ends the scan early: a later literal of the same
// clause may already be satisfied, which must yield True, not Free. A clause
// with no literals evaluates to False since nothing can satisfy it.
func (s *Solver) evaluate(c []lit) LBool {
	pending := false
	for _, l := range c {
		switch s.litValue(l) {
		case True:
			return True
		case Free:
			pending = true
		}
	}
	if pending {
		return Free
	}
	return False
}
