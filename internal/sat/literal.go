package sat

// Literal represents a literal: a propositional symbol or its negation.
// Literals are immutable values. Two literals over the same symbol share
// their identity everywhere except evaluation: maps and sets are always
// keyed by Symbol alone, and the polarity is only consulted when a clause
// is evaluated against a model.
type Literal struct {
	Symbol  string
	Negated bool
}

// Pos returns the literal asserting the given symbol.
func Pos(symbol string) Literal {
	return Literal{Symbol: symbol}
}

// Neg returns the literal negating the given symbol.
func Neg(symbol string) Literal {
	return Literal{Symbol: symbol, Negated: true}
}

// Opposite returns the literal over the same symbol with the inverse
// polarity.
func (l Literal) Opposite() Literal {
	l.Negated = !l.Negated
	return l
}

func (l Literal) String() string {
	if l.Negated {
		return "!" + l.Symbol
	}
	return l.Symbol
}

// lit is a literal interned against a solver's symbol table. The symbol ID
// is stored in the upper bits and the polarity in the least significant bit
// so that a literal and its opposite differ by an xor.
type lit int

func positiveLit(varID int) lit {
	return lit(varID * 2)
}

func negativeLit(varID int) lit {
	return positiveLit(varID).opposite()
}

// varID returns the interned ID of the literal's symbol.
func (l lit) varID() int {
	return int(l) / 2
}

// isPositive returns true if and only if the literal asserts its symbol
// (i.e. does not negate it).
func (l lit) isPositive() bool {
	return l&1 == 0
}

// opposite returns the opposite literal.
func (l lit) opposite() lit {
	return l ^ 1
}
