package sat

import "github.com/rhartert/yagh"

// symbolClass partitions symbols by how promising they are to branch on.
// Pure symbols (one polarity across the whole base) come first, then symbols
// that appear in a unit clause, then everything else. A symbol that is both
// pure and in a unit clause counts as pure.
type symbolClass int64

const (
	classPure symbolClass = iota
	classUnit
	classRest
)

// Widths of the fields packed by packCost. They cap a base at 2^20 distinct
// symbols and 2^20-1 clause occurrences per symbol.
const (
	costCountBits = 20
	costVarBits   = 20

	maxOccurrences = 1<<costCountBits - 1
)

// packCost folds the composite branching priority into a single heap cost.
// Lower cost pops first: lower class wins, then higher occurrence count,
// then lower symbol ID. Packing all three makes the heap order total, so the
// branching sequence is fully deterministic.
func packCost(class symbolClass, count int64, varID int) int64 {
	if count > maxOccurrences {
		count = maxOccurrences
	}
	return int64(class)<<(costCountBits+costVarBits) |
		(maxOccurrences-count)<<costVarBits |
		int64(varID)
}

// varOrder ranks the symbols that have not been decided yet. It is built
// once from the original clause set: the pure/unit classification and the
// occurrence counts are branching hints frozen at construction time, not
// live properties maintained as clauses are discharged during search.
type varOrder struct {
	heap  *yagh.IntMap[int64]
	costs []int64
}

// newVarOrder classifies every symbol of the interned clause set in a single
// pass and fills the priority heap. Every symbol gets exactly one entry.
func newVarOrder(clauses [][]lit, nVars int) *varOrder {
	counts := make([]int64, nVars)
	seenPos := make([]bool, nVars)
	seenNeg := make([]bool, nVars)
	inUnit := make([]bool, nVars)

	for _, c := range clauses {
		for _, l := range c {
			v := l.varID()
			counts[v]++
			if l.isPositive() {
				seenPos[v] = true
			} else {
				seenNeg[v] = true
			}
			if len(c) == 1 {
				inUnit[v] = true
			}
		}
	}

	vo := &varOrder{
		heap:  yagh.New[int64](nVars),
		costs: make([]int64, nVars),
	}
	for v := 0; v < nVars; v++ {
		class := classRest
		switch {
		case !(seenPos[v] && seenNeg[v]):
			class = classPure
		case inUnit[v]:
			class = classUnit
		}
		vo.costs[v] = packCost(class, counts[v], v)
		vo.heap.Put(v, vo.costs[v])
	}
	return vo
}

// pop removes and returns the highest-priority undecided symbol.
func (vo *varOrder) pop() (int, bool) {
	entry, ok := vo.heap.Pop()
	if !ok {
		return 0, false
	}
	return entry.Elem, true
}

// reinsert puts a symbol back at its original priority. This is how a symbol
// on which both branches failed is handed back to the outer search frames.
func (vo *varOrder) reinsert(varID int) {
	vo.heap.Put(varID, vo.costs[varID])
}

// contains returns true if the symbol has not been popped (or has been
// reinserted since).
func (vo *varOrder) contains(varID int) bool {
	return vo.heap.Contains(varID)
}
