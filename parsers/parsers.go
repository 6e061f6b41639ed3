package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rhartert/dimacs"

	"github.com/Roiman/DPLL-Example/internal/sat"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses the DIMACS CNF file and returns its formula as a
// knowledge base. Variable i of the instance becomes symbol "xi".
func LoadDIMACS(filename string, gzipped bool) (sat.KnowledgeBase, error) {
	reader, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer reader.Close()

	b := &builder{}
	if err := dimacs.ReadBuilder(reader, b); err != nil {
		return nil, err
	}
	return b.kb, nil
}

// builder accumulates clauses to implement dimacs.Builder.
type builder struct {
	kb sat.KnowledgeBase
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem")
	}
	b.kb = make(sat.KnowledgeBase, 0, nClauses)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make(sat.Clause, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			clause[i] = sat.Neg(symbolName(-l))
		} else {
			clause[i] = sat.Pos(symbolName(l))
		}
	}
	b.kb = append(b.kb, clause)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

func symbolName(v int) string {
	return "x" + strconv.Itoa(v)
}
