package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Roiman/DPLL-Example/internal/sat"
	"github.com/Roiman/DPLL-Example/parsers"
)

// This test suite runs the solver against the DIMACS instances in testdata.
// The expected result is encoded in the file name: instances ending in
// "_sat.cnf" are satisfiable, instances ending in "_unsat.cnf" are not.
//
// Witnesses are re-verified against the clauses rather than compared to a
// stored model: an instance may have several satisfying assignments and the
// solver does not promise a canonical one.
func TestSolveFixtures(t *testing.T) {
	files, err := filepath.Glob("testdata/*.cnf")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no fixture instances found")
	}

	for _, file := range files {
		file := file
		t.Run(filepath.Base(file), func(t *testing.T) {
			t.Parallel()

			wantSat := strings.HasSuffix(file, "_sat.cnf")
			if !wantSat && !strings.HasSuffix(file, "_unsat.cnf") {
				t.Fatalf("fixture %q does not encode an expected result", file)
			}

			kb, err := parsers.LoadDIMACS(file, false)
			if err != nil {
				t.Fatalf("could not parse instance: %s", err)
			}

			gotSat, model := sat.Solve(kb)

			if gotSat != wantSat {
				t.Fatalf("Solve() = %v, want %v", gotSat, wantSat)
			}
			if gotSat && !model.Satisfies(kb) {
				t.Errorf("returned model does not satisfy the instance: %v", model)
			}
			if !gotSat {
				for name, v := range model {
					if v != sat.Free {
						t.Errorf("unsatisfiable instance left %s=%s", name, v)
					}
				}
			}
		})
	}
}

func TestModelLine(t *testing.T) {
	m := sat.Model{"x1": sat.True, "x2": sat.False, "x3": sat.Free}
	want := "x1 -x2 x3 0"

	if got := modelLine(m); got != want {
		t.Errorf("modelLine() = %q, want %q", got, want)
	}
}
