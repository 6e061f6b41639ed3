package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/Roiman/DPLL-Example/internal/sat"
	"github.com/Roiman/DPLL-Example/parsers"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagGzip = flag.Bool(
	"gzip",
	false,
	"treat the instance file as gzip-compressed",
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		gzipped:      *flagGzip,
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
	}, nil
}

type config struct {
	instanceFile string
	gzipped      bool
	memProfile   bool
	cpuProfile   bool
}

// Exit codes follow the SAT competition convention.
const (
	exitSat   = 10
	exitUnsat = 20
)

func run(cfg *config) (int, error) {
	kb, err := parsers.LoadDIMACS(cfg.instanceFile, cfg.gzipped)
	if err != nil {
		return 0, fmt.Errorf("could not parse instance: %s", err)
	}

	s := sat.NewSolver(kb)

	fmt.Printf("c clauses:    %d\n", len(kb))
	fmt.Printf("c symbols:    %d\n", s.NumSymbols())

	t := time.Now()
	satisfiable := s.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c decisions:  %d\n", s.Decisions)
	fmt.Printf("c backtracks: %d\n", s.Backtracks)

	if !satisfiable {
		fmt.Println("s UNSATISFIABLE")
		return exitUnsat, nil
	}

	model := s.Model()
	if !model.Satisfies(kb) {
		return 0, fmt.Errorf("internal error: model does not satisfy the instance")
	}
	fmt.Println("s SATISFIABLE")
	fmt.Println("v " + modelLine(model))
	return exitSat, nil
}

// modelLine renders the model as one witness line. Free symbols are reported
// positive: their value was never forced and either choice satisfies the
// instance.
func modelLine(m sat.Model) string {
	symbols := make([]string, 0, len(m))
	for name := range m {
		symbols = append(symbols, name)
	}
	sort.Strings(symbols)

	parts := make([]string, 0, len(symbols)+1)
	for _, name := range symbols {
		if m[name] == sat.False {
			parts = append(parts, "-"+name)
		} else {
			parts = append(parts, name)
		}
	}
	parts = append(parts, "0")
	return strings.Join(parts, " ")
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
	}

	code, err := run(cfg)

	if cfg.cpuProfile {
		pprof.StopCPUProfile()
	}
	if err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	os.Exit(code)
}
