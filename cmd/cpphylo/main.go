// Command cpphylo runs either a package-level self-test suite or a
// replay job, per §6's two CLI forms plus a manual-smoke-test supplement.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/phylokit/cpphylo/instance"
	"github.com/phylokit/cpphylo/phylo"
	"github.com/phylokit/cpphylo/realize"
	"github.com/phylokit/cpphylo/replay"
	"github.com/phylokit/cpphylo/search"
	"github.com/phylokit/cpphylo/snapshot"
	"github.com/phylokit/cpphylo/strategy"
)

func main() {
	instancePath := flag.String("instance", "", "run a single instance from this file through search and print the witness")
	flag.Parse()

	switch {
	case *instancePath != "":
		runInstance(*instancePath)
	case flag.NArg() == 1:
		runReplay(flag.Arg(0))
	default:
		runSelfTest()
	}
}

func runInstance(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("cpphylo: %v", err)
	}
	defer f.Close()

	st, ok, err := instance.Load(f)
	if err != nil {
		log.Fatalf("cpphylo: %v", err)
	}
	if !ok {
		log.Fatalf("cpphylo: empty instance file %s", path)
	}

	witness, ok := search.New(st, strategy.NaturalOrder()).Run()
	if !ok {
		fmt.Println("no solution")
		os.Exit(1)
	}
	fmt.Printf("witness: %v\n", witness)
}

func runReplay(reqPath string) {
	f, err := os.Open(reqPath)
	if err != nil {
		log.Fatalf("cpphylo: %v", err)
	}
	req, err := snapshot.LoadReplayRequest(f)
	f.Close()
	if err != nil {
		log.Fatalf("cpphylo: %v", err)
	}

	if err := replay.Run(req.Input, req.Output, req.Characters); err != nil {
		log.Fatalf("cpphylo: %v", err)
	}
}

func runSelfTest() {
	results := []struct {
		name string
		pass bool
	}{
		{"S1", selfTestS1()},
		{"S2", selfTestS2()},
		{"S3", selfTestS3()},
		{"S6", selfTestS6()},
	}

	allPass := true
	for _, r := range results {
		status := "PASS"
		if !r.pass {
			status = "FAIL"
			allPass = false
		}
		fmt.Printf("%s: %s\n", r.name, status)
	}

	if !allPass {
		os.Exit(1)
	}
}

func selfTestS1() bool {
	st := loadLiteral("2 2\n1 0\n0 1\n")
	witness, ok := search.New(st, strategy.NaturalOrder()).Run()

	return ok && intsEqual(witness, []int{0, 1})
}

func selfTestS2() bool {
	st := loadLiteral("3 3\n1 1 0\n1 0 1\n0 1 1\n")
	for _, pair := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
		if _, err := st.CG.Neighbors(pair[0]); err != nil {
			return false
		}
	}
	_, ok := search.New(st, strategy.NaturalOrder()).Run()

	return !ok
}

func selfTestS3() bool {
	st := loadLiteral("3 2\n1 0\n1 1\n0 1\n")
	d := search.New(st, strategy.NaturalOrder())
	_, ok := d.Run()

	return ok
}

func selfTestS6() bool {
	st := loadLiteral("3 2\n1 0\n1 1\n0 1\n")

	afterC0, ok := realize.Realize(st, 0)
	if !ok || afterC0.Operation != 1 {
		return false
	}

	// c0's bridge into D runs through c1; resolving c1 severs it, so the
	// genuine RED->REMOVED step for c0 needs this intervening realize.
	afterC1, ok := realize.Realize(afterC0, 1)
	if !ok {
		return false
	}

	final, ok := realize.Realize(afterC1, 0)

	return ok && final.Operation == 2 && final.M == afterC1.M-1
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func loadLiteral(text string) *phylo.State {
	st, ok, err := instance.Load(strings.NewReader(text))
	if err != nil || !ok {
		log.Fatalf("cpphylo: self-test fixture: %v", err)
	}

	return st
}
