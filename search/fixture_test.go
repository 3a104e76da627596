package search_test

import (
	"strings"

	"github.com/nestordemeure/gambit/grammar"
)

// degenerateGrammar derives formulas over the rule E -> "1" | E E "+",
// scoring a completed formula by how many "1" terminals it contains. The
// work stack emits "+" ahead of both operands, so a formula reads with its
// operator first (e.g. "+ 1 1"). Rule 0 is always the terminating
// alternative.
type degenerateGrammar struct{}

const (
	stateE    = "E"
	stateOne  = "1"
	statePlus = "+"
)

func (degenerateGrammar) RootState() string { return stateE }

func (degenerateGrammar) Expand(s string) [][]string {
	if s != stateE {
		return nil
	}
	return [][]string{
		{stateOne},
		{stateE, stateE, statePlus},
	}
}

func (degenerateGrammar) Render(f grammar.Formula[string]) string {
	return strings.Join(f, " ")
}

func (degenerateGrammar) Evaluate(f grammar.Formula[string]) float64 {
	count := 0.0
	for _, s := range f {
		if s == stateOne {
			count++
		}
	}
	return count
}

func (degenerateGrammar) Cost(f grammar.Formula[string]) int {
	return grammar.DefaultCost(f)
}

// fakeMemoryProbe reports a fixed, then falling, sequence of free-memory
// readings so tests can deterministically drive MemoryLimited across its
// growing/memory-scarce transition.
type fakeMemoryProbe struct {
	readings []uint64
	calls    int
}

func (p *fakeMemoryProbe) FreeMemoryMB() uint64 {
	if p.calls >= len(p.readings) {
		return p.readings[len(p.readings)-1]
	}
	v := p.readings[p.calls]
	p.calls++
	return v
}
