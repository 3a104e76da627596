package examplegrammar

import (
	"fmt"

	"github.com/nestordemeure/gambit/grammar"
)

// Macro2019 derives an arithmetic expression over the literal 1 using only
// addition and multiplication, and scores it by how close it comes to the
// value 2019. A Factor is never allowed to reduce straight to 1, so the
// multiplicative side of the grammar cannot trivially collapse the way the
// additive side can.
type Macro2019 struct{}

const (
	macro2019Expr   = "expr"
	macro2019Factor = "factor"
	macro2019One    = "one"
	macro2019Add    = "add"
	macro2019Mul    = "mul"
)

func (Macro2019) RootState() string { return macro2019Expr }

func (Macro2019) Expand(s string) [][]string {
	switch s {
	case macro2019Expr:
		return [][]string{
			{macro2019One},
			{macro2019Add, macro2019Expr, macro2019Expr},
			{macro2019Mul, macro2019Factor, macro2019Factor},
		}
	case macro2019Factor:
		return [][]string{
			{macro2019Add, macro2019Expr, macro2019Expr},
			{macro2019Mul, macro2019Factor, macro2019Factor},
		}
	default:
		return nil
	}
}

func macro2019RenderRec(f grammar.Formula[string]) (string, grammar.Formula[string]) {
	last := f[len(f)-1]
	rest := f[:len(f)-1]

	switch last {
	case macro2019One:
		return "1", rest
	case macro2019Add:
		x, rest := macro2019RenderRec(rest)
		y, rest := macro2019RenderRec(rest)
		return fmt.Sprintf("%s + %s", x, y), rest
	case macro2019Mul:
		x, rest := macro2019RenderRec(rest)
		y, rest := macro2019RenderRec(rest)
		return fmt.Sprintf("(%s)*(%s)", x, y), rest
	default:
		panic("examplegrammar: non-terminal state in Macro2019 formula: " + last)
	}
}

func (Macro2019) Render(f grammar.Formula[string]) string {
	s, rest := macro2019RenderRec(f)
	if len(rest) != 0 {
		panic("examplegrammar: leftover states rendering a Macro2019 formula")
	}
	return s
}

func macro2019ComputeRec(f grammar.Formula[string]) (int64, grammar.Formula[string]) {
	last := f[len(f)-1]
	rest := f[:len(f)-1]

	switch last {
	case macro2019One:
		return 1, rest
	case macro2019Add:
		x, rest := macro2019ComputeRec(rest)
		y, rest := macro2019ComputeRec(rest)
		return x + y, rest
	case macro2019Mul:
		x, rest := macro2019ComputeRec(rest)
		y, rest := macro2019ComputeRec(rest)
		return x * y, rest
	default:
		panic("examplegrammar: non-terminal state in Macro2019 formula: " + last)
	}
}

// Evaluate scores f by how close it computes to 2019: -|2019 - compute(f)|.
func (Macro2019) Evaluate(f grammar.Formula[string]) float64 {
	value, rest := macro2019ComputeRec(f)
	if len(rest) != 0 {
		panic("examplegrammar: leftover states evaluating a Macro2019 formula")
	}
	diff := 2019 - value
	if diff < 0 {
		diff = -diff
	}
	return -float64(diff)
}

// Cost counts how many literal 1s f took to build, rather than its overall
// length: it is the axis the Pareto front is meant to minimize for this
// grammar, since a formula's raw token count does not distinguish a wide,
// shallow expansion from a deep, literal-heavy one.
func (Macro2019) Cost(f grammar.Formula[string]) int {
	count := 0
	for _, s := range f {
		if s == macro2019One {
			count++
		}
	}
	return count
}
