package examplegrammar

import (
	"fmt"

	"github.com/nestordemeure/gambit/grammar"
)

// Prime derives an integer polynomial in x and scores it by how many
// consecutive integers starting at x=0 it maps to a prime (or to 1) before
// either repeating a value or producing a composite, rewarding formulas that
// behave like a prime-generating polynomial.
type Prime struct{}

const (
	primeExpr = "expr"
	primeBit  = "bit"
	primeNum  = "number"
)

func (Prime) RootState() string { return primeExpr }

func (Prime) Expand(s string) [][]string {
	switch s {
	case primeExpr:
		return [][]string{
			{"x"},
			{primeNum},
			{"+", primeExpr, primeExpr},
			{"*", primeExpr, primeExpr},
		}
	case primeBit:
		return [][]string{{"0"}, {"1"}}
	case primeNum:
		return [][]string{
			{primeBit, primeBit, primeBit, primeBit, primeBit, "#"},
			{"~", primeBit, primeBit, primeBit, primeBit, primeBit, "#"},
		}
	default:
		return nil
	}
}

// primeBitRunLength is how many bits precede primeNum's "#" terminator.
const primeBitRunLength = 5

// primeInterpretBits reads the fixed-length run of "0"/"1" tokens starting
// at the tail of f (most significant bit first) followed by their "#"
// terminator, into a strictly positive integer.
func primeInterpretBits(f grammar.Formula[string]) (int64, grammar.Formula[string]) {
	rest := f
	var result int64
	for i := 0; i < primeBitRunLength; i++ {
		bit := rest[len(rest)-1]
		rest = rest[:len(rest)-1]
		switch bit {
		case "0":
			result *= 2
		case "1":
			result = result*2 + 1
		default:
			panic("examplegrammar: expected a bit token in Prime formula, got " + bit)
		}
	}
	if rest[len(rest)-1] != "#" {
		panic("examplegrammar: expected a terminated bit run in Prime formula")
	}
	return 1 + result, rest[:len(rest)-1]
}

func primeRenderRec(f grammar.Formula[string]) (string, grammar.Formula[string]) {
	last := f[len(f)-1]
	rest := f[:len(f)-1]

	switch last {
	case "x":
		return "x", rest
	case "~":
		x, rest := primeRenderRec(rest)
		return fmt.Sprintf("-%s", x), rest
	case "+":
		x, rest := primeRenderRec(rest)
		y, rest := primeRenderRec(rest)
		return fmt.Sprintf("%s + %s", x, y), rest
	case "*":
		x, rest := primeRenderRec(rest)
		y, rest := primeRenderRec(rest)
		return fmt.Sprintf("(%s) * (%s)", x, y), rest
	case "0", "1":
		n, rest := primeInterpretBits(f)
		return fmt.Sprintf("%d", n), rest
	default:
		panic("examplegrammar: non-terminal state in Prime formula: " + last)
	}
}

func (Prime) Render(f grammar.Formula[string]) string {
	s, rest := primeRenderRec(f)
	if len(rest) != 0 {
		panic("examplegrammar: leftover states rendering a Prime formula")
	}
	return s
}

func primeInterpretRec(f grammar.Formula[string]) (func(int64) int64, grammar.Formula[string]) {
	last := f[len(f)-1]
	rest := f[:len(f)-1]

	switch last {
	case "x":
		return func(x int64) int64 { return x }, rest
	case "~":
		fx, rest := primeInterpretRec(rest)
		return func(x int64) int64 { return -fx(x) }, rest
	case "+":
		fx, rest := primeInterpretRec(rest)
		fy, rest := primeInterpretRec(rest)
		return func(x int64) int64 { return fx(x) + fy(x) }, rest
	case "*":
		fx, rest := primeInterpretRec(rest)
		fy, rest := primeInterpretRec(rest)
		return func(x int64) int64 { return fx(x) * fy(x) }, rest
	case "0", "1":
		n, rest := primeInterpretBits(f)
		return func(int64) int64 { return n }, rest
	default:
		panic("examplegrammar: non-terminal state in Prime formula: " + last)
	}
}

func (Prime) Evaluate(f grammar.Formula[string]) float64 {
	polynomial, rest := primeInterpretRec(f)
	if len(rest) != 0 {
		panic("examplegrammar: leftover states evaluating a Prime formula")
	}

	var x int64
	previousY := int64(0)
	y := polynomial(0)
	steps := int64(0)
	for y != previousY && isPrimeOrOne(y) {
		x++
		previousY = y
		y = polynomial(x)
		steps++
		if steps > 10_000 {
			break
		}
	}
	return float64(x)
}

func (Prime) Cost(f grammar.Formula[string]) int {
	return grammar.DefaultCost(f)
}

func isPrimeOrOne(n int64) bool {
	if n < 0 {
		n = -n
	}
	if n == 1 {
		return true
	}
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
