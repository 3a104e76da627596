// Package examplegrammar provides ready-made grammar.Grammar fixtures used by
// the demo CLI and by tests that need a richer grammar than a toy
// single-letter one. They are not part of the search engine itself.
package examplegrammar

import (
	"fmt"
	"math"

	"github.com/nestordemeure/gambit/grammar"
)

// Kepler derives an arithmetic expression of the orbital distance x and
// scores it by how well it predicts a planet's orbital period, recovering
// Kepler's third law (period proportional to distance^1.5) by search. A
// formula that evaluates to NaN or +/-Inf anywhere on the reference data
// produces grammar.None, so the search never rewards an undefined formula.
type Kepler struct{}

const (
	keplerExpr     = "expr"
	keplerBase     = "base"
	keplerFunction = "function"
	keplerOperator = "operator"
	keplerVariable = "variable"
	keplerNumber   = "number"
)

func (Kepler) RootState() string { return keplerExpr }

func (Kepler) Expand(s string) [][]string {
	switch s {
	case keplerExpr:
		return [][]string{
			{keplerBase},
			{keplerFunction, keplerExpr},
			{keplerOperator, keplerExpr, keplerExpr},
		}
	case keplerBase:
		return [][]string{
			{keplerVariable},
			{keplerNumber},
			{"^", keplerVariable, keplerNumber},
		}
	case keplerOperator:
		return [][]string{{"+"}, {"-"}, {"/"}}
	case keplerNumber:
		return [][]string{{"1"}, {"2"}, {"3"}, {"4"}}
	case keplerFunction:
		return [][]string{{"cos"}, {"sin"}, {"log"}, {"sqrt"}}
	default:
		return nil
	}
}

func (Kepler) Render(f grammar.Formula[string]) string {
	s, rest := keplerRenderRec(f)
	if len(rest) != 0 {
		panic("examplegrammar: leftover states rendering a Kepler formula")
	}
	return s
}

func keplerRenderRec(f grammar.Formula[string]) (string, grammar.Formula[string]) {
	last := f[len(f)-1]
	rest := f[:len(f)-1]

	switch last {
	case keplerVariable:
		return "distance", rest
	case "1", "2", "3", "4":
		return last, rest
	case "+", "-", "/", "^":
		x, rest := keplerRenderRec(rest)
		y, rest := keplerRenderRec(rest)
		return fmt.Sprintf("%s %s %s", x, last, y), rest
	case "cos", "sin", "log", "sqrt":
		x, rest := keplerRenderRec(rest)
		return fmt.Sprintf("%s(%s)", last, x), rest
	default:
		panic("examplegrammar: non-terminal state in Kepler formula: " + last)
	}
}

func keplerInterpretRec(f grammar.Formula[string]) (func(float64) float64, grammar.Formula[string]) {
	last := f[len(f)-1]
	rest := f[:len(f)-1]

	switch last {
	case keplerVariable:
		return func(x float64) float64 { return x }, rest
	case "1", "2", "3", "4":
		n := float64(last[0] - '0')
		return func(float64) float64 { return n }, rest
	case "+", "-", "/", "^":
		fx, rest := keplerInterpretRec(rest)
		fy, rest := keplerInterpretRec(rest)
		op := keplerOperatorFunc(last)
		return func(x float64) float64 { return op(fx(x), fy(x)) }, rest
	case "cos", "sin", "log", "sqrt":
		fx, rest := keplerInterpretRec(rest)
		fn := keplerFunctionFunc(last)
		return func(x float64) float64 { return fn(fx(x)) }, rest
	default:
		panic("examplegrammar: non-terminal state in Kepler formula: " + last)
	}
}

func keplerOperatorFunc(op string) func(float64, float64) float64 {
	switch op {
	case "+":
		return func(x, y float64) float64 { return x + y }
	case "-":
		return func(x, y float64) float64 { return x - y }
	case "/":
		return func(x, y float64) float64 { return x / y }
	case "^":
		return math.Pow
	default:
		panic("examplegrammar: not an operator: " + op)
	}
}

func keplerFunctionFunc(fn string) func(float64) float64 {
	switch fn {
	case "cos":
		return math.Cos
	case "sin":
		return math.Sin
	case "log":
		return math.Log
	case "sqrt":
		return math.Sqrt
	default:
		panic("examplegrammar: not a function: " + fn)
	}
}

var keplerDistances = []float64{0.72, 1.0, 1.52, 5.20, 9.53, 19.10}
var keplerPeriods = []float64{0.61, 1.00, 1.84, 11.90, 29.40, 83.50}

func (Kepler) Evaluate(f grammar.Formula[string]) grammar.Optional[float64] {
	fn, rest := keplerInterpretRec(f)
	if len(rest) != 0 {
		panic("examplegrammar: leftover states evaluating a Kepler formula")
	}

	var sumSquaredError float64
	for i, distance := range keplerDistances {
		predicted := fn(distance)
		err := keplerPeriods[i] - predicted
		sumSquaredError += err * err
	}

	if math.IsNaN(sumSquaredError) || math.IsInf(sumSquaredError, 0) {
		return grammar.None[float64]()
	}
	return grammar.Some(-sumSquaredError)
}

func (Kepler) Cost(f grammar.Formula[string]) int {
	return grammar.DefaultCost(f)
}
