package searchtree

import (
	"math/rand"

	"github.com/nestordemeure/gambit/grammar"
)

// RandomExpand performs a pure rollout: it derives a complete formula from
// the grammar's root state without allocating any tree structure at all,
// choosing uniformly among a branching state's rules while availableDepth
// remains positive and deterministically taking the first rule (the
// shortest-path convention) once it is exhausted.
func RandomExpand[S comparable, Score any](
	g grammar.Grammar[S, Score],
	rng *rand.Rand,
	availableDepth int64,
) (grammar.Formula[S], Score) {
	stack := newWorkStack[S](g.RootState())
	formula := randomExpand(g, stack, nil, rng, availableDepth)
	return formula, g.Evaluate(formula)
}

// randomExpand drains stack into formula, resolving every branching state it
// meets by random choice (while availableDepth > 0) or by its first rule
// (once exhausted), and returns the completed formula.
func randomExpand[S comparable, Score any](
	g grammar.Grammar[S, Score],
	stack *workStack[S],
	formula grammar.Formula[S],
	rng *rand.Rand,
	availableDepth int64,
) grammar.Formula[S] {
	for {
		state, ok := stack.Pop()
		if !ok {
			return formula
		}

		rules := g.Expand(state)
		switch len(rules) {
		case 0:
			formula = formula.Append(state)
			if stack.Empty() {
				return formula
			}
		case 1:
			stack.PushAll(rules[0])
		default:
			var chosen []S
			if availableDepth > 0 {
				chosen = rules[rng.Intn(len(rules))]
			} else {
				chosen = rules[0]
			}
			availableDepth--
			stack.PushAll(chosen)
		}
	}
}
