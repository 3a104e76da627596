package searchtree

import (
	"math/rand"

	"github.com/nestordemeure/gambit/distribution"
	"github.com/nestordemeure/gambit/grammar"
)

// Expand runs one growing MCTS iteration over tree: it descends from the
// root, picking a child at every Node via BestChild, derives states that
// have no tree representation yet through pure grammar reduction, and the
// first time it reaches a branching point with no tree node for it yet,
// allocates a fresh Node with one Leaf child per applicable rule. It
// returns the formula this iteration completed and its score.
//
// tree is mutated in place: D must be a pointer-receiver distribution type
// (as every concrete type in package distribution is) so that updates made
// while descending are visible through the slices stored in ancestor Nodes.
// depth bounds how many Node descents may use genuine arm selection before
// BestChild falls back to its shortest-path convention (index 0); a
// negative or zero depth makes the entire iteration deterministic.
func Expand[S comparable, Score any, D distribution.Distribution[Score]](
	g grammar.Grammar[S, Score],
	tree *Tree[S, D],
	newDistribution distribution.Factory[Score, D],
	rng *rand.Rand,
	depth int64,
) (grammar.Formula[S], Score) {
	stack := newWorkStack[S](g.RootState())
	return expand(g, tree, stack, nil, newDistribution, rng, depth)
}

func expand[S comparable, Score any, D distribution.Distribution[Score]](
	g grammar.Grammar[S, Score],
	tree *Tree[S, D],
	stack *workStack[S],
	formula grammar.Formula[S],
	newDistribution distribution.Factory[Score, D],
	rng *rand.Rand,
	depth int64,
) (grammar.Formula[S], Score) {
	if tree.kind == kindDeleted {
		panic("searchtree: Expand descended into a deleted node")
	}

	done, nextFormula, branchState, rules := advanceToDecision(g, stack, formula)
	if done {
		score := g.Evaluate(nextFormula)
		switch tree.kind {
		case kindLeaf:
			d := newDistribution()
			d.Update(score)
			*tree = KnownLeaf[S, D](d)
		case kindKnownLeaf:
			tree.Distribution().Update(score)
		default:
			panic("searchtree: Expand reached a completed formula on an unexpected tree kind")
		}
		return nextFormula, score
	}

	switch tree.kind {
	case kindKnownLeaf:
		panic("searchtree: grammar expansion is non-deterministic on a known leaf")

	case kindLeaf:
		children := make([]Tree[S, D], len(rules))
		for i := range children {
			children[i] = Leaf[S, D]()
		}
		*tree = NewNode[S, D](branchState, newDistribution(), children)
		return expand(g, tree, stack, nextFormula, newDistribution, rng, depth)

	default: // kindNode
		children := tree.Children()
		idx := BestChild[S, Score, D](tree.Distribution(), children, depth, rng)
		if _, ok := stack.Pop(); !ok {
			panic("searchtree: Expand descended into a Node with an empty stack")
		}
		stack.PushAll(rules[idx])
		nextFormula, score := expand(g, &children[idx], stack, nextFormula, newDistribution, rng, depth-1)
		tree.Distribution().Update(score)
		return nextFormula, score
	}
}

// advanceToDecision pops states off stack, expanding each through the
// grammar and consuming every terminal or singleton-rule state it meets,
// until either the formula is fully derived (done == true) or it reaches a
// state with two or more applicable rules. That decision state is left on
// top of the stack, peeked but not popped: it is the caller's responsibility
// to pop it once it knows what is going to consume it (a freshly grown Node,
// an already-grown Node picking its next child, or a pure rollout), since
// that is the only place the caller can tell whether the state has already
// been accounted for by the tree it is holding.
func advanceToDecision[S comparable, Score any](
	g grammar.Grammar[S, Score],
	stack *workStack[S],
	formula grammar.Formula[S],
) (done bool, nextFormula grammar.Formula[S], decisionState S, decisionRules [][]S) {
	for {
		state, ok := stack.Peek()
		if !ok {
			return true, formula, decisionState, nil
		}

		rules := g.Expand(state)
		switch len(rules) {
		case 0:
			stack.Pop()
			formula = formula.Append(state)
		case 1:
			stack.Pop()
			stack.PushAll(rules[0])
		default:
			return false, formula, state, rules
		}
	}
}
