package searchtree

import (
	"math"
	"math/rand"

	"github.com/nestordemeure/gambit/distribution"
	"github.com/nestordemeure/gambit/grammar"
	"github.com/nestordemeure/gambit/internal/tools"
)

// NoExpand runs one memory-scarce MCTS iteration: it behaves exactly like
// Expand except that reaching a branching state with no tree node for it
// yet never allocates a Node. Instead it completes the formula with a pure
// RandomExpand rollout, scored and propagated up the tree exactly as a
// grown branch would be, but leaving the tree itself unchanged at that
// point: this is what lets a search keep iterating once memory is tight,
// trading per-iteration tree growth for statistical depth.
//
// balanceFactor scales how deep that rollout is allowed to explore before
// falling back to the shortest-path convention; see BalanceFactor.
func NoExpand[S comparable, Score any, D distribution.Distribution[Score]](
	g grammar.Grammar[S, Score],
	tree *Tree[S, D],
	newDistribution distribution.Factory[Score, D],
	rng *rand.Rand,
	depth int64,
	balanceFactor float64,
) (grammar.Formula[S], Score) {
	stack := newWorkStack[S](g.RootState())
	return noExpand(g, tree, stack, nil, newDistribution, rng, depth, 0, balanceFactor)
}

func noExpand[S comparable, Score any, D distribution.Distribution[Score]](
	g grammar.Grammar[S, Score],
	tree *Tree[S, D],
	stack *workStack[S],
	formula grammar.Formula[S],
	newDistribution distribution.Factory[Score, D],
	rng *rand.Rand,
	depth int64,
	parentNbVisit uint64,
	balanceFactor float64,
) (grammar.Formula[S], Score) {
	if tree.kind == kindDeleted {
		panic("searchtree: NoExpand descended into a deleted node")
	}

	done, nextFormula, _, rules := advanceToDecision(g, stack, formula)
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
			panic("searchtree: NoExpand reached a completed formula on an unexpected tree kind")
		}
		return nextFormula, score
	}

	switch tree.kind {
	case kindKnownLeaf:
		panic("searchtree: grammar expansion is non-deterministic on a known leaf")

	case kindLeaf:
		rolloutDepth := expectedRolloutDepth(balanceFactor, parentNbVisit, depth)
		restFormula := randomExpand(g, stack, nextFormula, rng, rolloutDepth)
		return restFormula, g.Evaluate(restFormula)

	default: // kindNode
		children := tree.Children()
		idx := BestChild[S, Score, D](tree.Distribution(), children, depth, rng)
		if _, ok := stack.Pop(); !ok {
			panic("searchtree: NoExpand descended into a Node with an empty stack")
		}
		stack.PushAll(rules[idx])
		nextFormula, score := noExpand(g, &children[idx], stack, nextFormula, newDistribution, rng, depth-1, tree.Distribution().NbVisit(), balanceFactor)
		tree.Distribution().Update(score)
		return nextFormula, score
	}
}

// expectedRolloutDepth is the depth budget given to a rollout triggered by
// NoExpand at a branching leaf whose parent has been visited parentNbVisit
// times, at tree-descent depth d.
func expectedRolloutDepth(balanceFactor float64, parentNbVisit uint64, d int64) int64 {
	return int64(math.Floor(balanceFactor*tools.Lne(float64(parentNbVisit)))) + d - 1
}

// MeanBranchLength returns the average root-to-KnownLeaf depth across every
// completed formula currently represented in tree. It returns 0 for a tree
// with no completed formula yet.
func MeanBranchLength[S any, D any](tree *Tree[S, D]) float64 {
	sum, count := branchDepths(tree, 0)
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

func branchDepths[S any, D any](t *Tree[S, D], depth int64) (sum int64, count int64) {
	switch t.kind {
	case kindKnownLeaf:
		return depth, 1
	case kindNode:
		for i := range t.children {
			s, c := branchDepths(&t.children[i], depth+1)
			sum += s
			count += c
		}
		return sum, count
	default: // Leaf, Deleted
		return 0, 0
	}
}

// BalanceFactor estimates how much deeper than a single-visit rollout the
// tree's actual branches tend to run, relative to how many iterations have
// been spent growing it. It is the default heuristic NoExpand's rollout
// depth is scaled by; search.MemoryLimited computes it once when it switches
// out of growing mode. search.Nested never leaves growing mode and does not
// use it.
func BalanceFactor[S any, D any](tree *Tree[S, D], nbIterations uint64) float64 {
	return MeanBranchLength(tree) / tools.Lne(float64(nbIterations))
}
