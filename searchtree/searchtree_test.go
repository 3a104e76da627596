package searchtree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestordemeure/gambit/distribution"
	"github.com/nestordemeure/gambit/searchtree"
)

func newUcbFactory() distribution.Factory[float64, *distribution.UcbTuned] {
	return distribution.NewUcbTuned
}

func TestExpandProducesACompleteFormulaWithMatchingScore(t *testing.T) {
	g := degenerateGrammar{}
	tree := searchtree.Leaf[string, *distribution.UcbTuned]()
	rng := rand.New(rand.NewSource(1))

	formula, score := searchtree.Expand[string, float64, *distribution.UcbTuned](g, &tree, newUcbFactory(), rng, 3)

	for _, s := range formula {
		assert.NotEqual(t, stateE, s)
	}
	assert.Equal(t, g.Evaluate(formula), score)
}

func TestExpandAtZeroDepthAlwaysTakesTheShortestRule(t *testing.T) {
	g := degenerateGrammar{}
	tree := searchtree.Leaf[string, *distribution.UcbTuned]()
	rng := rand.New(rand.NewSource(1))

	formula, score := searchtree.Expand[string, float64, *distribution.UcbTuned](g, &tree, newUcbFactory(), rng, 0)

	require.Equal(t, "1", g.Render(formula))
	assert.Equal(t, 1.0, score)
	assert.True(t, tree.IsNode(), "the root itself branches, so a Node is allocated even at depth zero")
}

func TestExpandRevisitingAKnownLeafIncrementsVisitsDeterministically(t *testing.T) {
	g := degenerateGrammar{}
	tree := searchtree.Leaf[string, *distribution.UcbTuned]()
	rng := rand.New(rand.NewSource(1))

	// Depth zero always descends into rule 0 ("1"), so every iteration
	// revisits the same KnownLeaf once the first has created it.
	_, firstScore := searchtree.Expand[string, float64, *distribution.UcbTuned](g, &tree, newUcbFactory(), rng, 0)
	require.True(t, tree.IsNode())

	_, secondScore := searchtree.Expand[string, float64, *distribution.UcbTuned](g, &tree, newUcbFactory(), rng, 0)
	assert.Equal(t, firstScore, secondScore)
	assert.Equal(t, uint64(2), tree.Children()[0].NbVisit())
}

func TestNoExpandLeavesABranchingLeafUnexpanded(t *testing.T) {
	g := degenerateGrammar{}
	tree := searchtree.Leaf[string, *distribution.UcbTuned]()
	rng := rand.New(rand.NewSource(2))

	formula, score := searchtree.NoExpand[string, float64, *distribution.UcbTuned](g, &tree, newUcbFactory(), rng, 5, 1.0)

	assert.True(t, tree.IsLeaf(), "NoExpand must never allocate a Node at a branching decision")
	assert.Equal(t, g.Evaluate(formula), score)
}

func TestRandomExpandNeverLeavesANonTerminalState(t *testing.T) {
	g := degenerateGrammar{}
	rng := rand.New(rand.NewSource(3))

	formula, score := searchtree.RandomExpand[string, float64](g, rng, 4)

	for _, s := range formula {
		assert.NotEqual(t, stateE, s)
	}
	assert.Equal(t, g.Evaluate(formula), score)
}

func TestRandomExpandFallsBackToShortestRuleOnceDepthIsExhausted(t *testing.T) {
	g := degenerateGrammar{}
	rng := rand.New(rand.NewSource(3))

	formula, _ := searchtree.RandomExpand[string, float64](g, rng, 0)

	assert.Equal(t, "1", g.Render(formula))
}

func TestBestChildAtZeroDepthAlwaysPicksIndexZero(t *testing.T) {
	parent := distribution.NewUcbTuned()
	children := []searchtree.Tree[string, *distribution.UcbTuned]{
		searchtree.Leaf[string, *distribution.UcbTuned](),
		searchtree.Leaf[string, *distribution.UcbTuned](),
	}
	rng := rand.New(rand.NewSource(4))

	idx := searchtree.BestChild[string, float64, *distribution.UcbTuned](parent, children, 0, rng)
	assert.Equal(t, 0, idx)
}

func TestBestChildVisitsEveryLeafBeforeScoring(t *testing.T) {
	parent := distribution.NewUcbTuned()
	parent.Update(1)

	d0 := distribution.NewUcbTuned()
	d0.Update(1)
	children := []searchtree.Tree[string, *distribution.UcbTuned]{
		searchtree.KnownLeaf[string, *distribution.UcbTuned](d0),
		searchtree.Leaf[string, *distribution.UcbTuned](),
		searchtree.Leaf[string, *distribution.UcbTuned](),
	}
	rng := rand.New(rand.NewSource(5))

	seen := map[int]bool{}
	for i := 0; i < 20; i++ {
		idx := searchtree.BestChild[string, float64, *distribution.UcbTuned](parent, children, 2, rng)
		seen[idx] = true
	}
	assert.False(t, seen[0], "the already-scored child must not be picked while unvisited leaves remain")
	assert.True(t, seen[1] || seen[2])
}

func TestPruneKeepsOnlyTheMostVisitedChild(t *testing.T) {
	low := distribution.NewUcbTuned()
	low.Update(1)

	high := distribution.NewUcbTuned()
	high.Update(1)
	high.Update(1)
	high.Update(1)

	children := []searchtree.Tree[string, *distribution.UcbTuned]{
		searchtree.KnownLeaf[string, *distribution.UcbTuned](low),
		searchtree.KnownLeaf[string, *distribution.UcbTuned](high),
		searchtree.Leaf[string, *distribution.UcbTuned](),
	}

	searchtree.Prune[string, *distribution.UcbTuned](children)

	assert.True(t, children[0].IsDeleted())
	assert.False(t, children[1].IsDeleted())
	assert.True(t, children[2].IsDeleted())
}

func TestPrunePanicsWithoutAnyScoredChild(t *testing.T) {
	children := []searchtree.Tree[string, *distribution.UcbTuned]{
		searchtree.Leaf[string, *distribution.UcbTuned](),
	}
	assert.Panics(t, func() {
		searchtree.Prune[string, *distribution.UcbTuned](children)
	})
}

func TestMeanBranchLengthAndBalanceFactor(t *testing.T) {
	g := degenerateGrammar{}
	tree := searchtree.Leaf[string, *distribution.UcbTuned]()
	rng := rand.New(rand.NewSource(6))

	for i := 0; i < 10; i++ {
		searchtree.Expand[string, float64, *distribution.UcbTuned](g, &tree, newUcbFactory(), rng, 4)
	}

	mean := searchtree.MeanBranchLength[string, *distribution.UcbTuned](&tree)
	assert.GreaterOrEqual(t, mean, 0.0)

	bf := searchtree.BalanceFactor[string, *distribution.UcbTuned](&tree, 10)
	assert.GreaterOrEqual(t, bf, 0.0)
}

func TestTreeSizeCountsEveryElement(t *testing.T) {
	d := distribution.NewUcbTuned()
	node := searchtree.NewNode[string, *distribution.UcbTuned]("E", d, []searchtree.Tree[string, *distribution.UcbTuned]{
		searchtree.Leaf[string, *distribution.UcbTuned](),
		searchtree.Leaf[string, *distribution.UcbTuned](),
	})
	assert.Equal(t, 3, node.Size())
}
