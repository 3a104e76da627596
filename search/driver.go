// Package search implements the three top-level search loops the engine
// offers: a fixed-iteration growing search, a memory-limited search that
// switches to rollout-only iterations once free memory runs low, and a
// nested search that instead repeatedly prunes the tree and keeps growing.
package search

import (
	"math/rand"

	"github.com/nestordemeure/gambit/distribution"
	"github.com/nestordemeure/gambit/grammar"
	"github.com/nestordemeure/gambit/result"
	"github.com/nestordemeure/gambit/searchtree"
	"github.com/nestordemeure/gambit/telemetry"
)

// DefaultMemoryLimitedStepSize is how many iterations MemoryLimited runs
// between free-memory samples.
const DefaultMemoryLimitedStepSize = 1000

// DefaultNestedStepSize is how many iterations Nested runs between checks
// of the tree's resident element count.
const DefaultNestedStepSize = 10000

// BalanceFactorFunc computes the rollout-depth scaling factor NoExpand uses,
// from the current tree and how many iterations have grown it so far. The
// default is searchtree.BalanceFactor; a caller may substitute a different
// heuristic.
type BalanceFactorFunc[S any, D any] func(tree *searchtree.Tree[S, D], nbIterations uint64) float64

// Unbounded runs exactly iterations growing MCTS iterations and returns the
// aggregated result.
func Unbounded[S comparable, Score any, D distribution.Distribution[Score], R result.Result[S, Score]](
	g grammar.Grammar[S, Score],
	newDistribution distribution.Factory[Score, D],
	newResult result.Factory[S, Score, R],
	rng *rand.Rand,
	depth int64,
	iterations uint64,
) R {
	tree := searchtree.Leaf[S, D]()
	res := newResult()

	for i := uint64(0); i < iterations; i++ {
		formula, score := searchtree.Expand[S, Score, D](g, &tree, newDistribution, rng, depth)
		res.Update(formula, score)
	}

	telemetry.Logger().Infow("unbounded search finished", "iterations", iterations)
	return res
}

// MemoryLimited runs growing iterations while probe reports more than
// freeMemoryFloorMB of free memory, sampled every stepSize iterations
// (DefaultMemoryLimitedStepSize if stepSize is 0). The first time free
// memory drops at or below the floor, it computes a balance factor once
// (via balanceFactorFn, or searchtree.BalanceFactor if nil) and switches to
// memory-scarce (NoExpand) iterations for the remainder of the run.
func MemoryLimited[S comparable, Score any, D distribution.Distribution[Score], R result.Result[S, Score]](
	g grammar.Grammar[S, Score],
	newDistribution distribution.Factory[Score, D],
	newResult result.Factory[S, Score, R],
	probe MemoryProbe,
	rng *rand.Rand,
	depth int64,
	iterations uint64,
	freeMemoryFloorMB uint64,
	stepSize uint64,
	balanceFactorFn BalanceFactorFunc[S, D],
) R {
	if stepSize == 0 {
		stepSize = DefaultMemoryLimitedStepSize
	}
	if balanceFactorFn == nil {
		balanceFactorFn = searchtree.BalanceFactor[S, D]
	}

	tree := searchtree.Leaf[S, D]()
	res := newResult()

	growing := true
	var balanceFactor float64

	for i := uint64(0); i < iterations; i++ {
		if growing && i%stepSize == 0 {
			free := probe.FreeMemoryMB()
			if free <= freeMemoryFloorMB {
				growing = false
				balanceFactor = balanceFactorFn(&tree, i+1)
				telemetry.Logger().Infow("switching to memory-scarce search",
					"iteration", i, "free_mb", free, "balance_factor", balanceFactor)
			}
		}

		var formula grammar.Formula[S]
		var score Score
		if growing {
			formula, score = searchtree.Expand[S, Score, D](g, &tree, newDistribution, rng, depth)
		} else {
			formula, score = searchtree.NoExpand[S, Score, D](g, &tree, newDistribution, rng, depth, balanceFactor)
		}
		res.Update(formula, score)
	}

	telemetry.Logger().Infow("memory-limited search finished", "iterations", iterations, "switched_to_no_expand", !growing)
	return res
}

// Nested runs growing iterations, but instead of ever switching to
// rollout-only iterations, it periodically (every stepSize iterations,
// DefaultNestedStepSize if 0) measures the tree's resident element count
// and, once it exceeds maxTreeElements, collapses every branching point
// down to its single most-visited child (searchtree.PruneTree) before
// continuing to grow. This trades historical breadth for bounded memory
// while always keeping the engine in its normal growing mode.
func Nested[S comparable, Score any, D distribution.Distribution[Score], R result.Result[S, Score]](
	g grammar.Grammar[S, Score],
	newDistribution distribution.Factory[Score, D],
	newResult result.Factory[S, Score, R],
	rng *rand.Rand,
	depth int64,
	iterations uint64,
	maxTreeElements int,
	stepSize uint64,
) R {
	if stepSize == 0 {
		stepSize = DefaultNestedStepSize
	}

	tree := searchtree.Leaf[S, D]()
	res := newResult()

	for i := uint64(0); i < iterations; i++ {
		if i%stepSize == 0 && tree.IsNode() && tree.Size() > maxTreeElements {
			searchtree.PruneTree[S, D](&tree)
			telemetry.Logger().Infow("pruned search tree", "iteration", i, "size_after", tree.Size())
		}

		formula, score := searchtree.Expand[S, Score, D](g, &tree, newDistribution, rng, depth)
		res.Update(formula, score)
	}

	telemetry.Logger().Infow("nested search finished", "iterations", iterations, "final_size", tree.Size())
	return res
}
