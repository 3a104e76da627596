package searchtree

import (
	"math/rand"

	"github.com/nestordemeure/gambit/distribution"
)

// BestChild picks which child of a Node to descend into next.
//
// When depth is not positive, it always returns index 0: the shortest-path
// convention, which relies on grammar rules being listed with the
// terminating/shortest alternative first so a depth-exhausted descent still
// reaches a valid formula.
//
// Otherwise, any child that is still an unexplored Leaf is visited before
// any scored child: if one or more such children exist, one is chosen
// uniformly at random among them. Once every live child carries a
// distribution, the child with the highest Distribution.Score is chosen,
// with ties broken uniformly at random. Deleted (pruned) children are never
// considered.
func BestChild[S any, Score any, D distribution.Distribution[Score]](
	parent D,
	children []Tree[S, D],
	depth int64,
	rng *rand.Rand,
) int {
	if depth <= 0 {
		return 0
	}

	var unvisitedLeaves []int
	var liveScored []int
	for i := range children {
		c := &children[i]
		switch {
		case c.IsDeleted():
			continue
		case c.IsLeaf():
			unvisitedLeaves = append(unvisitedLeaves, i)
		default:
			liveScored = append(liveScored, i)
		}
	}

	if len(unvisitedLeaves) > 0 {
		return unvisitedLeaves[rng.Intn(len(unvisitedLeaves))]
	}

	if len(liveScored) == 0 {
		panic("searchtree: BestChild called on a node with no live children")
	}

	bestIdx := -1
	bestScore := 0.0
	var tiedBest []int
	for _, i := range liveScored {
		score := children[i].Distribution().Score(parent, rng)
		if bestIdx == -1 || score > bestScore {
			bestIdx = i
			bestScore = score
			tiedBest = []int{i}
		} else if score == bestScore {
			tiedBest = append(tiedBest, i)
		}
	}

	if len(tiedBest) == 1 {
		return tiedBest[0]
	}
	return tiedBest[rng.Intn(len(tiedBest))]
}
