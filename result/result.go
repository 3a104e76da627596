// Package result implements the aggregators that collect formulas produced
// by search iterations into whatever the caller actually wants back:
// a single best formula, a Pareto-optimal front traded off against cost, or
// either of those wrapped to print progress as it happens.
package result

import "github.com/nestordemeure/gambit/grammar"

// Result accumulates formulas and their scores across a search run and
// reports the best one(s) found so far. Implementations are not safe for
// concurrent use; the engine is strictly single-threaded.
type Result[S any, Score any] interface {
	// Update records a freshly evaluated formula. It returns true if the
	// update changed what Best would report.
	Update(f grammar.Formula[S], score Score) bool

	// Best returns the current best formula found so far and a float64
	// summary of its score, regardless of what concrete Score type the
	// aggregator was instantiated with. ok is false if Update has never
	// recorded anything yet.
	Best() (f grammar.Formula[S], score float64, ok bool)
}

// Factory constructs a fresh, empty Result. Search drivers take a Factory
// rather than a generic constructor, for the same reason distribution.Factory
// exists: Go has no way to call a "static" method on a type parameter.
type Factory[S any, Score any, R Result[S, Score]] func() R
