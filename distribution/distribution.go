// Package distribution implements the per-arm reward statistics and
// sampling policies the search tree uses to pick which child to descend
// into at each step of an iteration.
package distribution

import "math/rand"

// Distribution tracks the observations made at one arm (one child of a
// search-tree node) and produces a score used to rank siblings.
//
// NbVisit reports how many times Update has been called; a fresh
// distribution (NbVisit() == 0) carries no information, and Score is
// expected to return +Inf in that case so every arm is visited at least
// once before any are compared on their merits.
type Distribution[Score any] interface {
	// NbVisit returns the number of times this arm has been updated.
	NbVisit() uint64

	// Update incorporates one new observation.
	Update(score Score)

	// Score samples a ranking value for this arm, given the distribution
	// of the parent node (some policies need the parent's total visit
	// count) and a source of randomness.
	Score(parent Distribution[Score], rng *rand.Rand) float64
}

// Factory constructs a fresh, zero-information distribution. Search-tree and
// search-driver code takes a Factory rather than relying on a generic
// constructor, since Go generics have no way to call a "static" method on a
// type parameter.
type Factory[Score any, D Distribution[Score]] func() D
