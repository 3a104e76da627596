// Package grammar defines the contract a caller implements to describe a
// derivation space to the search engine: how a partial formula expands into
// one or more longer ones, how a completed formula renders and scores, and
// the optional-score convention used by grammars whose fitness function can
// fail to produce a value.
package grammar

// Grammar describes a context-free derivation space over states of type S,
// producing formulas scored by Score. S must be comparable; the engine
// itself never compares states, it only stacks them and hands them back to
// the grammar.
//
// Implementations are supplied by the caller; the engine never parses a
// textual grammar and never mutates a Grammar value.
type Grammar[S comparable, Score any] interface {
	// RootState returns the single state every formula derivation starts
	// from.
	RootState() S

	// Expand returns the rules applicable to state s, each rule being the
	// sequence of states it substitutes s with. A terminal state has no
	// applicable rules and Expand returns nil or an empty slice.
	Expand(s S) [][]S

	// Render turns a completed formula into its textual form, for
	// reporting and debugging.
	Render(f Formula[S]) string

	// Evaluate computes the fitness of a completed formula.
	Evaluate(f Formula[S]) Score

	// Cost returns a secondary, ascending-is-worse measure of a formula,
	// used by the Pareto-front aggregator to break ties and prune
	// dominated results. Implementations that have no natural notion of
	// cost may delegate to DefaultCost.
	Cost(f Formula[S]) int
}

// DefaultCost is the formula-length convention used when a grammar has no
// domain-specific notion of cost: shorter formulas cost less.
func DefaultCost[S any](f Formula[S]) int {
	return len(f)
}
