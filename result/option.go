package result

import "github.com/nestordemeure/gambit/grammar"

// Optional lifts a Result[S, Score] into a Result[S, grammar.Optional[Score]],
// for grammars whose fitness function can fail to produce a value: an
// invalid score is simply never recorded.
type Optional[S any, Score any, R Result[S, Score]] struct {
	inner R
}

// NewOptional wraps inner, discarding invalid scores before they reach it.
func NewOptional[S any, Score any, R Result[S, Score]](inner R) *Optional[S, Score, R] {
	return &Optional[S, Score, R]{inner: inner}
}

func (o *Optional[S, Score, R]) Update(f grammar.Formula[S], score grammar.Optional[Score]) bool {
	if !score.Valid {
		return false
	}
	return o.inner.Update(f, score.Value)
}

func (o *Optional[S, Score, R]) Best() (grammar.Formula[S], float64, bool) {
	return o.inner.Best()
}
