package result

import (
	"math"

	"github.com/nestordemeure/gambit/grammar"
)

// Single keeps only the best-scoring formula seen so far, ordering by plain
// float64 comparison. It starts with an empty formula and a score of
// negative infinity, so the very first Update always wins.
type Single[S any] struct {
	formula grammar.Formula[S]
	score   float64
	any     bool
}

// NewSingle returns an empty Single aggregator.
func NewSingle[S any]() *Single[S] {
	return &Single[S]{score: math.Inf(-1)}
}

func (s *Single[S]) Update(f grammar.Formula[S], score float64) bool {
	s.any = true
	if score > s.score {
		s.formula = f
		s.score = score
		return true
	}
	return false
}

func (s *Single[S]) Best() (grammar.Formula[S], float64, bool) {
	if !s.any {
		return nil, 0, false
	}
	return s.formula, s.score, true
}
