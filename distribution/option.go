package distribution

import (
	"math"
	"math/rand"

	"github.com/nestordemeure/gambit/grammar"
)

// Optional lifts any Distribution[S] into a Distribution[grammar.Optional[S]],
// for grammars whose fitness function can fail to produce a score. It tracks
// how many updates were valid separately from the total visit count, and
// uses a Laplace-smoothed estimate of "this arm tends to be valid" to decide
// whether to trust the inner distribution's score or forbid the arm for this
// sample.
type Optional[S any, D Distribution[S]] struct {
	visits uint64
	Inner  D
}

// NewOptional builds an Optional distribution wrapping a fresh inner
// distribution produced by newInner.
func NewOptional[S any, D Distribution[S]](newInner Factory[S, D]) *Optional[S, D] {
	return &Optional[S, D]{Inner: newInner()}
}

func (o *Optional[S, D]) NbVisit() uint64 {
	return o.visits
}

func (o *Optional[S, D]) Update(score grammar.Optional[S]) {
	o.visits++
	if score.Valid {
		o.Inner.Update(score.Value)
	}
}

// Score returns -Inf when this sample draws "invalid" under the Laplace
// estimate of this arm's validity rate, otherwise delegates to the inner
// distribution. If the inner distribution has never received a valid
// observation, the inner score would be an uninformative +Inf; Score falls
// back to sampling the parent's inner distribution instead, so a
// never-validly-scored arm is ranked the way an average arm would be,
// rather than forced to the front.
func (o *Optional[S, D]) Score(parent Distribution[grammar.Optional[S]], rng *rand.Rand) float64 {
	parentOptional, ok := parent.(*Optional[S, D])
	if !ok {
		panic("distribution: Optional.Score called with a non-Optional parent distribution")
	}

	nbValid := o.Inner.NbVisit()
	probValid := (float64(nbValid) + 1) / (float64(o.visits) + 2)
	if rng.Float64() >= probValid {
		return math.Inf(-1)
	}

	if nbValid == 0 {
		return parentOptional.Inner.Score(parentOptional.Inner, rng)
	}
	return o.Inner.Score(parentOptional.Inner, rng)
}
