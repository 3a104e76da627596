package distribution

import (
	"math"
	"math/rand"

	"github.com/nestordemeure/gambit/internal/tools"
)

// ThompsonMax is a Thompson-sampling-flavoured policy tuned for
// maximization: rather than sampling a posterior mean, it samples uniformly
// between the arm's empirical mean and a supremum derived from its best
// observation so far, biasing exploration toward arms that have produced a
// high score even if rarely.
type ThompsonMax struct {
	nbVisit uint64
	sum     float64
	max     float64
}

// NewThompsonMax returns a fresh ThompsonMax distribution.
func NewThompsonMax() *ThompsonMax {
	return &ThompsonMax{max: math.Inf(-1)}
}

func (t *ThompsonMax) NbVisit() uint64 {
	return t.nbVisit
}

func (t *ThompsonMax) Update(score float64) {
	t.nbVisit++
	t.sum += score
	if score > t.max {
		t.max = score
	}
}

func (t *ThompsonMax) mean() float64 {
	return t.sum / float64(t.nbVisit)
}

// sample draws a value uniformly between this arm's mean and its scaled
// supremum. When max is negative, ln(n+e)*max is more negative than max
// itself, so the "supremum" can fall below the mean: the sampled interval
// inverts rather than collapses to a point. This is a known quirk of the
// policy, kept rather than patched over.
func (t *ThompsonMax) sample(rng *rand.Rand) float64 {
	mean := t.mean()
	sup := tools.Lne(float64(t.nbVisit)) * t.max
	return mean + (sup-mean)*rng.Float64()
}

func (t *ThompsonMax) Score(_ Distribution[float64], rng *rand.Rand) float64 {
	if t.nbVisit == 0 {
		return math.Inf(1)
	}
	return t.sample(rng)
}
