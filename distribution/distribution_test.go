package distribution_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestordemeure/gambit/distribution"
	"github.com/nestordemeure/gambit/grammar"
)

func TestRandomSearchAlwaysReportsVisited(t *testing.T) {
	r := distribution.NewRandomSearch()
	assert.Equal(t, uint64(1), r.NbVisit())
	r.Update(0)
	assert.Equal(t, uint64(1), r.NbVisit())
}

func TestRandomSearchScoreIsWithinUnitInterval(t *testing.T) {
	r := distribution.NewRandomSearch()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		score := r.Score(r, rng)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.Less(t, score, 1.0)
	}
}

func TestUcbTunedIsInfiniteUntilVisited(t *testing.T) {
	u := distribution.NewUcbTuned()
	parent := distribution.NewUcbTuned()
	parent.Update(1)
	assert.True(t, math.IsInf(u.Score(parent, rand.New(rand.NewSource(1))), 1))
}

func TestUcbTunedPrefersHigherMeanAllElseEqual(t *testing.T) {
	parent := distribution.NewUcbTuned()
	for i := 0; i < 20; i++ {
		parent.Update(0)
	}

	low := distribution.NewUcbTuned()
	high := distribution.NewUcbTuned()
	for i := 0; i < 10; i++ {
		low.Update(0.0)
		high.Update(1.0)
	}

	rng := rand.New(rand.NewSource(7))
	assert.Greater(t, high.Score(parent, rng), low.Score(parent, rng))
}

func TestThompsonMaxIsInfiniteUntilVisited(t *testing.T) {
	th := distribution.NewThompsonMax()
	rng := rand.New(rand.NewSource(1))
	assert.True(t, math.IsInf(th.Score(th, rng), 1))
}

func TestThompsonMaxSampleStaysBoundedForPositiveMax(t *testing.T) {
	th := distribution.NewThompsonMax()
	th.Update(1.0)
	th.Update(2.0)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		score := th.Score(th, rng)
		assert.False(t, math.IsNaN(score))
	}
}

func TestOptionalForbidsLowValidityArmsOnSomeSamples(t *testing.T) {
	newInner := distribution.Factory[float64, *distribution.UcbTuned](distribution.NewUcbTuned)
	arm := distribution.NewOptional[float64](newInner)
	parent := distribution.NewOptional[float64](newInner)

	for i := 0; i < 10; i++ {
		arm.Update(grammar.None[float64]())
		parent.Update(grammar.Some(1.0))
	}

	rng := rand.New(rand.NewSource(11))
	sawForbidden := false
	for i := 0; i < 50; i++ {
		if math.IsInf(arm.Score(parent, rng), -1) {
			sawForbidden = true
			break
		}
	}
	assert.True(t, sawForbidden, "an arm with zero valid observations should eventually be forbidden")
}

func TestOptionalUpdateTracksVisitsSeparatelyFromValidity(t *testing.T) {
	newInner := distribution.Factory[float64, *distribution.UcbTuned](distribution.NewUcbTuned)
	arm := distribution.NewOptional[float64](newInner)

	arm.Update(grammar.Some(1.0))
	arm.Update(grammar.None[float64]())

	require.Equal(t, uint64(2), arm.NbVisit())
	assert.Equal(t, uint64(1), arm.Inner.NbVisit())
}
