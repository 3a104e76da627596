package distribution

import "math/rand"

// RandomSearch is the stateless, uniform-random arm policy: it never learns
// from its observations and simply samples U(0, 1) as its score.
//
// Its NbVisit always reports 1 regardless of how many times Update has run,
// so it never presents itself as a zero-information arm, and its Score never
// returns the +Inf that a fresh distribution otherwise reports.
type RandomSearch struct{}

// NewRandomSearch returns a fresh RandomSearch distribution.
func NewRandomSearch() *RandomSearch {
	return &RandomSearch{}
}

func (r *RandomSearch) NbVisit() uint64 {
	return 1
}

func (r *RandomSearch) Update(_ float64) {}

func (r *RandomSearch) Score(_ Distribution[float64], rng *rand.Rand) float64 {
	return rng.Float64()
}
