package result

import (
	"github.com/nestordemeure/gambit/grammar"
	"github.com/nestordemeure/gambit/telemetry"
)

// DisplayProgress wraps another Result and reports every improvement
// through telemetry.ReportImprovement, rendering the formula with render.
type DisplayProgress[S any, Score any, R Result[S, Score]] struct {
	inner  R
	render func(grammar.Formula[S]) string
}

// NewDisplayProgress wraps inner, rendering improved formulas with render.
func NewDisplayProgress[S any, Score any, R Result[S, Score]](inner R, render func(grammar.Formula[S]) string) *DisplayProgress[S, Score, R] {
	return &DisplayProgress[S, Score, R]{inner: inner, render: render}
}

func (d *DisplayProgress[S, Score, R]) Update(f grammar.Formula[S], score Score) bool {
	improved := d.inner.Update(f, score)
	if improved {
		_, floatScore, _ := d.inner.Best()
		telemetry.ReportImprovement(floatScore, d.render(f))
	}
	return improved
}

func (d *DisplayProgress[S, Score, R]) Best() (grammar.Formula[S], float64, bool) {
	return d.inner.Best()
}
